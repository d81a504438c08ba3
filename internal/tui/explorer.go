package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dualdist/internal/config"
	"github.com/san-kum/dualdist/internal/dist"
	"github.com/san-kum/dualdist/internal/grad"
	"github.com/san-kum/dualdist/internal/point"
	"github.com/san-kum/dualdist/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var familyInfo = map[string]string{
	"normal":        "gaussian bell curve",
	"beta":          "shapes on (0,1)",
	"gamma":         "positive, right-skewed",
	"inverse_gamma": "heavy right tail",
	"student_t":     "fat-tailed",
	"exponential":   "memoryless decay",
}

var familyParams = map[string][]string{
	"normal":        {"mu", "sigma"},
	"beta":          {"alpha", "beta"},
	"gamma":         {"alpha", "theta"},
	"inverse_gamma": {"alpha", "theta"},
	"student_t":     {"nu"},
	"exponential":   {"theta"},
}

var paramDefaults = map[string]float64{
	"mu": 0, "sigma": 1, "alpha": 2, "beta": 2, "theta": 1, "nu": 3,
}

var familyRange = map[string][2]float64{
	"normal":        {-4, 4},
	"beta":          {0.02, 0.98},
	"gamma":         {0.05, 8},
	"inverse_gamma": {0.05, 4},
	"student_t":     {-6, 6},
	"exponential":   {0.02, 6},
}

type state int

const (
	stateMenu state = iota
	stateParams
	statePlot
)

type model struct {
	state    state
	cursor   int
	families []string
	selected string

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	showGrad bool
	errMsg   string

	width  int
	height int
}

// NewExplorer builds the interactive distribution explorer.
func NewExplorer() *model {
	return &model{
		state:    stateMenu,
		families: []string{"normal", "beta", "gamma", "inverse_gamma", "student_t", "exponential"},
		params:   map[string]float64{},
		width:    80,
		height:   24,
	}
}

// Run starts the explorer program.
func Run() error {
	_, err := tea.NewProgram(NewExplorer(), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEdit(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		switch m.state {
		case stateParams:
			m.state = stateMenu
		case statePlot:
			m.state = stateParams
		default:
			return m, tea.Quit
		}
		m.errMsg = ""
		return m, nil
	}

	switch m.state {
	case stateMenu:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.families)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.families[m.cursor]
			m.paramNames = familyParams[m.selected]
			for _, name := range m.paramNames {
				if _, ok := m.params[name]; !ok {
					m.params[name] = paramDefaults[name]
				}
			}
			m.paramCursor = 0
			m.state = stateParams
		}
	case stateParams:
		switch msg.String() {
		case "up", "k":
			if m.paramCursor > 0 {
				m.paramCursor--
			}
		case "down", "j":
			if m.paramCursor < len(m.paramNames)-1 {
				m.paramCursor++
			}
		case "e":
			m.editing = true
			m.editBuf = ""
		case "enter", "p":
			m.errMsg = ""
			if _, err := m.buildVariant(); err != nil {
				m.errMsg = err.Error()
			} else {
				m.state = statePlot
			}
		}
	case statePlot:
		switch msg.String() {
		case "g":
			m.showGrad = !m.showGrad
		}
	}
	return m, nil
}

func (m model) handleEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			m.params[m.paramNames[m.paramCursor]] = v
		}
		m.editing = false
	case "esc":
		m.editing = false
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && strings.ContainsAny(s, "0123456789.-") {
			m.editBuf += s
		}
	}
	return m, nil
}

func (m model) buildVariant() (dist.Variant, error) {
	cfg := config.Config{Family: m.selected, Params: m.params}
	return cfg.Build()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateParams:
		return m.viewParams()
	case statePlot:
		return m.viewPlot()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString(cyan.Render("dualdist explorer") + "\n\n")
	for i, fam := range m.families {
		marker := "  "
		line := fmt.Sprintf("%-14s %s", fam, dim.Render(familyInfo[fam]))
		if i == m.cursor {
			marker = green.Render("> ")
			line = white.Render(fmt.Sprintf("%-14s ", fam)) + dim.Render(familyInfo[fam])
		}
		b.WriteString(marker + line + "\n")
	}
	b.WriteString("\n" + dim.Render("j/k move · enter select · q quit") + "\n")
	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder
	b.WriteString(cyan.Render(m.selected) + "\n\n")
	for i, name := range m.paramNames {
		marker := "  "
		val := fmt.Sprintf("%g", m.params[name])
		if i == m.paramCursor {
			marker = green.Render("> ")
			if m.editing {
				val = yellow.Render(m.editBuf + "_")
			}
		}
		b.WriteString(fmt.Sprintf("%s%-8s %s\n", marker, name, white.Render(val)))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + red.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + dim.Render("j/k move · e edit · enter plot · esc back") + "\n")
	return b.String()
}

func (m model) viewPlot() string {
	v, err := m.buildVariant()
	if err != nil {
		return red.Render(err.Error())
	}
	r := familyRange[m.selected]
	w := (m.width - 4) / 2
	if w < 20 {
		w = 20
	}
	h := (m.height - 8) / 4
	if h < 4 {
		h = 4
	}

	density := viz.Sample(func(x float64) (float64, error) {
		d, err := dist.Density(v, point.Real(x))
		return d.Real, err
	}, r[0], r[1], w*2)
	density.Label = magenta.Render("density")

	var b strings.Builder
	b.WriteString(cyan.Render(m.selected) + " " + dim.Render(m.paramString()) + "\n\n")
	b.WriteString(viz.Draw(density, w, h))

	if m.showGrad {
		gradient := viz.Sample(func(x float64) (float64, error) {
			return grad.Scalar(v, x)
		}, r[0], r[1], w*2)
		gradient.Label = yellow.Render("d(density)/dx")
		b.WriteString("\n" + viz.Draw(gradient, w, h))
	}

	b.WriteString("\n" + dim.Render("g toggle gradient · esc back · q quit") + "\n")
	return b.String()
}

func (m model) paramString() string {
	parts := make([]string, 0, len(m.paramNames))
	for _, name := range m.paramNames {
		parts = append(parts, fmt.Sprintf("%s=%g", name, m.params[name]))
	}
	return strings.Join(parts, " ")
}
