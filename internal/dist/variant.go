package dist

import "gonum.org/v1/gonum/num/dual"

// Family identifies one of the supported distribution families.
type Family int

const (
	FamilyBernoulli Family = iota
	FamilyCategorical
	FamilyNormal
	FamilyMultivariateNormal
	FamilyStudentsT
	FamilyExponential
	FamilyGamma
	FamilyInverseGamma
	FamilyBeta
)

func (f Family) String() string {
	switch f {
	case FamilyBernoulli:
		return "bernoulli"
	case FamilyCategorical:
		return "categorical"
	case FamilyNormal:
		return "normal"
	case FamilyMultivariateNormal:
		return "mvnormal"
	case FamilyStudentsT:
		return "student_t"
	case FamilyExponential:
		return "exponential"
	case FamilyGamma:
		return "gamma"
	case FamilyInverseGamma:
		return "inverse_gamma"
	case FamilyBeta:
		return "beta"
	}
	return "unknown"
}

// Variant is one member of the closed set of supported families. Each
// variant stores its parameters as dual numbers, holds a delegate built once
// from their real parts for plain-real evaluation and sampling, and carries a
// closed-form density formula over its dual parameters. A variant is
// immutable after construction and safe for concurrent evaluation.
type Variant interface {
	Family() Family
	isVariant()
}

// scalarVariant is the method set shared by the univariate families.
type scalarVariant interface {
	Variant
	inSupport(x float64) bool
	prob(x float64) float64
	logProb(x float64) float64
	rand() float64
	formula(x dual.Number) dual.Number
}

// vectorVariant is the method set of the vector-valued families.
type vectorVariant interface {
	Variant
	dim() int
	probVec(x []float64) float64
	logProbVec(x []float64) float64
	randVec() []float64
	formulaVec(x []dual.Number) dual.Number
}
