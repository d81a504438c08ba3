package dist

import (
	"errors"
	"fmt"
)

// Domain errors for variant construction and evaluation.
var (
	// ErrDomain indicates a parameter outside the family's mathematical domain.
	ErrDomain = errors.New("dist: parameter outside the family's domain")

	// ErrNotPositiveDefinite indicates a covariance matrix that is not
	// positive definite.
	ErrNotPositiveDefinite = errors.New("dist: covariance matrix is not positive definite")

	// ErrDimensionMismatch indicates mismatched mean/covariance or
	// point/variant dimensions.
	ErrDimensionMismatch = errors.New("dist: dimension mismatch")

	// ErrPointShape indicates an evaluation point whose shape (scalar vs
	// vector) does not match the family.
	ErrPointShape = errors.New("dist: evaluation point shape does not match the family")

	// ErrDualLogDensity indicates a dual point handed to the real-only
	// log-density.
	ErrDualLogDensity = errors.New("dist: log-density is defined for plain real points only")

	// ErrNumericDegeneracy indicates a dual evaluation that produced
	// non-finite components.
	ErrNumericDegeneracy = errors.New("dist: dual evaluation produced non-finite components")
)

// ConstructionError reports which family and parameter failed validation.
type ConstructionError struct {
	Family  Family
	Param   string
	Value   float64
	Wrapped error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %v", e.Family, e.Param, e.Value, e.Wrapped)
}

func (e *ConstructionError) Unwrap() error {
	return e.Wrapped
}
