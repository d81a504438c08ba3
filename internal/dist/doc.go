// Package dist provides dual-number-differentiable wrappers around a fixed
// catalog of probability distributions, for use inside gradient-based
// samplers such as Hamiltonian Monte Carlo.
//
// Each supported family is a [Variant]: its parameters are stored as dual
// numbers, a real-valued gonum delegate is built once at construction for
// plain-real density, log-density and sampling, and a hand-derived
// closed-form density formula over the dual parameters handles dual-valued
// evaluation points. Evaluating the formula at a point seeded with a unit
// infinitesimal yields the density and its exact first derivative in one
// pass, without symbolic differentiation or finite differences.
//
//	v, _ := dist.NewNormal(0, 1)
//	d, _ := dist.Density(v, point.SeedScalar(0.5))
//	// d.Real is the density, d.Emag is d(density)/dx
//
// Variants are immutable value objects: a new point in parameter space means
// a new variant, never mutation, so concurrent evaluation needs no
// synchronization. Construction validates the family's parameter domain and
// fails rather than clamping; evaluation outside the support returns a zero
// density, matching the delegate's convention.
package dist
