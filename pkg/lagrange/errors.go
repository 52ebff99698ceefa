package lagrange

import "errors"

// Every invalid input maps to one of these sentinels so callers can
// branch with errors.Is. Validation is fail-fast: all of them are
// returned before any field arithmetic starts.
var (
	// ErrNoPoints is returned when the point set is nil or empty.
	ErrNoPoints = errors.New("lagrange: at least one point is required")

	// ErrInvalidPoint is returned when a point is missing a coordinate
	// (nil X or Y) or a value slice contains a nil entry.
	ErrInvalidPoint = errors.New("lagrange: points must have integer coordinates")

	// ErrDuplicatePoint is returned when two points share an
	// x-coordinate. Keeping one y silently would make the result depend
	// on input order, so it is rejected outright.
	ErrDuplicatePoint = errors.New("lagrange: duplicate x-coordinate")

	// ErrNilModulus is returned when no modulus is supplied.
	ErrNilModulus = errors.New("lagrange: expecting an integer prime modulus")

	// ErrModulusTooSmall is returned for a modulus of 1 or less.
	ErrModulusTooSmall = errors.New("lagrange: expecting a prime modulus greater than 1")

	// ErrNegativeDegree is returned for a negative target degree.
	ErrNegativeDegree = errors.New("lagrange: expecting a nonnegative degree")

	// ErrNotEnoughPoints is returned when fewer than degree+1 points are
	// available, which would leave the interpolation under-determined.
	ErrNotEnoughPoints = errors.New("lagrange: not enough points for a unique interpolation")
)
