package lagrange

import (
	"fmt"
	"math/big"

	"github.com/Beastly713/lagrange/pkg/field"
)

var one = big.NewInt(1)

// Interpolate evaluates, at x = 0, the unique polynomial of the given
// degree that passes through the supplied points, over the field of
// integers modulo the (assumed prime) modulus.
//
// An optional degree bounds the target polynomial; when omitted it
// defaults to len(points)-1, i.e. exact interpolation through every
// point. When a lower degree is supplied, only the first degree+1 points
// in the set's canonical order are used.
//
// The modulus is never checked for primality. Two x-coordinates that are
// distinct as integers but congruent modulo the prime make the basis
// denominators vanish; the result is undefined in that case, exactly as
// for a composite modulus.
//
// The computation is pure and allocates only call-scoped values, so it is
// safe to call concurrently with independent inputs. The result is always
// in [0, modulus).
func Interpolate(points *PointSet, modulus *big.Int, degree ...int) (*big.Int, error) {
	if points.Len() == 0 {
		return nil, ErrNoPoints
	}
	if modulus == nil {
		return nil, ErrNilModulus
	}
	if modulus.Cmp(one) <= 0 {
		return nil, ErrModulusTooSmall
	}
	if len(degree) > 1 {
		return nil, fmt.Errorf("lagrange: at most one degree may be supplied, got %d", len(degree))
	}

	deg := points.Len() - 1
	if len(degree) == 1 {
		deg = degree[0]
		if deg < 0 {
			return nil, ErrNegativeDegree
		}
	}
	if points.Len() <= deg {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughPoints, deg+1, points.Len())
	}

	f, err := field.New(modulus)
	if err != nil {
		return nil, err
	}

	// Positional truncation: only the first degree+1 points participate.
	domain := points.points[:deg+1]

	zero := big.NewInt(0)
	sum := big.NewInt(0)
	for i, pt := range domain {
		// Basis polynomial for pt.X, evaluated at 0: it is 1 at pt.X and
		// 0 at every other x in the domain. A domain of one point leaves
		// the empty product, so a degree-0 set returns its single y.
		basis := big.NewInt(1)
		for j, other := range domain {
			if j == i {
				continue
			}
			num := f.Sub(zero, other.X)
			den := f.Sub(pt.X, other.X)
			basis = f.Mul(basis, f.Div(num, den))
		}
		sum = f.Add(sum, f.Mul(pt.Y, basis))
	}
	return sum, nil
}

// Reconstruct is an alias for Interpolate, named for the secret-sharing
// call sites where the value at the origin is the reconstructed secret.
var Reconstruct = Interpolate
