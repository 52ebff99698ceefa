// Package field implements arithmetic in the prime field defined by a
// caller-supplied modulus. The modulus is assumed prime and is never
// verified; with a composite modulus the inverse computation silently
// produces garbage (the multiplicative group is no longer of order p-1).
package field

import (
	"errors"
	"math/big"
)

var (
	// ErrNilModulus signals that no modulus was supplied at all.
	ErrNilModulus = errors.New("field: modulus must be an integer")

	// ErrModulusTooSmall signals a modulus of 1 or less, which cannot
	// define a field.
	ErrModulusTooSmall = errors.New("field: modulus must be greater than 1")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Field represents the integers modulo a prime p. The zero value is not
// usable; construct with New.
type Field struct {
	p *big.Int
}

// New creates the field of integers modulo p. The primality of p is the
// caller's responsibility.
func New(p *big.Int) (Field, error) {
	if p == nil {
		return Field{}, ErrNilModulus
	}
	if p.Cmp(one) <= 0 {
		return Field{}, ErrModulusTooSmall
	}
	return Field{p: new(big.Int).Set(p)}, nil
}

// Prime returns a copy of the field modulus.
func (f Field) Prime() *big.Int {
	return new(big.Int).Set(f.p)
}

// Reduce maps an arbitrary integer into [0, p). Negative inputs come out
// non-negative, so intermediate values like 0-x can be fed straight in.
func (f Field) Reduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, f.p)
}

// Add returns (a + b) mod p.
func (f Field) Add(a, b *big.Int) *big.Int {
	sum := new(big.Int).Add(a, b)
	return sum.Mod(sum, f.p)
}

// Sub returns (a - b) mod p, always in [0, p).
func (f Field) Sub(a, b *big.Int) *big.Int {
	diff := new(big.Int).Sub(a, b)
	return diff.Mod(diff, f.p)
}

// Neg returns -a mod p.
func (f Field) Neg(a *big.Int) *big.Int {
	n := new(big.Int).Neg(a)
	return n.Mod(n, f.p)
}

// Mul returns (a * b) mod p.
func (f Field) Mul(a, b *big.Int) *big.Int {
	prod := new(big.Int).Mul(f.Reduce(a), b)
	return prod.Mod(prod, f.p)
}

// Exp returns a^e mod p for nonnegative e, using left-to-right
// square-and-multiply so the cost is O(log e) field multiplications.
func (f Field) Exp(a, e *big.Int) *big.Int {
	base := f.Reduce(a)
	result := big.NewInt(1)

	for i := e.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, f.p)
		if e.Bit(i) == 1 {
			result.Mul(result, base)
			result.Mod(result, f.p)
		}
	}
	return result
}

// Inv returns the multiplicative inverse of a, computed as a^(p-2) mod p
// by Fermat's little theorem. The result is meaningless when a reduces to
// zero or when p is not prime; both are contract violations of the caller.
func (f Field) Inv(a *big.Int) *big.Int {
	return f.Exp(a, new(big.Int).Sub(f.p, two))
}

// Div returns a / b in the field, i.e. (a * b^-1) mod p. Division by an
// element congruent to zero is undefined, as for Inv.
func (f Field) Div(a, b *big.Int) *big.Int {
	return f.Mul(a, f.Inv(b))
}
