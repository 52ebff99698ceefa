// Package lagrange evaluates, at x = 0, the unique bounded-degree
// polynomial through a set of points over a prime field. This is the
// reconstruction primitive of threshold secret sharing: given degree+1
// shares (x, y), the secret is the polynomial's value at the origin.
package lagrange

import (
	"fmt"
	"math/big"
	"sort"
)

// Point is a single (x, y) sample of the polynomial: x is the evaluation
// coordinate, y the known value there.
type Point struct {
	X *big.Int
	Y *big.Int
}

// PointSet is an ordered collection of points with unique x-coordinates.
// Order matters: when a degree bound retains fewer points than supplied,
// truncation is positional, keeping the first degree+1 points.
//
// Construct with NewPointSet, FromValues or FromMap; the zero value is an
// empty set.
type PointSet struct {
	points []Point
}

// NewPointSet builds a point set from explicit (x, y) pairs, preserving
// their order. Pairs with a nil coordinate are rejected, as are two pairs
// sharing an x-coordinate.
func NewPointSet(points []Point) (*PointSet, error) {
	ps := &PointSet{points: make([]Point, 0, len(points))}
	seen := make(map[string]struct{}, len(points))

	for i, pt := range points {
		if pt.X == nil || pt.Y == nil {
			return nil, fmt.Errorf("%w: pair %d has a nil coordinate", ErrInvalidPoint, i)
		}
		key := pt.X.String()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: x = %s", ErrDuplicatePoint, key)
		}
		seen[key] = struct{}{}
		ps.points = append(ps.points, Point{
			X: new(big.Int).Set(pt.X),
			Y: new(big.Int).Set(pt.Y),
		})
	}
	return ps, nil
}

// FromValues builds a point set from a sequence of y values, assigning
// the implicit x-coordinates 1, 2, ..., n in slice order. The slice is
// ordered by construction, which is exactly why this shape is a slice:
// the implicit coordinates are meaningless for an unordered collection.
func FromValues(values []*big.Int) (*PointSet, error) {
	ps := &PointSet{points: make([]Point, 0, len(values))}
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("%w: value %d is nil", ErrInvalidPoint, i)
		}
		ps.points = append(ps.points, Point{
			X: big.NewInt(int64(i + 1)),
			Y: new(big.Int).Set(v),
		})
	}
	return ps, nil
}

// FromInt64Values is FromValues for plain int64 data.
func FromInt64Values(values []int64) (*PointSet, error) {
	bigs := make([]*big.Int, len(values))
	for i, v := range values {
		bigs[i] = big.NewInt(v)
	}
	return FromValues(bigs)
}

// FromMap builds a point set from an x -> y mapping. Go maps carry no
// insertion order, so the canonical order for this shape is ascending x;
// that is the order degree truncation sees.
func FromMap(m map[int64]int64) (*PointSet, error) {
	xs := make([]int64, 0, len(m))
	for x := range m {
		xs = append(xs, x)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	ps := &PointSet{points: make([]Point, 0, len(m))}
	for _, x := range xs {
		ps.points = append(ps.points, Point{
			X: big.NewInt(x),
			Y: big.NewInt(m[x]),
		})
	}
	return ps, nil
}

// Len reports the number of points in the set.
func (ps *PointSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.points)
}

// Points returns a copy of the points in canonical order.
func (ps *PointSet) Points() []Point {
	if ps == nil {
		return nil
	}
	out := make([]Point, len(ps.points))
	for i, pt := range ps.points {
		out[i] = Point{X: new(big.Int).Set(pt.X), Y: new(big.Int).Set(pt.Y)}
	}
	return out
}
