package lagrange

import (
	"errors"
	"math/big"
	"testing"
)

func TestNewPointSetPreservesOrder(t *testing.T) {
	ps, err := NewPointSet([]Point{
		{X: big.NewInt(3), Y: big.NewInt(36)},
		{X: big.NewInt(1), Y: big.NewInt(16)},
		{X: big.NewInt(2), Y: big.NewInt(25)},
	})
	if err != nil {
		t.Fatalf("NewPointSet failed: %v", err)
	}

	got := ps.Points()
	wantXs := []int64{3, 1, 2}
	for i, x := range wantXs {
		if got[i].X.Cmp(big.NewInt(x)) != 0 {
			t.Errorf("point %d: x = %s, want %d", i, got[i].X, x)
		}
	}
}

func TestNewPointSetRejectsDuplicateX(t *testing.T) {
	_, err := NewPointSet([]Point{
		{X: big.NewInt(1), Y: big.NewInt(10)},
		{X: big.NewInt(2), Y: big.NewInt(20)},
		{X: big.NewInt(1), Y: big.NewInt(30)},
	})
	if !errors.Is(err, ErrDuplicatePoint) {
		t.Errorf("expected ErrDuplicatePoint, got %v", err)
	}
}

func TestNewPointSetRejectsNilCoordinates(t *testing.T) {
	_, err := NewPointSet([]Point{{X: big.NewInt(1), Y: nil}})
	if !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("nil Y: expected ErrInvalidPoint, got %v", err)
	}

	_, err = NewPointSet([]Point{{X: nil, Y: big.NewInt(1)}})
	if !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("nil X: expected ErrInvalidPoint, got %v", err)
	}
}

func TestFromValuesAssignsImplicitCoordinates(t *testing.T) {
	ps, err := FromInt64Values([]int64{15, 9, 3})
	if err != nil {
		t.Fatalf("FromInt64Values failed: %v", err)
	}

	for i, pt := range ps.Points() {
		if pt.X.Cmp(big.NewInt(int64(i+1))) != 0 {
			t.Errorf("point %d: implicit x = %s, want %d", i, pt.X, i+1)
		}
	}
}

func TestFromValuesRejectsNilEntry(t *testing.T) {
	_, err := FromValues([]*big.Int{big.NewInt(1), nil})
	if !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("expected ErrInvalidPoint, got %v", err)
	}
}

func TestFromMapSortsByKey(t *testing.T) {
	ps, err := FromMap(map[int64]int64{3: 36, 1: 16, 2: 25})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}

	got := ps.Points()
	for i, want := range []int64{1, 2, 3} {
		if got[i].X.Cmp(big.NewInt(want)) != 0 {
			t.Errorf("point %d: x = %s, want %d", i, got[i].X, want)
		}
	}
}

func TestPointSetCopiesInput(t *testing.T) {
	x := big.NewInt(1)
	y := big.NewInt(15)
	ps, err := NewPointSet([]Point{{X: x, Y: y}})
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's integers must not reach into the set.
	x.SetInt64(99)
	y.SetInt64(99)

	pt := ps.Points()[0]
	if pt.X.Cmp(big.NewInt(1)) != 0 || pt.Y.Cmp(big.NewInt(15)) != 0 {
		t.Errorf("point set aliased caller data: got (%s, %s)", pt.X, pt.Y)
	}
}
