package physics

import (
	"math"
	"sort"
	"testing"
)

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("expected unit length, got %f", n.Len())
	}
	if z := (Vec{}).Normalize(); z != (Vec{}) {
		t.Errorf("zero vector should stay zero, got %+v", z)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec
		want bool
	}{
		{"apart", V(0, 0), V(10, 0), false},
		{"touching", V(0, 0), V(2, 0), false},
		{"overlapping", V(0, 0), V(1.5, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, 1, tt.b, 1); got != tt.want {
				t.Errorf("CirclesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Width: 100, Height: 50}
	if !r.Contains(V(50, 25), 0) {
		t.Error("center should be inside")
	}
	if r.Contains(V(-5, 25), 0) {
		t.Error("point left of rect should be outside")
	}
	if !r.Contains(V(-5, 25), 10) {
		t.Error("margin should widen the rect")
	}
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(Rect{Width: 100, Height: 100}, 10)
	g.Insert(V(5, 5), 0)
	g.Insert(V(15, 5), 1)
	g.Insert(V(95, 95), 2)

	var found []int
	g.QueryAround(V(6, 6), func(i int) bool {
		found = append(found, i)
		return false
	})
	sort.Ints(found)
	if len(found) != 2 || found[0] != 0 || found[1] != 1 {
		t.Errorf("expected [0 1], got %v", found)
	}

	g.Clear()
	found = found[:0]
	g.QueryAround(V(6, 6), func(i int) bool {
		found = append(found, i)
		return false
	})
	if len(found) != 0 {
		t.Errorf("expected empty grid after Clear, got %v", found)
	}
}
