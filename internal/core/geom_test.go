package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"fractional overlap", NewRect(0, 0, 10, 10), NewRect(9.5, 9.5, 1, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() is not symmetric: got %v", got)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	box := NewRect(10, 10, 20, 10)
	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", Circle{C: Vec{X: 15, Y: 15}, R: 1}, true},
		{"touching side from above", Circle{C: Vec{X: 20, Y: 7}, R: 3}, false},
		{"overlapping side from above", Circle{C: Vec{X: 20, Y: 8}, R: 3}, true},
		{"near corner but outside", Circle{C: Vec{X: 7, Y: 7}, R: 4}, false},
		{"corner overlap", Circle{C: Vec{X: 8, Y: 8}, R: 3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.IntersectsRect(box); got != tc.expected {
				t.Errorf("IntersectsRect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecClampLen(t *testing.T) {
	v := Vec{X: 6, Y: 8}
	got := v.ClampLen(5)
	if math.Abs(got.Len()-5) > 1e-9 {
		t.Errorf("ClampLen(5).Len() = %v, expected 5", got.Len())
	}
	if math.Abs(got.X/got.Y-0.75) > 1e-9 {
		t.Errorf("ClampLen changed direction: %+v", got)
	}

	short := Vec{X: 1, Y: 1}
	if short.ClampLen(5) != short {
		t.Errorf("ClampLen should not touch shorter vectors")
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{0, 0}, true},
		{Point{19, 19}, true},
		{Point{20, 0}, false},
		{Point{0, -1}, false},
	}
	for _, tc := range tests {
		if got := tc.p.In(20, 20); got != tc.expected {
			t.Errorf("%+v.In(20, 20) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
}
