package data

import (
	"math"
	"testing"
)

func TestNumColumnBounds(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name     string
		col      NumColumn
		min, max float64
		ok       bool
	}{
		{name: "simple", col: NumColumn{3, 1, 2}, min: 1, max: 3, ok: true},
		{name: "single", col: NumColumn{5}, min: 5, max: 5, ok: true},
		{name: "negative", col: NumColumn{-4, -1}, min: -4, max: -1, ok: true},
		{name: "ignores nan", col: NumColumn{nan, 2, nan, 7}, min: 2, max: 7, ok: true},
		{name: "ignores inf", col: NumColumn{math.Inf(1), 2, 7}, min: 2, max: 7, ok: true},
		{name: "all nan", col: NumColumn{nan, nan}, ok: false},
		{name: "empty", col: NumColumn{}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, ok := tt.col.Bounds()
			if ok != tt.ok {
				t.Fatalf("Bounds() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if min != tt.min || max != tt.max {
				t.Errorf("Bounds() = (%v, %v), want (%v, %v)", min, max, tt.min, tt.max)
			}
		})
	}
}

func TestNumColumnLenValid(t *testing.T) {
	col := NumColumn{1, math.NaN(), 3, math.NaN()}
	if got := col.LenValid(); got != 2 {
		t.Errorf("LenValid() = %d, want 2", got)
	}
	if got := col.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
}

func TestFrame(t *testing.T) {
	f := NewFrame().
		AddNums("x", 1, 2, 3).
		AddCats("city", "Oslo", "Lima")

	if _, ok := f.Column("missing"); ok {
		t.Error("Column(missing) should not exist")
	}

	col, ok := f.Column("x")
	if !ok {
		t.Fatal("Column(x) should exist")
	}
	num, ok := col.(NumColumn)
	if !ok {
		t.Fatalf("Column(x) type = %T, want NumColumn", col)
	}
	if num.Len() != 3 {
		t.Errorf("x length = %d, want 3", num.Len())
	}

	col, ok = f.Column("city")
	if !ok {
		t.Fatal("Column(city) should exist")
	}
	if _, ok := col.(CatColumn); !ok {
		t.Fatalf("Column(city) type = %T, want CatColumn", col)
	}

	names := f.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "city" {
		t.Errorf("Names() = %v, want [x city]", names)
	}

	// Replacing a column keeps insertion order stable.
	f.AddNums("x", 9)
	names = f.Names()
	if len(names) != 2 || names[0] != "x" {
		t.Errorf("Names() after replace = %v, want [x city]", names)
	}
}
