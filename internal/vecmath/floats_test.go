package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	out := Add(a, b)
	assert.Equal(t, []float64{5, 7, 9}, out)

	// Inputs untouched
	assert.Equal(t, []float64{1, 2, 3}, a)
	assert.Equal(t, []float64{4, 5, 6}, b)
}

func TestScale(t *testing.T) {
	a := []float64{2, 4, 8}

	out := Scale(a, 0.5)
	assert.Equal(t, []float64{1, 2, 4}, out)
	assert.Equal(t, []float64{2, 4, 8}, a)
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "zero distance", a: []float64{1, 1}, b: []float64{1, 1}, want: 0},
		{name: "unit axis", a: []float64{0, 0}, b: []float64{0, 1}, want: 1},
		{name: "pythagoras", a: []float64{0, 0}, b: []float64{3, 4}, want: 25},
		{name: "negative coords", a: []float64{-1, -1}, b: []float64{1, 1}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SquaredL2(tt.a, tt.b), 1e-12)
		})
	}
}
