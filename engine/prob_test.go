package engine

import (
	"math"
	"testing"
)

func TestWeights(t *testing.T) {
	tests := []struct {
		name   string
		values [][]float64
		want   []float64
	}{
		{"column sums over total", [][]float64{{1, 2}, {3, 4}}, []float64{0.4, 0.6}},
		{"single column", [][]float64{{5}, {7}}, []float64{1}},
		{"zero total is uniform", [][]float64{{0, 0, 0}, {0, 0, 0}}, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}},
		{"no columns", [][]float64{{}}, nil},
		{"no rows", nil, nil},
	}
	for _, tc := range tests {
		got := Weights(tc.values)
		if len(got) != len(tc.want) {
			t.Errorf("%s: Weights = %v, want %v", tc.name, got, tc.want)
			continue
		}
		for j := range got {
			if math.Abs(got[j]-tc.want[j]) > 1e-12 {
				t.Errorf("%s: Weights[%d] = %v, want %v", tc.name, j, got[j], tc.want[j])
			}
		}
	}
}
