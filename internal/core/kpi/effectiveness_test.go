package kpi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"campaign-kpi/internal/core/domain"
)

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		roas, conversionRate float64
		want                 int
	}{
		{roas: 5, conversionRate: 10, want: 10},
		{roas: 26.6, conversionRate: 9.67, want: 10},
		{roas: 0, conversionRate: 0, want: 1},
		{roas: -3, conversionRate: -1, want: 1},
		{roas: 1, conversionRate: 2, want: 4},
		{roas: 2, conversionRate: 0.5, want: 5},
		{roas: 0.39, conversionRate: 12, want: 4},
		{roas: 3.99, conversionRate: 5.99, want: 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Effectiveness(tt.roas, tt.conversionRate), "roas=%v cr=%v", tt.roas, tt.conversionRate)
	}
}

func TestEffectivenessBounds(t *testing.T) {
	values := []float64{math.Inf(-1), -100, -1, 0, 0.1, 0.4, 0.5, 0.7, 1, 1.5, 2, 2.5, 3, 4, 5, 6, 8, 10, 50, math.Inf(1), math.NaN()}
	for _, roas := range values {
		for _, cr := range values {
			s := Effectiveness(roas, cr)
			assert.GreaterOrEqual(t, s, 1)
			assert.LessOrEqual(t, s, 10)
		}
	}
}

func TestEffectivenessMonotonic(t *testing.T) {
	var steps []float64
	for v := -1.0; v <= 12; v += 0.05 {
		steps = append(steps, v)
	}
	for _, fixed := range []float64{0, 0.6, 1.2, 3.3, 5, 9, 20} {
		prev := 0
		for _, v := range steps {
			s := Effectiveness(v, fixed)
			assert.GreaterOrEqual(t, s, prev, "roas %v with cr %v", v, fixed)
			prev = s
		}
		prev = 0
		for _, v := range steps {
			s := Effectiveness(fixed, v)
			assert.GreaterOrEqual(t, s, prev, "cr %v with roas %v", v, fixed)
			prev = s
		}
	}
}

func TestRatingFor(t *testing.T) {
	assert.Equal(t, domain.RatingExcellent, RatingFor(8))
	assert.Equal(t, domain.RatingGood, RatingFor(7))
	assert.Equal(t, domain.RatingFair, RatingFor(4))
	assert.Equal(t, domain.RatingPoor, RatingFor(3))
}
