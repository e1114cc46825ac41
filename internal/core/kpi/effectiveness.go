package kpi

import (
	"math"

	"campaign-kpi/internal/core/domain"
)

const (
	roasWeight       = 0.7
	conversionWeight = 0.3

	minScore = 1
	maxScore = 10
)

// band maps values at or above min to score.
type band struct {
	min   float64
	score int
}

var roasBands = []band{
	{5, 10}, {4, 9}, {3, 8}, {2.5, 7}, {2, 6}, {1.5, 5}, {1, 4}, {0.7, 3}, {0.4, 2},
}

var conversionBands = []band{
	{10, 10}, {8, 9}, {6, 8}, {5, 7}, {4, 6}, {3, 5}, {2, 4}, {1, 3}, {0.5, 2},
}

// bandScore walks bands in descending order. NaN falls through every
// comparison and scores the minimum.
func bandScore(bands []band, v float64) int {
	for _, b := range bands {
		if v >= b.min {
			return b.score
		}
	}
	return minScore
}

// Effectiveness scores a campaign from 1 to 10 blending ROAS (70%) and
// conversion rate in percent (30%).
func Effectiveness(roas, conversionRate float64) int {
	score := float64(bandScore(roasBands, roas))*roasWeight +
		float64(bandScore(conversionBands, conversionRate))*conversionWeight
	s := int(math.Round(score))
	return min(max(s, minScore), maxScore)
}

// RatingFor labels an effectiveness score.
func RatingFor(score int) domain.Rating {
	switch {
	case score >= 8:
		return domain.RatingExcellent
	case score >= 6:
		return domain.RatingGood
	case score >= 4:
		return domain.RatingFair
	default:
		return domain.RatingPoor
	}
}
