package kpi

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"campaign-kpi/internal/core/domain"
)

const dateLayout = "2006-01-02"

// Variance bands of the daily series, as a fraction of the daily average.
const (
	CostVariance        = 0.15
	ImpressionsVariance = 0.30
	ClicksVariance      = 0.35
	ConversionsVariance = 0.40
)

// RandomSource yields uniform values in [0, 1). Implementations used by an
// Engine shared across goroutines must be safe for concurrent use.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource uses the process-wide generator of math/rand/v2.
var DefaultSource RandomSource = globalSource{}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// NewSeededSource returns a reproducible source safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// DailySeries spreads total over days calendar days starting at start.
// Each value is the daily average scaled by a uniform factor in
// [1-variance, 1+variance), floored at zero and rounded when integer is set.
func DailySeries(total float64, days int, start time.Time, variance float64, integer bool, src RandomSource) []domain.DailyPoint {
	if days < 1 {
		days = 1
	}
	if src == nil {
		src = DefaultSource
	}
	avg := finite(total) / float64(days)
	first := truncateDay(start)

	series := make([]domain.DailyPoint, days)
	for i := range series {
		v := avg * (1 + src.Float64()*2*variance - variance)
		if integer {
			v = math.Round(v)
		}
		series[i] = domain.DailyPoint{
			Date:  first.AddDate(0, 0, i).Format(dateLayout),
			Value: math.Max(0, v),
		}
	}
	return series
}

// SeriesSum adds up the values of a series.
func SeriesSum(series []domain.DailyPoint) float64 {
	var sum float64
	for _, p := range series {
		sum += p.Value
	}
	return sum
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
