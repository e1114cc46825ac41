package kpi

import (
	"strings"

	"campaign-kpi/internal/core/domain"
)

// ObjectiveFactors returns the corrections for a campaign objective.
// Unknown or empty objectives are neutral.
func ObjectiveFactors(objective string) domain.Factors {
	switch objective {
	case domain.ObjectiveAwareness:
		return domain.Factors{CPM: 0.8, CTR: 0.7, Conversion: 0.5}
	case domain.ObjectiveConsideration:
		return domain.Factors{CPM: 1.0, CTR: 1.2, Conversion: 0.8}
	case domain.ObjectiveConversion:
		return domain.Factors{CPM: 1.3, CTR: 1.0, Conversion: 1.5}
	case domain.ObjectiveRetention:
		return domain.Factors{CPM: 1.1, CTR: 1.3, Conversion: 1.8}
	default:
		return domain.NeutralFactors
	}
}

// keywordRule matches when the lower-cased text contains any keyword.
type keywordRule[T any] struct {
	name     string
	keywords []string
	value    T
}

func (r keywordRule[T]) match(text string) bool {
	for _, k := range r.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// firstMatch evaluates rules top to bottom and returns the value of the
// first rule that matches, or fallback.
func firstMatch[T any](rules []keywordRule[T], text string, fallback T) (T, string) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.match(lower) {
			return r.value, r.name
		}
	}
	return fallback, ""
}

// "professionisti" appears in both the b2b and the senior rule. b2b is
// evaluated first and therefore always wins for that word.
var targetRules = []keywordRule[domain.Factors]{
	{name: "b2b", keywords: []string{"b2b", "aziend", "professionisti"}, value: domain.Factors{CPM: 1.4, CTR: 0.8, Conversion: 0.7}},
	{name: "youth", keywords: []string{"giovani", "student"}, value: domain.Factors{CPM: 0.9, CTR: 1.2, Conversion: 0.9}},
	{name: "senior", keywords: []string{"professionisti", "manager", "dirigent"}, value: domain.Factors{CPM: 1.5, CTR: 0.9, Conversion: 1.2}},
}

var orderValueRules = []keywordRule[float64]{
	{name: "b2b", keywords: []string{"b2b", "aziend", "impres"}, value: 500},
	{name: "luxury", keywords: []string{"lusso", "gioiell", "premium"}, value: 300},
	{name: "tech", keywords: []string{"tecnologia", "elettronica"}, value: 150},
	{name: "fashion", keywords: []string{"abbigliamento", "moda"}, value: 80},
	{name: "food", keywords: []string{"alimentare", "cibo", "food"}, value: 50},
}

// DefaultOrderValue is the revenue per conversion when no sector matches.
const DefaultOrderValue = 100.0

// TargetFactors derives corrections from a free-text audience description.
func TargetFactors(target string) domain.Factors {
	f, _ := firstMatch(targetRules, target, domain.NeutralFactors)
	return f
}

// TargetSegment names the audience rule that matched target, or "" when
// none did.
func TargetSegment(target string) string {
	_, name := firstMatch(targetRules, target, domain.NeutralFactors)
	return name
}

// AverageOrderValue estimates the revenue of one conversion for target.
func AverageOrderValue(target string) float64 {
	v, _ := firstMatch(orderValueRules, target, DefaultOrderValue)
	return v
}
