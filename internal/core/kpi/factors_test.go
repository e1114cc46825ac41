package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campaign-kpi/internal/core/domain"
)

func TestObjectiveFactors(t *testing.T) {
	tests := map[string]domain.Factors{
		domain.ObjectiveAwareness:     {CPM: 0.8, CTR: 0.7, Conversion: 0.5},
		domain.ObjectiveConsideration: {CPM: 1.0, CTR: 1.2, Conversion: 0.8},
		domain.ObjectiveConversion:    {CPM: 1.3, CTR: 1.0, Conversion: 1.5},
		domain.ObjectiveRetention:     {CPM: 1.1, CTR: 1.3, Conversion: 1.8},
		"":                            domain.NeutralFactors,
		"awareness":                   domain.NeutralFactors,
	}
	for objective, want := range tests {
		assert.Equal(t, want, ObjectiveFactors(objective), objective)
	}
}

func TestTargetFactors(t *testing.T) {
	b2b := domain.Factors{CPM: 1.4, CTR: 0.8, Conversion: 0.7}
	youth := domain.Factors{CPM: 0.9, CTR: 1.2, Conversion: 0.9}
	senior := domain.Factors{CPM: 1.5, CTR: 0.9, Conversion: 1.2}

	tests := []struct {
		target  string
		want    domain.Factors
		segment string
	}{
		{"PMI italiane B2B", b2b, "b2b"},
		{"Aziende manifatturiere", b2b, "b2b"},
		{"Professionisti del settore legale", b2b, "b2b"},
		{"professionisti e studenti", b2b, "b2b"},
		{"Giovani 18-25", youth, "youth"},
		{"Studenti universitari", youth, "youth"},
		{"giovani manager", youth, "youth"},
		{"Manager IT", senior, "senior"},
		{"Dirigenti pubblici", senior, "senior"},
		{"appassionati di cucina", domain.NeutralFactors, ""},
		{"", domain.NeutralFactors, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetFactors(tt.target), tt.target)
		assert.Equal(t, tt.segment, TargetSegment(tt.target), tt.target)
	}
}

func TestAverageOrderValue(t *testing.T) {
	tests := map[string]float64{
		"PMI B2B":                      500,
		"Imprese edili":                500,
		"gioielleria di lusso premium": 300,
		"Elettronica di consumo":       150,
		"Moda donna":                   80,
		"food delivery":                50,
		"settore alimentare":           50,
		"aziende di moda":              500,
		"pensionati":                   DefaultOrderValue,
		"":                             DefaultOrderValue,
	}
	for target, want := range tests {
		assert.Equal(t, want, AverageOrderValue(target), target)
	}
}
