package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateIndicators(t *testing.T) {
	tests := []struct {
		name         string
		actual       float64
		goal         float64
		wantVariance float64
		wantScore    float64
	}{
		{name: "Meta positiva acima do realizado", actual: 500, goal: 400, wantVariance: 25, wantScore: 125},
		{name: "Meta positiva abaixo do realizado", actual: 300, goal: 400, wantVariance: -25, wantScore: 75},
		{name: "Realizado igual à meta", actual: 400, goal: 400, wantVariance: 0, wantScore: 100},
		{name: "Sem meta e sem vendas", actual: 0, goal: 0, wantVariance: 0, wantScore: 0},
		{name: "Sem meta com vendas", actual: 100, goal: 0, wantVariance: 0, wantScore: 100},
		{name: "Meta positiva sem vendas", actual: 0, goal: 250, wantVariance: -100, wantScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variance, score := CalculateIndicators(tt.actual, tt.goal)
			assert.Equal(t, tt.wantVariance, variance)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestCalculateIndicators_ScoreIsExactRatio(t *testing.T) {
	pairs := [][2]float64{{1, 3}, {7.5, 2.5}, {1234.56, 789.01}, {0.01, 1000}}

	for _, p := range pairs {
		_, score := CalculateIndicators(p[0], p[1])
		assert.Equal(t, p[0]/p[1]*100, score)
	}
}
