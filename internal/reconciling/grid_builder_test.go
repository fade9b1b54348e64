package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func assertTwelveOrderedRows(t *testing.T, grid domain.Grid) {
	t.Helper()
	require.Len(t, grid.Rows, domain.MonthsPerGrid)
	for i, row := range grid.Rows {
		assert.Equal(t, i+1, row.Month)
		assert.Equal(t, MonthLabels[i], row.MonthLabel)
	}
}

func TestBuildGrid_AlwaysTwelveRows(t *testing.T) {
	full := make([]domain.PerformanceRecord, 0, 12)
	for m := 1; m <= 12; m++ {
		full = append(full, domain.PerformanceRecord{EntityID: "B1", Year: 2024, Month: m, ActualAmount: float64(m * 10)})
	}

	tests := []struct {
		name    string
		records []domain.PerformanceRecord
	}{
		{name: "Nenhum registro", records: nil},
		{name: "Um registro", records: []domain.PerformanceRecord{{EntityID: "B1", Year: 2024, Month: 7, ActualAmount: 10}}},
		{name: "Doze registros", records: full},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildGrid("B1", 2024, tt.records)
			assertTwelveOrderedRows(t, grid)
			assert.False(t, grid.HasUnsavedChanges)
			for _, row := range grid.Rows {
				assert.False(t, row.Dirty)
				assert.Equal(t, row.Values(), row.Baseline)
			}
		})
	}
}

func TestBuildGrid_ComputesIndicatorsFromRecords(t *testing.T) {
	records := []domain.PerformanceRecord{
		{EntityID: "B1", Year: 2024, Month: 3, ActualAmount: 500, ActualUnits: 4, GoalAmount: 400},
	}

	grid := BuildGrid("B1", 2024, records)

	row := grid.Rows[2]
	assert.Equal(t, 500.0, row.ActualAmount)
	assert.Equal(t, 4.0, row.ActualUnits)
	assert.Equal(t, 400.0, row.GoalAmount)
	assert.Equal(t, 25.0, row.VariancePct)
	assert.Equal(t, 125.0, row.ScorePct)
	assert.Equal(t, domain.RowValues{ActualAmount: 500, ActualUnits: 4, GoalAmount: 400}, row.Baseline)

	// meses sem registro usam o ramo de meta zero
	assert.Equal(t, 0.0, grid.Rows[0].ScorePct)
	assert.Equal(t, 0.0, grid.Rows[0].VariancePct)
}

func TestBuildGrid_FiltersForeignRecords(t *testing.T) {
	records := []domain.PerformanceRecord{
		{EntityID: "B2", Year: 2024, Month: 1, ActualAmount: 999},
		{EntityID: "B1", Year: 2023, Month: 2, ActualAmount: 999},
		{EntityID: "B1", Year: 2024, Month: 0, ActualAmount: 999},
		{EntityID: "B1", Year: 2024, Month: 13, ActualAmount: 999},
		{EntityID: "B1", Year: 2024, Month: 4, ActualAmount: 50, GoalAmount: 100},
	}

	grid := BuildGrid("B1", 2024, records)

	assertTwelveOrderedRows(t, grid)
	for _, row := range grid.Rows {
		if row.Month == 4 {
			assert.Equal(t, 50.0, row.ActualAmount)
			assert.Equal(t, 50.0, row.ScorePct)
			continue
		}
		assert.Zero(t, row.ActualAmount, "mês %d", row.Month)
	}
}
