package reconciling

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// MonthLabels são os rótulos exibidos em cada linha da grade
var MonthLabels = [domain.MonthsPerGrid]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// BuildGrid monta a grade densa de 12 meses de uma marca/ano a partir dos registros
// esparsos. Registros de outras marcas, de outro ano ou com mês fora de 1..12 são ignorados.
func BuildGrid(entityID string, year int, records []domain.PerformanceRecord) domain.Grid {
	grid := domain.Grid{
		EntityID: entityID,
		Year:     year,
	}

	for i := range grid.Rows {
		grid.Rows[i] = domain.GridRow{
			Month:      i + 1,
			MonthLabel: MonthLabels[i],
		}
	}

	for _, record := range records {
		if record.EntityID != entityID || record.Year != year {
			continue
		}

		row, ok := grid.Row(record.Month)
		if !ok {
			continue
		}

		row.ActualAmount = record.ActualAmount
		row.ActualUnits = record.ActualUnits
		row.GoalAmount = record.GoalAmount
		row.Baseline = row.Values()
	}

	for i := range grid.Rows {
		refreshIndicators(&grid.Rows[i])
	}

	return grid
}

func refreshIndicators(row *domain.GridRow) {
	row.VariancePct, row.ScorePct = CalculateIndicators(row.ActualAmount, row.GoalAmount)
}
