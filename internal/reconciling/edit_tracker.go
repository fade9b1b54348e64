package reconciling

import (
	"fmt"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// ApplyEdit grava o valor no campo da linha, recalcula dirty por igualdade exata
// contra a foto base e recalcula os indicadores. A foto base nunca é alterada.
func ApplyEdit(row *domain.GridRow, field domain.Field, value float64) error {
	switch field {
	case domain.FieldActualAmount:
		row.ActualAmount = value
	case domain.FieldActualUnits:
		row.ActualUnits = value
	case domain.FieldGoalAmount:
		row.GoalAmount = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	row.Dirty = row.Values() != row.Baseline
	refreshIndicators(row)

	return nil
}

// WithEdit aplica a edição em uma cópia da grade e a devolve com o
// indicador de alterações pendentes recalculado. A grade original não muda.
func WithEdit(grid domain.Grid, month int, field domain.Field, value float64) (domain.Grid, error) {
	row, ok := grid.Row(month)
	if !ok {
		return grid, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	if err := ApplyEdit(row, field, value); err != nil {
		return grid, err
	}

	grid.HasUnsavedChanges = HasUnsavedChanges(grid)
	return grid, nil
}

// HasUnsavedChanges é o OU lógico de dirty entre as 12 linhas
func HasUnsavedChanges(grid domain.Grid) bool {
	for _, row := range grid.Rows {
		if row.Dirty {
			return true
		}
	}
	return false
}
