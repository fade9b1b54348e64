package reconciling

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// BuildChangeSet coleta as linhas alteradas da grade em um lote, uma entrada por
// mês, na ordem dos meses. Os valores da foto base seguem como previous* para auditoria.
func BuildChangeSet(grid domain.Grid, entityName string) domain.ChangeSet {
	changeSet := make(domain.ChangeSet, 0)

	for _, row := range grid.Rows {
		if !row.Dirty {
			continue
		}

		changeSet = append(changeSet, domain.ChangeEntry{
			EntityID:             grid.EntityID,
			EntityName:           entityName,
			Year:                 grid.Year,
			Month:                row.Month,
			ActualAmount:         row.ActualAmount,
			ActualUnits:          row.ActualUnits,
			GoalAmount:           row.GoalAmount,
			PreviousActualAmount: row.Baseline.ActualAmount,
			PreviousActualUnits:  row.Baseline.ActualUnits,
			PreviousGoalAmount:   row.Baseline.GoalAmount,
		})
	}

	return changeSet
}
