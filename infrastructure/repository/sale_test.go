package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestSaleHistory(t *testing.T) {
	t.Run("venda em mês existente registra valor e unidades", func(t *testing.T) {
		effect := SaleEffect{
			Previous: domain.PerformanceRecord{EntityID: "B1", Year: 2024, Month: 3, ActualAmount: 100, ActualUnits: 2, GoalAmount: 500},
			Current:  domain.PerformanceRecord{EntityID: "B1", Year: 2024, Month: 3, ActualAmount: 150, ActualUnits: 3, GoalAmount: 500},
		}

		entries := saleHistory(effect, "Marca 1", 7)

		require.Len(t, entries, 2)
		assert.Equal(t, domain.FieldActualAmount, entries[0].Field)
		assert.Equal(t, 100.0, entries[0].PreviousValue)
		assert.Equal(t, 150.0, entries[0].NewValue)
		assert.Equal(t, "03-2024", entries[0].MonthAffected)
		assert.Equal(t, "Marca 1", entries[0].EntityName)
		assert.Equal(t, domain.FieldActualUnits, entries[1].Field)
		assert.Equal(t, 7, entries[1].UserID)
	})

	t.Run("mês criado pela venda também registra a meta padrão", func(t *testing.T) {
		effect := SaleEffect{
			Previous: domain.PerformanceRecord{EntityID: "B1", Year: 2024, Month: 3},
			Current:  domain.PerformanceRecord{EntityID: "B1", Year: 2024, Month: 3, ActualAmount: 50, ActualUnits: 1, GoalAmount: 500},
			Created:  true,
		}

		entries := saleHistory(effect, "Marca 1", 0)

		require.Len(t, entries, 3)
		assert.Equal(t, domain.FieldGoalAmount, entries[2].Field)
		assert.Equal(t, 500.0, entries[2].NewValue)
	})
}

func TestParsePeriod(t *testing.T) {
	month, year, err := parsePeriod("03-2024")
	require.NoError(t, err)
	assert.Equal(t, 3, month)
	assert.Equal(t, 2024, year)

	_, _, err = parsePeriod("março")
	assert.Error(t, err)
}

func TestHistoryInsertQuery(t *testing.T) {
	entries := []domain.HistoryEntry{
		{EntityID: "B1", EntityName: "Marca 1", MonthAffected: "05-2024", Field: domain.FieldActualAmount, PreviousValue: 10, NewValue: 20, UserID: 7},
		{EntityID: "B1", EntityName: "Marca 1", MonthAffected: "05-2024", Field: domain.FieldGoalAmount, NewValue: 30},
	}

	query, args, err := historyInsertQuery(entries)

	require.NoError(t, err)
	assert.Contains(t, query, "user_id")
	require.Len(t, args, 16)
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, args[7])
	assert.Equal(t, sql.NullInt64{}, args[15])
	assert.Equal(t, 2024, args[2])
	assert.Equal(t, 5, args[3])

	_, _, err = historyInsertQuery([]domain.HistoryEntry{{MonthAffected: "maio"}})
	assert.Error(t, err)
}
