package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestApplyEdit(t *testing.T) {
	baseRow := func() domain.GridRow {
		grid := BuildGrid("B1", 2024, []domain.PerformanceRecord{
			{EntityID: "B1", Year: 2024, Month: 1, ActualAmount: 200, ActualUnits: 2, GoalAmount: 100},
		})
		return grid.Rows[0]
	}

	t.Run("Edição marca a linha como alterada e recalcula indicadores", func(t *testing.T) {
		row := baseRow()
		require.NoError(t, ApplyEdit(&row, domain.FieldGoalAmount, 400))

		assert.True(t, row.Dirty)
		assert.Equal(t, 400.0, row.GoalAmount)
		assert.Equal(t, -50.0, row.VariancePct)
		assert.Equal(t, 50.0, row.ScorePct)
		assert.Equal(t, 100.0, row.Baseline.GoalAmount)
	})

	t.Run("Aplicar o mesmo valor duas vezes é idempotente", func(t *testing.T) {
		row := baseRow()
		require.NoError(t, ApplyEdit(&row, domain.FieldActualUnits, 5))
		first := row
		require.NoError(t, ApplyEdit(&row, domain.FieldActualUnits, 5))

		assert.Equal(t, first, row)
	})

	t.Run("Reverter todos os campos para a foto base limpa dirty", func(t *testing.T) {
		row := baseRow()
		require.NoError(t, ApplyEdit(&row, domain.FieldActualAmount, 1))
		require.NoError(t, ApplyEdit(&row, domain.FieldActualUnits, 9))
		require.NoError(t, ApplyEdit(&row, domain.FieldGoalAmount, 7))
		assert.True(t, row.Dirty)

		require.NoError(t, ApplyEdit(&row, domain.FieldGoalAmount, row.Baseline.GoalAmount))
		require.NoError(t, ApplyEdit(&row, domain.FieldActualUnits, row.Baseline.ActualUnits))
		assert.True(t, row.Dirty)

		require.NoError(t, ApplyEdit(&row, domain.FieldActualAmount, row.Baseline.ActualAmount))
		assert.False(t, row.Dirty)
		assert.Equal(t, 200.0, row.ScorePct)
	})

	t.Run("Diferença mínima ainda conta como alteração", func(t *testing.T) {
		row := baseRow()
		require.NoError(t, ApplyEdit(&row, domain.FieldActualAmount, 200.0000001))
		assert.True(t, row.Dirty)
	})

	t.Run("Campo desconhecido retorna erro sem alterar a linha", func(t *testing.T) {
		row := baseRow()
		before := row
		err := ApplyEdit(&row, domain.Field("discount"), 10)

		assert.ErrorIs(t, err, ErrUnknownField)
		assert.Equal(t, before, row)
	})
}

func TestWithEdit(t *testing.T) {
	original := BuildGrid("B1", 2024, nil)

	edited, err := WithEdit(original, 5, domain.FieldActualAmount, 100)
	require.NoError(t, err)

	assert.True(t, edited.HasUnsavedChanges)
	assert.True(t, edited.Rows[4].Dirty)
	assert.False(t, original.HasUnsavedChanges, "a grade original não deve mudar")
	assert.False(t, original.Rows[4].Dirty)
	assert.Zero(t, original.Rows[4].ActualAmount)

	reverted, err := WithEdit(edited, 5, domain.FieldActualAmount, 0)
	require.NoError(t, err)
	assert.False(t, reverted.HasUnsavedChanges)

	_, err = WithEdit(original, 0, domain.FieldActualAmount, 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = WithEdit(original, 13, domain.FieldActualAmount, 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestWithEdit_UnsavedFlagTracksAllRows(t *testing.T) {
	grid := BuildGrid("B1", 2024, nil)

	grid, _ = WithEdit(grid, 1, domain.FieldGoalAmount, 10)
	grid, _ = WithEdit(grid, 12, domain.FieldGoalAmount, 10)
	grid, _ = WithEdit(grid, 1, domain.FieldGoalAmount, 0)
	assert.True(t, grid.HasUnsavedChanges, "dezembro ainda está alterado")

	grid, _ = WithEdit(grid, 12, domain.FieldGoalAmount, 0)
	assert.False(t, grid.HasUnsavedChanges)
}
