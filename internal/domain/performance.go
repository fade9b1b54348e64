// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"
)

// MonthsPerGrid é a quantidade fixa de linhas de uma grade de desempenho
const MonthsPerGrid = 12

// Field identifica uma coluna editável da grade
type Field string

const (
	FieldActualAmount Field = "actual_amount"
	FieldActualUnits  Field = "actual_units"
	FieldGoalAmount   Field = "goal_amount"
)

// EditableFields lista as colunas editáveis na ordem em que são exibidas
var EditableFields = []Field{FieldActualAmount, FieldActualUnits, FieldGoalAmount}

// ParseField converte o nome recebido do cliente em um Field válido
func ParseField(name string) (Field, error) {
	for _, field := range EditableFields {
		if string(field) == name {
			return field, nil
		}
	}
	return "", fmt.Errorf("campo desconhecido: %q", name)
}

// PerformanceRecord é o registro mensal esparso vindo do servidor.
// Identificado unicamente por (EntityID, Year, Month).
type PerformanceRecord struct {
	EntityID     string     `json:"entity_id"`
	Year         int        `json:"year"`
	Month        int        `json:"month"` // 1..12
	ActualAmount float64    `json:"actual_amount"`
	ActualUnits  float64    `json:"actual_units"`
	GoalAmount   float64    `json:"goal_amount"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// RowValues são os três valores brutos de uma linha
type RowValues struct {
	ActualAmount float64 `json:"actual_amount"`
	ActualUnits  float64 `json:"actual_units"`
	GoalAmount   float64 `json:"goal_amount"`
}

// Get retorna o valor do campo informado
func (v RowValues) Get(field Field) (float64, bool) {
	switch field {
	case FieldActualAmount:
		return v.ActualAmount, true
	case FieldActualUnits:
		return v.ActualUnits, true
	case FieldGoalAmount:
		return v.GoalAmount, true
	}
	return 0, false
}

// GridRow é uma linha (um mês) da grade de desempenho
type GridRow struct {
	Month        int       `json:"month"`
	MonthLabel   string    `json:"month_label"`
	ActualAmount float64   `json:"actual_amount"`
	ActualUnits  float64   `json:"actual_units"`
	GoalAmount   float64   `json:"goal_amount"`
	VariancePct  float64   `json:"variance_pct"`
	ScorePct     float64   `json:"score_pct"`
	Dirty        bool      `json:"dirty"`
	Baseline     RowValues `json:"baseline"`
}

// Values retorna os valores atuais da linha
func (r GridRow) Values() RowValues {
	return RowValues{
		ActualAmount: r.ActualAmount,
		ActualUnits:  r.ActualUnits,
		GoalAmount:   r.GoalAmount,
	}
}

// Grid é a grade densa de 12 meses para um par (EntityID, Year)
type Grid struct {
	EntityID          string                 `json:"entity_id"`
	Year              int                    `json:"year"`
	Rows              [MonthsPerGrid]GridRow `json:"rows"`
	HasUnsavedChanges bool                   `json:"has_unsaved_changes"`
}

// Row retorna a linha do mês informado (1..12)
func (g *Grid) Row(month int) (*GridRow, bool) {
	if month < 1 || month > MonthsPerGrid {
		return nil, false
	}
	return &g.Rows[month-1], true
}

// ChangeEntry representa a alteração de um mês, com os valores anteriores para auditoria
type ChangeEntry struct {
	EntityID             string  `json:"entity_id"`
	EntityName           string  `json:"entity_name"`
	Year                 int     `json:"year"`
	Month                int     `json:"month"`
	ActualAmount         float64 `json:"actual_amount"`
	ActualUnits          float64 `json:"actual_units"`
	GoalAmount           float64 `json:"goal_amount"`
	PreviousActualAmount float64 `json:"previous_actual_amount"`
	PreviousActualUnits  float64 `json:"previous_actual_units"`
	PreviousGoalAmount   float64 `json:"previous_goal_amount"`
}

// Current retorna os valores novos da entrada
func (e ChangeEntry) Current() RowValues {
	return RowValues{ActualAmount: e.ActualAmount, ActualUnits: e.ActualUnits, GoalAmount: e.GoalAmount}
}

// Previous retorna os valores anteriores da entrada
func (e ChangeEntry) Previous() RowValues {
	return RowValues{ActualAmount: e.PreviousActualAmount, ActualUnits: e.PreviousActualUnits, GoalAmount: e.PreviousGoalAmount}
}

// ChangeSet é o lote mínimo de alterações, um item por mês alterado, em ordem de mês
type ChangeSet []ChangeEntry

// IsEmpty indica que não há nada a enviar
func (c ChangeSet) IsEmpty() bool {
	return len(c) == 0
}
