package domain

import (
	"fmt"
	"time"
)

// HistoryEntry é uma linha do histórico de auditoria
type HistoryEntry struct {
	ID            int64     `json:"id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	EntityID      string    `json:"entity_id,omitempty"`
	EntityName    string    `json:"entity_name"`
	MonthAffected string    `json:"month_affected"` // mm-yyyy
	Field         Field     `json:"field"`
	PreviousValue float64   `json:"previous_value"`
	NewValue      float64   `json:"new_value"`
	UserID        int       `json:"user_id,omitempty"` // autor da alteração, 0 quando desconhecido
}

// HistoryPage é uma página do histórico para exibição
type HistoryPage struct {
	Entries    []HistoryEntry `json:"entries"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
}

// FormatPeriod formata mês e ano no padrão mm-yyyy
func FormatPeriod(month, year int) string {
	return fmt.Sprintf("%02d-%04d", month, year)
}

// HistoryFilters restringe a consulta do histórico. Campos zerados não filtram.
type HistoryFilters struct {
	EntityID string
	Year     int
	Limit    int
}
