package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type historyRepository struct {
	conn *postgres.Connection
}

func NewHistoryRepository(conn *postgres.Connection) HistoryRepository {
	return &historyRepository{
		conn: conn,
	}
}

// List devolve o histórico do mais recente para o mais antigo
func (r *historyRepository) List(ctx context.Context, filter HistoryFilter) ([]domain.HistoryEntry, error) {
	builder := squirrel.
		Select("id", "created_at", "entity_id", "entity_name", "year", "month", "field", "previous_value", "new_value", "COALESCE(user_id, 0)").
		From(historyTable).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.EntityID != "" {
		builder = builder.Where(squirrel.Eq{"entity_id": filter.EntityID})
	}
	if filter.Year > 0 {
		builder = builder.Where(squirrel.Eq{"year": filter.Year})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var entry domain.HistoryEntry
		var year, month int
		var field string
		if err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.EntityID,
			&entry.EntityName,
			&year,
			&month,
			&field,
			&entry.PreviousValue,
			&entry.NewValue,
			&entry.UserID,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		entry.Field = domain.Field(field)
		entry.MonthAffected = domain.FormatPeriod(month, year)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *historyRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(historyTable).
		Where(squirrel.Lt{"created_at": before}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
