package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const (
	performanceTable = "performance_records"
	historyTable     = "performance_history"
)

var performanceColumns = []string{"entity_id", "year", "month", "actual_amount", "actual_units", "goal_amount", "updated_at"}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

func (r *performanceRepository) ListByYear(ctx context.Context, entityID string, year int) ([]domain.PerformanceRecord, error) {
	builder := squirrel.
		Select(performanceColumns...).
		From(performanceTable).
		Where(squirrel.Eq{"year": year}).
		OrderBy("entity_id ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar)

	if entityID != "" {
		builder = builder.Where(squirrel.Eq{"entity_id": entityID})
	}

	return r.list(ctx, builder)
}

func (r *performanceRepository) ListByPeriod(ctx context.Context, year, month int) ([]domain.PerformanceRecord, error) {
	builder := squirrel.
		Select(performanceColumns...).
		From(performanceTable).
		Where(squirrel.Eq{"year": year, "month": month}).
		OrderBy("entity_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, builder)
}

func (r *performanceRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.PerformanceRecord, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.PerformanceRecord, 0)
	for rows.Next() {
		var record domain.PerformanceRecord
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&record.EntityID,
			&record.Year,
			&record.Month,
			&record.ActualAmount,
			&record.ActualUnits,
			&record.GoalAmount,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de desempenho: %w", err)
		}
		if updatedAt.Valid {
			record.UpdatedAt = &updatedAt.Time
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *performanceRepository) SaveBatch(ctx context.Context, records []domain.PerformanceRecord, history []domain.HistoryEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			if err := upsertRecord(ctx, tx, record); err != nil {
				return fmt.Errorf("erro ao gravar %s %s: %w", record.EntityID, domain.FormatPeriod(record.Month, record.Year), err)
			}
		}

		return insertHistory(ctx, tx, history)
	})
}

func upsertRecord(ctx context.Context, q postgres.Queryer, record domain.PerformanceRecord) error {
	query, args, err := squirrel.
		Insert(performanceTable).
		Columns("entity_id", "year", "month", "actual_amount", "actual_units", "goal_amount").
		Values(record.EntityID, record.Year, record.Month, record.ActualAmount, record.ActualUnits, record.GoalAmount).
		Suffix(`
			ON CONFLICT (entity_id, year, month) DO UPDATE SET
				actual_amount = EXCLUDED.actual_amount,
				actual_units = EXCLUDED.actual_units,
				goal_amount = EXCLUDED.goal_amount,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func insertHistory(ctx context.Context, q postgres.Queryer, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query, args, err := historyInsertQuery(entries)
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func historyInsertQuery(entries []domain.HistoryEntry) (string, []interface{}, error) {
	builder := squirrel.
		Insert(historyTable).
		Columns("entity_id", "entity_name", "year", "month", "field", "previous_value", "new_value", "user_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, entry := range entries {
		month, year, err := parsePeriod(entry.MonthAffected)
		if err != nil {
			return "", nil, err
		}
		userID := sql.NullInt64{Int64: int64(entry.UserID), Valid: entry.UserID > 0}
		builder = builder.Values(entry.EntityID, entry.EntityName, year, month, string(entry.Field), entry.PreviousValue, entry.NewValue, userID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return query, args, nil
}

func parsePeriod(period string) (month, year int, err error) {
	if _, err := fmt.Sscanf(period, "%02d-%04d", &month, &year); err != nil {
		return 0, 0, fmt.Errorf("período inválido %q: %w", period, err)
	}
	return month, year, nil
}
