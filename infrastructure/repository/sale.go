package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const salesTable = "sales"

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) Register(ctx context.Context, sale domain.Sale, opts RegisterSaleOptions) (*SaleEffect, error) {
	var effect *SaleEffect

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertSale(ctx, tx, sale); err != nil {
			return err
		}

		var err error
		effect, err = addSaleToRecord(ctx, tx, sale, opts.DefaultGoal)
		if err != nil {
			return err
		}

		if !opts.RecordHistory {
			return nil
		}

		return insertHistory(ctx, tx, saleHistory(*effect, opts.EntityName, opts.UserID))
	})
	if err != nil {
		return nil, err
	}

	return effect, nil
}

func insertSale(ctx context.Context, q postgres.Queryer, sale domain.Sale) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("id", "sale_date", "amount", "units", "brand_id", "category_id").
		Values(sale.ID, sale.Date.Format(time.DateOnly), sale.Amount, sale.Units, sale.BrandID, sale.CategoryID).
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

func addSaleToRecord(ctx context.Context, q postgres.Queryer, sale domain.Sale, defaultGoal float64) (*SaleEffect, error) {
	year, month := sale.Date.Year(), int(sale.Date.Month())

	query, args, err := squirrel.
		Insert(performanceTable).
		Columns("entity_id", "year", "month", "actual_amount", "actual_units", "goal_amount").
		Values(sale.BrandID, year, month, sale.Amount, sale.Units, defaultGoal).
		Suffix(`
			ON CONFLICT (entity_id, year, month) DO UPDATE SET
				actual_amount = performance_records.actual_amount + EXCLUDED.actual_amount,
				actual_units = performance_records.actual_units + EXCLUDED.actual_units,
				updated_at = NOW()
			RETURNING actual_amount, actual_units, goal_amount, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	current := domain.PerformanceRecord{EntityID: sale.BrandID, Year: year, Month: month}
	var inserted bool
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&current.ActualAmount,
		&current.ActualUnits,
		&current.GoalAmount,
		&inserted,
	)
	if err != nil {
		return nil, wrapExecError(err)
	}

	previous := current
	previous.ActualAmount -= sale.Amount
	previous.ActualUnits -= sale.Units
	if inserted {
		previous.GoalAmount = 0
	}

	return &SaleEffect{Previous: previous, Current: current, Created: inserted}, nil
}

func saleHistory(effect SaleEffect, entityName string, userID int) []domain.HistoryEntry {
	period := domain.FormatPeriod(effect.Current.Month, effect.Current.Year)
	entries := make([]domain.HistoryEntry, 0, len(domain.EditableFields))

	for _, field := range domain.EditableFields {
		previous, _ := recordValue(effect.Previous, field)
		current, _ := recordValue(effect.Current, field)
		if previous == current {
			continue
		}
		entries = append(entries, domain.HistoryEntry{
			EntityID:      effect.Current.EntityID,
			EntityName:    entityName,
			MonthAffected: period,
			Field:         field,
			PreviousValue: previous,
			NewValue:      current,
			UserID:        userID,
		})
	}

	return entries
}

func recordValue(record domain.PerformanceRecord, field domain.Field) (float64, bool) {
	return domain.RowValues{
		ActualAmount: record.ActualAmount,
		ActualUnits:  record.ActualUnits,
		GoalAmount:   record.GoalAmount,
	}.Get(field)
}

func (r *saleRepository) SumByBrand(ctx context.Context, filters domain.SalesFilters) ([]BrandSalesSum, error) {
	builder := squirrel.
		Select("brand_id", "COALESCE(SUM(amount), 0)", "COALESCE(SUM(units), 0)").
		From(salesTable).
		GroupBy("brand_id").
		OrderBy("brand_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.CategoryID != "" {
		builder = builder.Where(squirrel.Eq{"category_id": filters.CategoryID})
	}
	if filters.BrandID != "" {
		builder = builder.Where(squirrel.Eq{"brand_id": filters.BrandID})
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

	sums := make([]BrandSalesSum, 0)
	for rows.Next() {
		var sum BrandSalesSum
		if err := rows.Scan(&sum.BrandID, &sum.Amount, &sum.Units); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais de vendas: %w", err)
		}
		sums = append(sums, sum)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sums, nil
}
