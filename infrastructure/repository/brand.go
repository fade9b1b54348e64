package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const (
	brandsTable     = "brands"
	categoriesTable = "categories"
)

var brandColumns = []string{"id", "name", "category_id", "goal", "created_at", "updated_at"}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	query, args, err := squirrel.
		Select(brandColumns...).
		From(brandsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	brands := make([]domain.Brand, 0)
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, *brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return brands, nil
}

func (r *brandRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(categoriesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *brandRepository) GetBrandByID(ctx context.Context, id string) (*domain.Brand, error) {
	query, args, err := squirrel.
		Select(brandColumns...).
		From(brandsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	brand, err := scanBrand(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return brand, nil
}

func (r *brandRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(categoriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var category domain.Category
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
	}

	return &category, nil
}

func (r *brandRepository) UpdateGoal(ctx context.Context, id string, goal float64) error {
	query, args, err := squirrel.
		Update(brandsTable).
		Set("goal", goal).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBrand(row rowScanner) (*domain.Brand, error) {
	var brand domain.Brand
	err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.CategoryID,
		&brand.Goal,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("erro ao escanear marca: %w", err)
	}
	return &brand, nil
}
