//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

var ErrNotFound = errors.New("registro não encontrado")

type PerformanceRepository interface {
	// ListByYear lista os registros do ano. entityID vazio traz todas as marcas.
	ListByYear(ctx context.Context, entityID string, year int) ([]domain.PerformanceRecord, error)
	ListByPeriod(ctx context.Context, year, month int) ([]domain.PerformanceRecord, error)
	// SaveBatch grava registros e histórico na mesma transação
	SaveBatch(ctx context.Context, records []domain.PerformanceRecord, history []domain.HistoryEntry) error
}

type BrandRepository interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetBrandByID(ctx context.Context, id string) (*domain.Brand, error)
	GetCategoryByID(ctx context.Context, id string) (*domain.Category, error)
	UpdateGoal(ctx context.Context, id string, goal float64) error
}

type HistoryRepository interface {
	List(ctx context.Context, filter HistoryFilter) ([]domain.HistoryEntry, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

type SaleRepository interface {
	// Register grava a venda e soma valor e unidades no registro do mês
	Register(ctx context.Context, sale domain.Sale, opts RegisterSaleOptions) (*SaleEffect, error)
	SumByBrand(ctx context.Context, filters domain.SalesFilters) ([]BrandSalesSum, error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

// HistoryFilter restringe a consulta do histórico. Campos zerados não filtram.
type HistoryFilter struct {
	EntityID string
	Year     int
	Limit    uint64
}

type RegisterSaleOptions struct {
	DefaultGoal   float64 // meta usada quando o mês ainda não tem registro
	RecordHistory bool
	EntityName    string
	UserID        int // autor gravado no histórico, 0 quando desconhecido
}

// SaleEffect descreve o registro mensal antes e depois da venda
type SaleEffect struct {
	Previous domain.PerformanceRecord
	Current  domain.PerformanceRecord
	Created  bool
}

type BrandSalesSum struct {
	BrandID string
	Amount  decimal.Decimal
	Units   decimal.Decimal
}

func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
