//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
package performing

import (
	"context"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// Performer concentra as operações de desempenho mensal expostas pela API
type Performer interface {
	// FetchConfig devolve marcas e categorias do painel
	FetchConfig(ctx context.Context) (*domain.DashboardConfig, error)

	// ListPerformance lista os registros esparsos do ano. entityID vazio traz todas as marcas.
	ListPerformance(ctx context.Context, entityID string, year int) ([]domain.PerformanceRecord, error)

	// GetGrid monta a grade de 12 meses de uma marca
	GetGrid(ctx context.Context, entityID string, year int) (*domain.Grid, error)

	// SubmitChangeBatch valida, normaliza e grava um lote com o histórico de auditoria
	SubmitChangeBatch(ctx context.Context, userID int, changeSet domain.ChangeSet) (*BatchResult, error)

	GetHistory(ctx context.Context, filters domain.HistoryFilters) ([]domain.HistoryEntry, error)

	RegisterSale(ctx context.Context, req domain.RegisterSaleRequest) (*domain.Sale, error)

	UpdateBrandGoal(ctx context.Context, brandID string, goal float64) (*domain.Brand, error)

	// GetBrandTotals soma as vendas por marca para os gráficos
	GetBrandTotals(ctx context.Context, filters domain.SalesFilters) ([]domain.BrandTotal, error)
}

// BatchResult resume um lote gravado
type BatchResult struct {
	Saved          int `json:"saved"`
	HistoryEntries int `json:"history_entries"`
}
