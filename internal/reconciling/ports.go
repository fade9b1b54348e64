package reconciling

import (
	"context"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// RecordSource busca os registros de desempenho. entityID vazio busca todas as marcas do ano.
type RecordSource interface {
	FetchPerformance(ctx context.Context, entityID string, year int) ([]domain.PerformanceRecord, error)
}

// PersistenceSink recebe o lote de alterações. Uma falha deve carregar a mensagem
// a ser exibida ao usuário (ver domain.SubmissionError).
type PersistenceSink interface {
	SubmitChangeBatch(ctx context.Context, changeSet domain.ChangeSet) error
}
