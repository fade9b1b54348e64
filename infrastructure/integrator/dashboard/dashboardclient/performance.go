package dashboardclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reconciling"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// FetchPerformance busca os registros esparsos do ano. Payloads fora do formato
// esperado viram sequência vazia, com o motivo registrado em log.
func (c *DashboardClient) FetchPerformance(ctx context.Context, entityID string, year int) ([]domain.PerformanceRecord, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	if entityID != "" {
		query.Set("entity_id", entityID)
	}

	resp, err := c.do(ctx, http.MethodGet, "/v1/performance", query, nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, errors.Wrap(resp.apiError(), "erro ao buscar registros de desempenho")
	}

	normalized := reconciling.NormalizeSequence[domain.PerformanceRecord](resp.Body)
	if !normalized.OK() {
		log.ForContext(ctx).WithFields(log.Fields{
			"entity_id": entityID,
			"year":      year,
			"reason":    normalized.Reason,
		}).Warn("dashboard-client: resposta de desempenho malformada, usando sequência vazia")
	}

	return normalized.Records, nil
}

// SubmitChangeBatch envia o lote. Uma recusa do servidor volta como
// *domain.SubmissionError com a mensagem original.
func (c *DashboardClient) SubmitChangeBatch(ctx context.Context, changeSet domain.ChangeSet) error {
	resp, err := c.do(ctx, http.MethodPost, "/v1/performance/batch", nil, changeSet)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.apiError()
	}
	return nil
}

// FetchConfig busca marcas e categorias. Cada lista passa pelo normalizador,
// então uma lista malformada vira vazia sem derrubar a outra.
func (c *DashboardClient) FetchConfig(ctx context.Context) (*domain.DashboardConfig, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/config", nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, errors.Wrap(resp.apiError(), "erro ao buscar configuração do painel")
	}

	var raw struct {
		Entities   jsoniter.RawMessage `json:"entities"`
		Categories jsoniter.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(reconciling.UnwrapEnvelope(resp.Body), &raw); err != nil {
		log.ForContext(ctx).WithError(err).Warn("dashboard-client: configuração malformada, usando listas vazias")
	}

	entities := reconciling.NormalizeSequence[domain.Brand](raw.Entities)
	categories := reconciling.NormalizeSequence[domain.Category](raw.Categories)
	if !entities.OK() || !categories.OK() {
		log.ForContext(ctx).WithFields(log.Fields{
			"reason_entities":   entities.Reason,
			"reason_categories": categories.Reason,
		}).Warn("dashboard-client: lista de configuração malformada, usando sequência vazia")
	}

	return &domain.DashboardConfig{Entities: entities.Records, Categories: categories.Records}, nil
}

// FetchHistory busca o histórico de auditoria, aceitando lista pura ou envelope
func (c *DashboardClient) FetchHistory(ctx context.Context, filters domain.HistoryFilters) ([]domain.HistoryEntry, error) {
	query := url.Values{}
	if filters.EntityID != "" {
		query.Set("entity_id", filters.EntityID)
	}
	if filters.Year != 0 {
		query.Set("year", strconv.Itoa(filters.Year))
	}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}

	resp, err := c.do(ctx, http.MethodGet, "/v1/history", query, nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, errors.Wrap(resp.apiError(), "erro ao buscar histórico")
	}

	normalized := reconciling.NormalizeSequence[domain.HistoryEntry](resp.Body)
	if !normalized.OK() {
		log.ForContext(ctx).WithField("reason", normalized.Reason).
			Warn("dashboard-client: resposta de histórico malformada, usando sequência vazia")
	}

	return normalized.Records, nil
}
