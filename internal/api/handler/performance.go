package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/performing"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// maxBatchBodyBytes limita o corpo do lote de alterações
const maxBatchBodyBytes = 1 << 20

// GetConfig retorna marcas e categorias do painel
func GetConfig(service performing.Performer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := service.FetchConfig(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao carregar configuração do painel")
			return
		}

		writeJSON(w, r, http.StatusOK, cfg)
	}
}

// ListPerformance retorna a sequência esparsa de registros do ano.
// Sem entity_id, traz os registros de todas as marcas.
func ListPerformance(service performing.Performer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		year, err := utils.ParseYear(query.Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		records, err := service.ListPerformance(r.Context(), query.Get("entity_id"), year)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar registros de desempenho")
			return
		}

		if records == nil {
			records = []domain.PerformanceRecord{}
		}
		writeJSON(w, r, http.StatusOK, records)
	}
}

// GetGrid devolve a grade de 12 meses de uma marca montada no servidor
func GetGrid(service performing.Performer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		year, err := utils.ParseYear(params.ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		grid, err := service.GetGrid(r.Context(), params.ByName("id"), year)
		if err != nil {
			writeServiceError(w, err, "Erro ao montar grade de desempenho")
			return
		}

		writeJSON(w, r, http.StatusOK, grid)
	}
}

// SubmitChangeBatch recebe o lote de meses alterados e grava tudo em uma única transação
func SubmitChangeBatch(service performing.Performer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var changeSet domain.ChangeSet
		body := http.MaxBytesReader(w, r.Body, maxBatchBodyBytes)
		if err := json.NewDecoder(body).Decode(&changeSet); err != nil {
			logger.WithError(err).Warn("performance-batch: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		var userID int
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			userID = claims.UserID
		}

		result, err := service.SubmitChangeBatch(r.Context(), userID, changeSet)
		if err != nil {
			writeServiceError(w, err, "Erro ao salvar alterações")
			return
		}

		logger.WithField("user_id", userID).WithFields(log.Fields{
			"entries":         result.Saved,
			"history_entries": result.HistoryEntries,
		}).Info("performance-batch: lote gravado")

		writeJSON(w, r, http.StatusOK, result)
	}
}

// GetHistory retorna o histórico de auditoria no envelope {"data": [...]}
func GetHistory(service performing.Performer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.HistoryFilters{EntityID: query.Get("entity_id")}

		if value := query.Get("year"); value != "" {
			year, err := utils.ParseYear(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			filters.Year = year
		}

		if value := query.Get("limit"); value != "" {
			limit, err := strconv.Atoi(value)
			if err != nil || limit < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			filters.Limit = limit
		}

		entries, err := service.GetHistory(r.Context(), filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar histórico")
			return
		}

		if entries == nil {
			entries = []domain.HistoryEntry{}
		}
		writeJSON(w, r, http.StatusOK, map[string]any{"data": entries})
	}
}
