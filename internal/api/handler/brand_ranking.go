package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// GetBrandRanking retorna o ranking das marcas pelo score do mês
func GetBrandRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		year, err := utils.ParseYear(query.Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		month, err := utils.ParseMonth(query.Get("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidMonth, err.Error(), nil)
			return
		}

		result, err := service.GetBrandRanking(r.Context(), year, month)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("brand-ranking: erro ao buscar ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking das marcas", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
