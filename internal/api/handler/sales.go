package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/performing"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type RegisterSaleRequest struct {
	Date       string  `json:"date"` // AAAA-MM-DD, vazio usa a data atual
	Amount     float64 `json:"amount"`
	Units      float64 `json:"units"`
	BrandID    string  `json:"brand_id"`
	CategoryID string  `json:"category_id"`
}

func RegisterSale(service performing.Performer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		saleRequest := domain.RegisterSaleRequest{
			Date:       date,
			Amount:     req.Amount,
			Units:      req.Units,
			BrandID:    req.BrandID,
			CategoryID: req.CategoryID,
		}
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			saleRequest.UserID = claims.UserID
		}

		sale, err := service.RegisterSale(r.Context(), saleRequest)
		if err != nil {
			writeServiceError(w, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, r, http.StatusCreated, sale)
	}
}

// GetSalesTotals soma as vendas por marca, com filtros opcionais de categoria e marca
func GetSalesTotals(service performing.Performer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		totals, err := service.GetBrandTotals(r.Context(), domain.SalesFilters{
			CategoryID: query.Get("category_id"),
			BrandID:    query.Get("brand_id"),
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao somar vendas por marca")
			return
		}

		if totals == nil {
			totals = []domain.BrandTotal{}
		}
		writeJSON(w, r, http.StatusOK, totals)
	}
}
