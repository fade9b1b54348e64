package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-performance-api/internal/usecases/performing"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

type UpdateBrandGoalRequest struct {
	Goal *float64 `json:"goal"`
}

// UpdateBrandGoal altera a meta mensal padrão de uma marca
func UpdateBrandGoal(service performing.Performer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req UpdateBrandGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.Goal == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Meta não informada", nil)
			return
		}

		brand, err := service.UpdateBrandGoal(r.Context(), brandID, *req.Goal)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar meta da marca")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"entity_id":   brand.ID,
			"entity_goal": brand.Goal,
		}).Info("brand-goal: meta atualizada")

		writeJSON(w, r, http.StatusOK, brand)
	}
}
