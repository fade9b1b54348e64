package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-performance-api/internal/usecases/performing"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao enviar resposta")
	}
}

// writeServiceError traduz o erro do serviço de desempenho para o código da API.
// Erros internos não expõem a mensagem original.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	code := performing.Code(err)
	switch code {
	case apiErrors.ErrInternalServer, apiErrors.ErrDatabaseOperation:
		apiErrors.WriteError(w, code, fallback, nil)
	default:
		apiErrors.WriteError(w, code, err.Error(), nil)
	}
}
