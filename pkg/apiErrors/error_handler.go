package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro devolvidos ao cliente
const (
	// Autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidMonth        = "VAL_004" // Mês fora de 1..12
	ErrNegativeValue       = "VAL_005" // Valor negativo não permitido
	ErrBatchTooLarge       = "VAL_006" // Lote acima do limite configurado

	// Roteamento
	ErrRouteNotFound    = "REQ_001" // Rota não encontrada
	ErrMethodNotAllowed = "REQ_002" // Método não permitido

	// Desempenho
	ErrBrandNotFound    = "PERF_001" // Marca não encontrada
	ErrCategoryNotFound = "PERF_002" // Categoria não encontrada
	ErrBrandMismatch    = "PERF_003" // Marca não pertence à categoria

	// Servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrJobAlreadyRunning = "SRV_005" // Rotina agendada já em execução
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidMonth:          http.StatusBadRequest,
	ErrNegativeValue:         http.StatusBadRequest,
	ErrBatchTooLarge:         http.StatusRequestEntityTooLarge,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrBrandNotFound:         http.StatusNotFound,
	ErrCategoryNotFound:      http.StatusNotFound,
	ErrBrandMismatch:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrJobAlreadyRunning:     http.StatusConflict,
}

// APIError é o corpo padronizado de erro da API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// StatusFor devolve o status HTTP de um código; desconhecido vira 500
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Decode lê um APIError de um corpo de resposta. ok é falso quando o corpo não tem o formato esperado.
func Decode(body []byte) (APIError, bool) {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == "" {
		return APIError{}, false
	}
	return apiErr, true
}
