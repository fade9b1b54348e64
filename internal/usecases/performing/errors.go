package performing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

var (
	ErrInvalidYear           = errors.New("ano inválido")
	ErrInvalidMonth          = errors.New("mês inválido, use 1 a 12")
	ErrNegativeValue         = errors.New("valor negativo não permitido")
	ErrDuplicateMonth        = errors.New("mês repetido no lote")
	ErrBatchTooLarge         = errors.New("lote acima do limite permitido")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrInvalidAmount         = errors.New("o valor da venda deve ser maior que zero")
	ErrInvalidUnits          = errors.New("a quantidade deve ser no mínimo 1")
	ErrBrandNotFound         = errors.New("marca não encontrada")
	ErrCategoryNotFound      = errors.New("categoria não encontrada")
	ErrBrandCategoryMismatch = errors.New("marca não pertence à categoria informada")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// PerformanceError carrega o código da API junto ao erro de domínio
type PerformanceError struct {
	Err     error
	Code    string
	Details string
}

func (e *PerformanceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PerformanceError) Unwrap() error {
	return e.Err
}

func newError(baseErr error, code, details string) *PerformanceError {
	return &PerformanceError{Err: baseErr, Code: code, Details: details}
}

func validationError(baseErr error, details string) *PerformanceError {
	code := apiErrors.ErrInvalidRequest
	switch {
	case errors.Is(baseErr, ErrInvalidMonth):
		code = apiErrors.ErrInvalidMonth
	case errors.Is(baseErr, ErrNegativeValue):
		code = apiErrors.ErrNegativeValue
	case errors.Is(baseErr, ErrBatchTooLarge):
		code = apiErrors.ErrBatchTooLarge
	case errors.Is(baseErr, ErrMissingRequiredData):
		code = apiErrors.ErrMissingRequiredData
	case errors.Is(baseErr, ErrBrandNotFound):
		code = apiErrors.ErrBrandNotFound
	case errors.Is(baseErr, ErrCategoryNotFound):
		code = apiErrors.ErrCategoryNotFound
	case errors.Is(baseErr, ErrBrandCategoryMismatch):
		code = apiErrors.ErrBrandMismatch
	}
	return newError(baseErr, code, details)
}

func databaseError(err error, details string) *PerformanceError {
	return newError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, details)
}

// Code extrai o código da API de um erro do serviço; erros desconhecidos viram erro interno
func Code(err error) string {
	var perfErr *PerformanceError
	if errors.As(err, &perfErr) {
		return perfErr.Code
	}
	return apiErrors.ErrInternalServer
}
