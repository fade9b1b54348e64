package domain

import "fmt"

// SubmissionError é a falha do coletor de persistência ao receber um lote.
// Message é exibida ao usuário sem alterações.
type SubmissionError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *SubmissionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("falha ao enviar lote (status %d)", e.StatusCode)
}
