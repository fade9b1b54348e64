package reconciling

import "errors"

var (
	ErrUnknownField        = errors.New("campo desconhecido")
	ErrInvalidMonth        = errors.New("mês inválido, use 1 a 12")
	ErrNoSelection         = errors.New("nenhuma marca/ano selecionado")
	ErrSaveInProgress      = errors.New("já existe um salvamento em andamento para esta seleção")
	ErrSelectionChanged    = errors.New("a seleção mudou durante a operação")
	ErrMissingCollaborator = errors.New("fonte de registros ou coletor de persistência não configurado")
)
