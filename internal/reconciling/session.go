package reconciling

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// Selection identifica a grade ativa
type Selection struct {
	EntityID string
	Year     int
}

// SaveResult descreve o que aconteceu em um salvamento
type SaveResult struct {
	Submitted bool // o lote foi enviado ao coletor
	Entries   int  // quantidade de meses enviados
	Rebuilt   bool // a grade foi reconstruída a partir do servidor
	Stale     bool // a resposta chegou para uma seleção que não está mais ativa
	// edições feitas durante o envio foram substituídas pelos valores do servidor
	DiscardedEdits bool
}

// Session é a camada que o host (UI/CLI) usa para operar a grade. Mantém a
// seleção atual, a grade viva e os salvamentos pendentes por seleção.
// O mutex nunca fica retido durante chamadas de rede. generation ordena buscas
// concorrentes: só a busca mais recente pode instalar a grade.
type Session struct {
	mu         sync.Mutex
	source     RecordSource
	sink       PersistenceSink
	selection  Selection
	generation uint64
	edits      uint64
	grid       *domain.Grid
	pending    map[Selection]struct{}
}

func NewSession(source RecordSource, sink PersistenceSink) *Session {
	return &Session{
		source:  source,
		sink:    sink,
		pending: make(map[Selection]struct{}),
	}
}

// Select troca a seleção, descarta a grade anterior e monta uma nova a partir
// dos registros do servidor. Uma resposta que chega depois de outra seleção é ignorada.
func (s *Session) Select(ctx context.Context, entityID string, year int) (domain.Grid, error) {
	if s.source == nil {
		return domain.Grid{}, ErrMissingCollaborator
	}

	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.selection = Selection{EntityID: entityID, Year: year}
	s.grid = nil
	s.mu.Unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"entity_id": entityID,
		"year":      year,
	})

	grid, err := s.fetchGrid(ctx, entityID, year)
	if err != nil {
		logger.WithError(err).Error("grid-session: erro ao buscar registros de desempenho")
		return domain.Grid{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		logger.Warn("grid-session: resposta descartada, seleção alterada durante a busca")
		return grid, ErrSelectionChanged
	}

	s.grid = &grid
	logger.Debug("grid-session: grade montada")

	return grid, nil
}

// Edit aplica a edição na grade viva, na ordem em que as edições chegam
func (s *Session) Edit(month int, field domain.Field, value float64) (domain.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid == nil {
		return domain.Grid{}, ErrNoSelection
	}

	grid, err := WithEdit(*s.grid, month, field, value)
	if err != nil {
		return *s.grid, err
	}

	s.grid = &grid
	s.edits++
	return grid, nil
}

// Save envia as linhas alteradas como um único lote. Lote vazio não gera chamada
// de rede. Em caso de falha a grade e os indicadores de alteração ficam intactos;
// em caso de sucesso a grade é descartada e reconstruída a partir do servidor.
func (s *Session) Save(ctx context.Context, entityName string) (SaveResult, error) {
	if s.sink == nil || s.source == nil {
		return SaveResult{}, ErrMissingCollaborator
	}

	s.mu.Lock()
	if s.grid == nil {
		s.mu.Unlock()
		return SaveResult{}, ErrNoSelection
	}

	selection := s.selection
	if _, busy := s.pending[selection]; busy {
		s.mu.Unlock()
		return SaveResult{}, ErrSaveInProgress
	}

	changeSet := BuildChangeSet(*s.grid, entityName)
	if changeSet.IsEmpty() {
		s.mu.Unlock()
		return SaveResult{}, nil
	}

	s.pending[selection] = struct{}{}
	editsAtSubmit := s.edits
	s.mu.Unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"entity_id": selection.EntityID,
		"year":      selection.Year,
		"entries":   len(changeSet),
	})

	err := s.sink.SubmitChangeBatch(ctx, changeSet)

	s.mu.Lock()
	delete(s.pending, selection)
	if err != nil {
		s.mu.Unlock()
		logger.WithError(err).Warn("grid-session: falha ao enviar lote, alterações mantidas")
		return SaveResult{}, err
	}

	result := SaveResult{Submitted: true, Entries: len(changeSet)}
	if s.selection != selection {
		s.mu.Unlock()
		logger.Info("grid-session: lote salvo para seleção anterior, resposta ignorada")
		result.Stale = true
		return result, nil
	}

	result.DiscardedEdits = s.edits != editsAtSubmit && s.grid != nil &&
		!slices.Equal(BuildChangeSet(*s.grid, entityName), changeSet)
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	if result.DiscardedEdits {
		logger.Warn("grid-session: edições feitas durante o envio serão substituídas pela grade do servidor")
	}

	grid, err := s.fetchGrid(ctx, selection.EntityID, selection.Year)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection != selection {
		result.Stale = true
		return result, nil
	}
	if generation != s.generation {
		// uma seleção mais recente da mesma marca/ano já busca dados posteriores ao lote
		return result, nil
	}

	if err != nil {
		// a foto base antiga não vale mais depois do salvamento
		s.grid = nil
		logger.WithError(err).Error("grid-session: lote salvo, mas falha ao recarregar a grade")
		return result, fmt.Errorf("lote salvo, mas falha ao recarregar a grade: %w", err)
	}

	s.grid = &grid
	result.Rebuilt = true
	logger.Info("grid-session: lote salvo e grade reconstruída")

	return result, nil
}

// Grid retorna uma cópia da grade viva
func (s *Session) Grid() (domain.Grid, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid == nil {
		return domain.Grid{}, false
	}
	return *s.grid, true
}

// HasUnsavedChanges informa se alguma linha da grade viva está alterada
func (s *Session) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid != nil && s.grid.HasUnsavedChanges
}

func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection
}

func (s *Session) fetchGrid(ctx context.Context, entityID string, year int) (domain.Grid, error) {
	records, err := s.source.FetchPerformance(ctx, entityID, year)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("erro ao buscar registros de desempenho: %w", err)
	}
	return BuildGrid(entityID, year, records), nil
}
