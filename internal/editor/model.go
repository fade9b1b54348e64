// Package editor implementa o editor de grade no terminal sobre a sessão de reconciliação
package editor

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reconciling"
)

var ErrUnsavedChanges = errors.New("há alterações não salvas; use o comando com ! para descartar")

// Backend é o painel remoto: fonte de registros, coletor de lotes, configuração e histórico
type Backend interface {
	reconciling.RecordSource
	reconciling.PersistenceSink
	FetchConfig(ctx context.Context) (*domain.DashboardConfig, error)
	FetchHistory(ctx context.Context, filters domain.HistoryFilters) ([]domain.HistoryEntry, error)
}

type pane int

const (
	paneHelp pane = iota
	paneConfig
	paneBrands
	paneGrid
	paneHistory
)

type Model struct {
	ctx      context.Context
	backend  Backend
	session  *reconciling.Session
	pageSize int

	input textinput.Model

	// Dados
	config      *domain.DashboardConfig
	brands      []domain.Brand
	history     []domain.HistoryEntry
	historyPage int

	// Estado da tela
	pane     pane
	status   string
	warning  string
	err      error
	saving   bool
	width    int
	quitting bool
}

// Mensagens

type configMsg struct {
	config *domain.DashboardConfig
	err    error
}

type gridMsg struct {
	selection reconciling.Selection
	err       error
}

type saveMsg struct {
	result reconciling.SaveResult
	err    error
}

type historyMsg struct {
	selection reconciling.Selection
	entries   []domain.HistoryEntry
	page      int
	err       error
}

func NewModel(ctx context.Context, backend Backend, pageSize int) Model {
	input := textinput.New()
	input.Prompt = promptStyle.Render("> ")
	input.Placeholder = "digite help"
	input.Focus()

	return Model{
		ctx:      ctx,
		backend:  backend,
		session:  reconciling.NewSession(backend, backend),
		pageSize: pageSize,
		input:    input,
		pane:     paneHelp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Comandos

func fetchConfig(ctx context.Context, backend Backend) tea.Cmd {
	return func() tea.Msg {
		cfg, err := backend.FetchConfig(ctx)
		return configMsg{config: cfg, err: err}
	}
}

func selectGrid(ctx context.Context, session *reconciling.Session, selection reconciling.Selection) tea.Cmd {
	return func() tea.Msg {
		_, err := session.Select(ctx, selection.EntityID, selection.Year)
		return gridMsg{selection: selection, err: err}
	}
}

func saveGrid(ctx context.Context, session *reconciling.Session, entityName string) tea.Cmd {
	return func() tea.Msg {
		result, err := session.Save(ctx, entityName)
		return saveMsg{result: result, err: err}
	}
}

func fetchHistory(ctx context.Context, backend Backend, selection reconciling.Selection, page int) tea.Cmd {
	return func() tea.Msg {
		entries, err := backend.FetchHistory(ctx, domain.HistoryFilters{
			EntityID: selection.EntityID,
			Year:     selection.Year,
		})
		return historyMsg{selection: selection, entries: entries, page: page, err: err}
	}
}

// entityName resolve o nome da marca pela configuração carregada
func (m Model) entityName(entityID string) string {
	if m.config != nil {
		if brand, ok := m.config.BrandByID(entityID); ok {
			return brand.Name
		}
	}
	return entityID
}
