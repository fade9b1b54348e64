package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reconciling"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m.quit(false)
		case key.Matches(msg, keys.Clear):
			m.input.Reset()
			m.err = nil
			m.warning = ""
			return m, nil
		case key.Matches(msg, keys.Submit):
			line := m.input.Value()
			m.input.Reset()
			return m.execute(line)
		case m.pane == paneHistory && key.Matches(msg, keys.NextPage):
			m.historyPage = reconciling.Paginate(m.history, m.historyPage+1, m.pageSize).Page
			return m, nil
		case m.pane == paneHistory && key.Matches(msg, keys.PrevPage):
			m.historyPage = reconciling.Paginate(m.history, m.historyPage-1, m.pageSize).Page
			return m, nil
		}

	case configMsg:
		m.status = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.config = msg.config
		m.pane = paneConfig
		m.status = fmt.Sprintf("%d marcas carregadas", len(msg.config.Entities))
		return m, nil

	case gridMsg:
		if errors.Is(msg.err, reconciling.ErrSelectionChanged) {
			// uma seleção mais recente vai trazer a própria grade
			return m, nil
		}
		m.status = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		log.ForContext(m.ctx).WithFields(log.Fields{
			"entity_id": msg.selection.EntityID,
			"year":      msg.selection.Year,
		}).Debug("grid-editor: seleção alterada")
		m.pane = paneGrid
		return m, nil

	case saveMsg:
		m.saving = false
		m.status = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.applySaveResult(msg.result)
		return m, nil

	case historyMsg:
		if msg.selection != m.session.Selection() {
			return m, nil
		}
		m.status = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.history = msg.entries
		if m.history == nil {
			m.history = []domain.HistoryEntry{}
		}
		m.historyPage = reconciling.Paginate(m.history, msg.page, m.pageSize).Page
		m.pane = paneHistory
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute interpreta uma linha de comando digitada
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return m, nil
	}

	command, force := strings.CutSuffix(strings.ToLower(args[0]), "!")
	args = args[1:]

	m.err = nil
	m.warning = ""
	m.status = ""

	switch command {
	case "help", "ajuda":
		m.pane = paneHelp
	case "config":
		m.status = "carregando configuração..."
		return m, fetchConfig(m.ctx, m.backend)
	case "brands", "marcas":
		m.err = m.listBrands(args)
	case "select", "sel":
		return m.selectGrid(args, force)
	case "set":
		m.err = m.edit(args)
	case "show":
		if _, ok := m.session.Grid(); !ok {
			m.err = reconciling.ErrNoSelection
			break
		}
		m.pane = paneGrid
	case "save":
		return m.save()
	case "history", "hist":
		return m.showHistory(args)
	case "quit", "exit", "sair":
		return m.quit(force)
	default:
		m.err = errors.Errorf("comando desconhecido %q, digite help", command)
	}

	return m, nil
}

func (m Model) quit(force bool) (tea.Model, tea.Cmd) {
	if !force && m.session.HasUnsavedChanges() {
		m.err = ErrUnsavedChanges
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) listBrands(args []string) error {
	if m.config == nil {
		return errors.New("configuração não carregada, use config")
	}
	if len(args) != 1 {
		return errors.New("uso: brands <categoria>")
	}

	m.brands = m.config.BrandsByCategory(args[0])
	m.pane = paneBrands
	return nil
}

func (m Model) selectGrid(args []string, force bool) (tea.Model, tea.Cmd) {
	if len(args) != 2 {
		m.err = errors.New("uso: select <marca> <ano>")
		return m, nil
	}
	if !force && m.session.HasUnsavedChanges() {
		m.err = ErrUnsavedChanges
		return m, nil
	}

	year, err := utils.ParseYear(args[1])
	if err != nil {
		m.err = err
		return m, nil
	}

	selection := reconciling.Selection{EntityID: args[0], Year: year}
	m.history = nil
	m.status = fmt.Sprintf("carregando %s %d...", m.entityName(selection.EntityID), year)
	return m, selectGrid(m.ctx, m.session, selection)
}

func (m *Model) edit(args []string) error {
	if len(args) != 3 {
		return errors.New("uso: set <mês> <campo> <valor>")
	}

	month, err := utils.ParseMonth(args[0])
	if err != nil {
		return err
	}

	field, err := domain.ParseField(args[1])
	if err != nil {
		return errors.Wrap(reconciling.ErrUnknownField, err.Error())
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(args[2], ",", "."), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("valor inválido: %q", args[2])
	}
	if value < 0 {
		return errors.Errorf("valor negativo não permitido: %q", args[2])
	}

	grid, err := m.session.Edit(month, field, value)
	if err != nil {
		return err
	}

	row := grid.Rows[month-1]
	m.pane = paneGrid
	m.status = fmt.Sprintf("%s: variação %.2f%% score %.2f%%", row.MonthLabel, row.VariancePct, row.ScorePct)
	return nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if _, ok := m.session.Grid(); !ok {
		m.err = reconciling.ErrNoSelection
		return m, nil
	}

	selection := m.session.Selection()
	m.saving = true
	m.status = "salvando..."
	return m, saveGrid(m.ctx, m.session, m.entityName(selection.EntityID))
}

func (m *Model) applySaveResult(result reconciling.SaveResult) {
	switch {
	case !result.Submitted:
		m.status = "nada a salvar"
	case result.Stale:
		m.status = fmt.Sprintf("%d meses salvos para a seleção anterior", result.Entries)
	default:
		m.history = nil
		m.pane = paneGrid
		m.status = fmt.Sprintf("%d meses salvos", result.Entries)
	}

	if result.DiscardedEdits {
		m.warning = "edições feitas durante o salvamento foram substituídas pelos valores do servidor"
	}
}

func (m Model) showHistory(args []string) (tea.Model, tea.Cmd) {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			m.err = errors.Errorf("página inválida: %q", args[0])
			return m, nil
		}
		page = n
	}

	selection := m.session.Selection()
	if selection.EntityID == "" {
		m.err = reconciling.ErrNoSelection
		return m, nil
	}

	if m.history == nil || page == 1 {
		m.status = "carregando histórico..."
		return m, fetchHistory(m.ctx, m.backend, selection, page)
	}

	m.historyPage = reconciling.Paginate(m.history, page, m.pageSize).Page
	m.pane = paneHistory
	return m, nil
}
