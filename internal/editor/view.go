package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reconciling"
)

const (
	nameWidth   = 18
	amountWidth = 12
	pctWidth    = 9
)

const helpText = `comandos:
  config                        carrega marcas e categorias
  brands <categoria>            lista as marcas de uma categoria
  select <marca> <ano>          abre a grade de 12 meses
  set <mês> <campo> <valor>     edita actual_amount, actual_units ou goal_amount
  show                          mostra a grade com os indicadores
  save                          envia os meses alterados
  history [página]              mostra o histórico da seleção (pgup/pgdn navegam)
  quit                          sai (quit! descarta alterações)`

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.pane {
	case paneConfig:
		body = m.viewConfig()
	case paneBrands:
		body = m.viewBrands()
	case paneGrid:
		body = m.viewGrid()
	case paneHistory:
		body = m.viewHistory()
	default:
		body = mutedStyle.Render(helpText)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Editor de desempenho mensal"),
		"",
		body,
		"",
		m.viewStatus(),
		m.input.View(),
	)
}

func (m Model) viewStatus() string {
	lines := make([]string, 0, 3)
	if m.err != nil {
		lines = append(lines, errorStyle.Render("erro: "+m.err.Error()))
	}
	if m.warning != "" {
		lines = append(lines, warningStyle.Render(m.warning))
	}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewConfig() string {
	if m.config == nil {
		return mutedStyle.Render("Configuração não carregada.")
	}

	lines := []string{row(headerStyle, "CATEGORIA", "NOME")}
	for _, category := range m.config.Categories {
		lines = append(lines, row(cellStyle, category.ID, ansi.Truncate(category.Name, nameWidth, "…")))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewBrands() string {
	if len(m.brands) == 0 {
		return mutedStyle.Render("Nenhuma marca nesta categoria.")
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top,
		column(headerStyle, "MARCA", nameWidth, lipgloss.Left),
		column(headerStyle, "NOME", nameWidth, lipgloss.Left),
		column(headerStyle, "META", amountWidth, lipgloss.Right),
	)}
	for _, brand := range m.brands {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			column(cellStyle, ansi.Truncate(brand.ID, nameWidth-1, "…"), nameWidth, lipgloss.Left),
			column(cellStyle, ansi.Truncate(brand.Name, nameWidth-1, "…"), nameWidth, lipgloss.Left),
			column(cellStyle, formatAmount(brand.Goal), amountWidth, lipgloss.Right),
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewGrid() string {
	grid, ok := m.session.Grid()
	if !ok {
		return mutedStyle.Render("Nenhuma grade carregada.")
	}

	title := fmt.Sprintf("%s (%s) %d", m.entityName(grid.EntityID), grid.EntityID, grid.Year)
	lines := []string{titleStyle.Render(title), lipgloss.JoinHorizontal(lipgloss.Top,
		column(headerStyle, "MÊS", 11, lipgloss.Left),
		column(headerStyle, "REALIZADO", amountWidth, lipgloss.Right),
		column(headerStyle, "UNIDADES", amountWidth, lipgloss.Right),
		column(headerStyle, "META", amountWidth, lipgloss.Right),
		column(headerStyle, "VAR %", pctWidth, lipgloss.Right),
		column(headerStyle, "SCORE %", pctWidth, lipgloss.Right),
	)}

	for _, r := range grid.Rows {
		style, marker := cellStyle, "  "
		if r.Dirty {
			style, marker = dirtyStyle, dirtyStyle.Render(" *")
		}
		scoreStyle := style
		if !r.Dirty && r.GoalAmount > 0 && r.ScorePct < 100 {
			scoreStyle = belowStyle
		}

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			column(style, r.MonthLabel, 11, lipgloss.Left),
			column(style, formatAmount(r.ActualAmount), amountWidth, lipgloss.Right),
			column(style, formatAmount(r.ActualUnits), amountWidth, lipgloss.Right),
			column(style, formatAmount(r.GoalAmount), amountWidth, lipgloss.Right),
			column(style, formatAmount(r.VariancePct), pctWidth, lipgloss.Right),
			column(scoreStyle, formatAmount(r.ScorePct), pctWidth, lipgloss.Right),
			marker,
		))
	}

	if grid.HasUnsavedChanges {
		lines = append(lines, "", dirtyStyle.Render("* alterações não salvas"))
	}
	if m.saving {
		lines = append(lines, mutedStyle.Render("salvamento em andamento"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHistory() string {
	page := reconciling.Paginate(m.history, m.historyPage, m.pageSize)

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top,
		column(headerStyle, "DATA", 18, lipgloss.Left),
		column(headerStyle, "MARCA", nameWidth, lipgloss.Left),
		column(headerStyle, "MÊS", 9, lipgloss.Left),
		column(headerStyle, "CAMPO", 15, lipgloss.Left),
		column(headerStyle, "ANTES", amountWidth, lipgloss.Right),
		column(headerStyle, "DEPOIS", amountWidth, lipgloss.Right),
	)}
	if len(page.Entries) == 0 {
		lines = append(lines, mutedStyle.Render("Nenhuma alteração registrada."))
	}
	for _, entry := range page.Entries {
		lines = append(lines, historyRow(entry))
	}

	footer := fmt.Sprintf("página %d de %d (%d registros)", page.Page, page.TotalPages, page.Total)
	lines = append(lines, "", mutedStyle.Render(footer))
	return strings.Join(lines, "\n")
}

func historyRow(entry domain.HistoryEntry) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column(cellStyle, entry.Timestamp.Local().Format("02/01/2006 15:04"), 18, lipgloss.Left),
		column(cellStyle, ansi.Truncate(entry.EntityName, nameWidth-1, "…"), nameWidth, lipgloss.Left),
		column(cellStyle, entry.MonthAffected, 9, lipgloss.Left),
		column(cellStyle, string(entry.Field), 15, lipgloss.Left),
		column(cellStyle, formatAmount(entry.PreviousValue), amountWidth, lipgloss.Right),
		column(cellStyle, formatAmount(entry.NewValue), amountWidth, lipgloss.Right),
	)
}

func row(style lipgloss.Style, id, name string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column(style, id, nameWidth, lipgloss.Left),
		column(style, name, nameWidth+2, lipgloss.Left),
	)
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
