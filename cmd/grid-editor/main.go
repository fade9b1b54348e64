package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vfg2006/sales-performance-api/infrastructure/integrator/dashboard/dashboardclient"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/editor"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	// a tela do editor ocupa o terminal; logs vão para arquivo
	if cfg.Dashboard.LogFile != "" {
		logFile, err := os.OpenFile(cfg.Dashboard.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.L.WithError(err).Fatal("Erro ao abrir arquivo de log do editor")
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := dashboardclient.NewClient(cfg.Dashboard)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao configurar cliente do painel")
	}

	model := editor.NewModel(ctx, client, cfg.Performance.HistoryPageSize)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.L.WithError(err).Error("Erro ao executar o editor")
	}
}
