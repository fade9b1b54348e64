package main

import (
	"context"

	"github.com/vfg2006/sales-performance-api/infrastructure/database/migrations"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/api"
	"github.com/vfg2006/sales-performance-api/internal/api/handler"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/scheduler"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/performing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.Migrate {
		if err := migrations.Run(cfg.Database.DSN); err != nil {
			log.L.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		log.L.Info("Migrações aplicadas com sucesso")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	brandRepo := repository.NewBrandRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	historyRepo := repository.NewHistoryRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	performer := performing.NewService(cfg, performanceRepo, brandRepo, historyRepo, saleRepo)
	rankingService := ranking.NewBrandRankingService(performanceRepo, brandRepo)

	historyRetentionService := scheduler.NewHistoryRetentionService(historyRepo, cfg)
	if err := historyRetentionService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de limpeza do histórico")
	} else {
		log.L.Info("Agendador de limpeza do histórico iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		performer,
		rankingService,
		authenticator,
		handler.CronJobServices{HistoryRetentionService: historyRetentionService},
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
