// Package scheduler contém as rotinas agendadas da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

type HistoryRetentionConfig struct {
	CronSchedule string
	Months       int
	Enabled      bool
}

// HistoryRetentionService remove periodicamente o histórico de auditoria mais antigo que a janela configurada
type HistoryRetentionService struct {
	scheduler   *gocron.Scheduler
	historyRepo repository.HistoryRepository
	config      HistoryRetentionConfig
	now         func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         int64
	lastError           string
}

func NewHistoryRetentionService(historyRepo repository.HistoryRepository, cfg *config.Config) *HistoryRetentionService {
	retentionConfig := HistoryRetentionConfig{
		CronSchedule: cfg.HistoryRetention.CronSchedule,
		Months:       cfg.HistoryRetention.Months,
		Enabled:      cfg.HistoryRetention.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"months":        retentionConfig.Months,
	}).Info("history-retention: configuração carregada")

	return &HistoryRetentionService{
		scheduler:   gocron.NewScheduler(time.Local),
		historyRepo: historyRepo,
		config:      retentionConfig,
		now:         time.Now,
	}
}

func (s *HistoryRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("history-retention: rotina desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Prune(ctx); err != nil {
			log.L.WithError(err).Error("history-retention: erro na limpeza agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do histórico: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("history-retention: rotina agendada")

	go func() {
		<-ctx.Done()
		log.L.Info("history-retention: parando rotina")
		s.scheduler.Stop()
	}()

	return nil
}

// Prune apaga o histórico anterior à janela de retenção. Execuções simultâneas são ignoradas.
func (s *HistoryRetentionService) Prune(ctx context.Context) (int64, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Warn("history-retention: limpeza já está em execução")
		return 0, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	deleted, err := s.prune(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastDeleted = deleted
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}

	return deleted, err
}

func (s *HistoryRetentionService) prune(ctx context.Context) (int64, error) {
	if s.config.Months <= 0 {
		return 0, fmt.Errorf("janela de retenção inválida: %d meses", s.config.Months)
	}

	cutoff := s.now().AddDate(0, -s.config.Months, 0)
	deleted, err := s.historyRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("erro ao apagar histórico anterior a %s: %w", cutoff.Format(time.DateOnly), err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"cutoff":  cutoff.Format(time.DateOnly),
		"deleted": deleted,
	}).Info("history-retention: limpeza concluída")

	return deleted, nil
}

// TriggerManualSync dispara a limpeza em segundo plano. Retorna falso se já houver uma em andamento.
func (s *HistoryRetentionService) TriggerManualSync() bool {
	if s.IsRunning() {
		log.L.Info("history-retention: limpeza já em andamento, ignorando solicitação manual")
		return false
	}

	go func() {
		if _, err := s.Prune(context.Background()); err != nil {
			log.L.WithError(err).Error("history-retention: erro na limpeza manual")
		}
	}()
	return true
}

func (s *HistoryRetentionService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *HistoryRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_months":       s.config.Months,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_deleted":           s.lastDeleted,
		"last_error":             s.lastError,
	}
}
