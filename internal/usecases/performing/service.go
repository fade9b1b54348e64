package performing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reconciling"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

const (
	minYear         = 1900
	maxYear         = 2100
	maxHistoryLimit = 500
)

type Service struct {
	cfg             config.Performance
	performanceRepo repository.PerformanceRepository
	brandRepo       repository.BrandRepository
	historyRepo     repository.HistoryRepository
	saleRepo        repository.SaleRepository
	now             func() time.Time
	newID           func() (string, error)
}

func NewService(
	cfg *config.Config,
	performanceRepo repository.PerformanceRepository,
	brandRepo repository.BrandRepository,
	historyRepo repository.HistoryRepository,
	saleRepo repository.SaleRepository,
) Performer {
	return &Service{
		cfg:             cfg.Performance,
		performanceRepo: performanceRepo,
		brandRepo:       brandRepo,
		historyRepo:     historyRepo,
		saleRepo:        saleRepo,
		now:             time.Now,
		newID:           utils.GenerateID,
	}
}

func (s *Service) FetchConfig(ctx context.Context) (*domain.DashboardConfig, error) {
	var brands []domain.Brand
	var categories []domain.Category

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		brands, err = s.brandRepo.ListBrands(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.brandRepo.ListCategories(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("performance-config: erro ao carregar configuração")
		return nil, databaseError(err, "Erro ao carregar marcas e categorias")
	}

	return &domain.DashboardConfig{Entities: brands, Categories: categories}, nil
}

func (s *Service) ListPerformance(ctx context.Context, entityID string, year int) ([]domain.PerformanceRecord, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	records, err := s.performanceRepo.ListByYear(ctx, entityID, year)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"entity_id": entityID,
			"year":      year,
		}).WithError(err).Error("performance-list: erro ao listar registros")
		return nil, databaseError(err, "Erro ao listar registros de desempenho")
	}

	return records, nil
}

func (s *Service) GetGrid(ctx context.Context, entityID string, year int) (*domain.Grid, error) {
	if entityID == "" {
		return nil, validationError(ErrMissingRequiredData, "entity_id é obrigatório")
	}

	if _, err := s.getBrand(ctx, entityID); err != nil {
		return nil, err
	}

	records, err := s.ListPerformance(ctx, entityID, year)
	if err != nil {
		return nil, err
	}

	grid := reconciling.BuildGrid(entityID, year, records)
	return &grid, nil
}

func (s *Service) SubmitChangeBatch(ctx context.Context, userID int, changeSet domain.ChangeSet) (*BatchResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{"entries": len(changeSet), "user_id": userID})

	if changeSet.IsEmpty() {
		logger.Debug("performance-batch: lote vazio, nada a gravar")
		return &BatchResult{}, nil
	}

	if s.cfg.MaxBatchSize > 0 && len(changeSet) > s.cfg.MaxBatchSize {
		return nil, validationError(ErrBatchTooLarge, fmt.Sprintf("máximo de %d meses por lote", s.cfg.MaxBatchSize))
	}

	brands := make(map[string]*domain.Brand)
	seen := make(map[string]struct{}, len(changeSet))
	records := make([]domain.PerformanceRecord, 0, len(changeSet))
	history := make([]domain.HistoryEntry, 0, len(changeSet))

	for _, entry := range changeSet {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}

		key := fmt.Sprintf("%s|%s", entry.EntityID, domain.FormatPeriod(entry.Month, entry.Year))
		if _, dup := seen[key]; dup {
			return nil, validationError(ErrDuplicateMonth, domain.FormatPeriod(entry.Month, entry.Year))
		}
		seen[key] = struct{}{}

		brand, ok := brands[entry.EntityID]
		if !ok {
			var err error
			brand, err = s.getBrand(ctx, entry.EntityID)
			if err != nil {
				return nil, err
			}
			brands[entry.EntityID] = brand
		}

		normalized := s.normalize(entry)
		records = append(records, domain.PerformanceRecord{
			EntityID:     normalized.EntityID,
			Year:         normalized.Year,
			Month:        normalized.Month,
			ActualAmount: normalized.ActualAmount,
			ActualUnits:  normalized.ActualUnits,
			GoalAmount:   normalized.GoalAmount,
		})

		entityName := normalized.EntityName
		if entityName == "" {
			entityName = brand.Name
		}
		history = append(history, historyForEntry(normalized, entityName, userID)...)
	}

	if err := s.performanceRepo.SaveBatch(ctx, records, history); err != nil {
		logger.WithError(err).Error("performance-batch: erro ao gravar lote")
		return nil, databaseError(err, "Erro ao gravar lote de desempenho")
	}

	logger.WithField("history_entries", len(history)).Info("performance-batch: lote gravado")

	return &BatchResult{Saved: len(records), HistoryEntries: len(history)}, nil
}

func (s *Service) GetHistory(ctx context.Context, filters domain.HistoryFilters) ([]domain.HistoryEntry, error) {
	if filters.Year != 0 {
		if err := validateYear(filters.Year); err != nil {
			return nil, err
		}
	}

	limit := filters.Limit
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := s.historyRepo.List(ctx, repository.HistoryFilter{
		EntityID: filters.EntityID,
		Year:     filters.Year,
		Limit:    uint64(limit),
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("performance-history: erro ao listar histórico")
		return nil, databaseError(err, "Erro ao listar histórico")
	}

	return entries, nil
}

func (s *Service) RegisterSale(ctx context.Context, req domain.RegisterSaleRequest) (*domain.Sale, error) {
	if req.BrandID == "" || req.CategoryID == "" {
		return nil, validationError(ErrMissingRequiredData, "marca e categoria são obrigatórias")
	}
	if req.Amount <= 0 {
		return nil, validationError(ErrInvalidAmount, "")
	}

	units := req.Units
	if units == 0 {
		units = 1
	}
	if units < 1 {
		return nil, validationError(ErrInvalidUnits, "")
	}

	brand, err := s.getBrand(ctx, req.BrandID)
	if err != nil {
		return nil, err
	}

	category, err := s.brandRepo.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, databaseError(err, "Erro ao consultar categoria")
	}
	if category == nil {
		return nil, validationError(ErrCategoryNotFound, req.CategoryID)
	}
	if brand.CategoryID != category.ID {
		return nil, validationError(ErrBrandCategoryMismatch, fmt.Sprintf("%s / %s", brand.Name, category.Name))
	}

	id, err := s.newID()
	if err != nil {
		return nil, newError(err, apiErrors.ErrInternalServer, "Erro ao gerar ID da venda")
	}

	date := s.now()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	sale := domain.Sale{
		ID:         id,
		Date:       date,
		Amount:     s.round(req.Amount),
		Units:      s.round(units),
		BrandID:    brand.ID,
		CategoryID: category.ID,
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"entity_id": brand.ID,
		"sale_id":   sale.ID,
	})

	effect, err := s.saleRepo.Register(ctx, sale, repository.RegisterSaleOptions{
		DefaultGoal:   brand.Goal,
		RecordHistory: s.cfg.RecordSalesHistory,
		EntityName:    brand.Name,
		UserID:        req.UserID,
	})
	if err != nil {
		logger.WithError(err).Error("sales-register: erro ao registrar venda")
		return nil, databaseError(err, "Erro ao registrar venda")
	}

	logger.WithFields(log.Fields{
		"entity_period":  domain.FormatPeriod(effect.Current.Month, effect.Current.Year),
		"entity_created": effect.Created,
	}).Info("sales-register: venda registrada")

	sale.CreatedAt = s.now()
	return &sale, nil
}

func (s *Service) UpdateBrandGoal(ctx context.Context, brandID string, goal float64) (*domain.Brand, error) {
	if brandID == "" {
		return nil, validationError(ErrMissingRequiredData, "id da marca é obrigatório")
	}
	if goal < 0 {
		return nil, validationError(ErrNegativeValue, "meta")
	}

	err := s.brandRepo.UpdateGoal(ctx, brandID, s.round(goal))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, validationError(ErrBrandNotFound, brandID)
		}
		log.ForContext(ctx).WithField("entity_id", brandID).WithError(err).Error("brand-goal: erro ao atualizar meta")
		return nil, databaseError(err, "Erro ao atualizar meta")
	}

	return s.getBrand(ctx, brandID)
}

func (s *Service) GetBrandTotals(ctx context.Context, filters domain.SalesFilters) ([]domain.BrandTotal, error) {
	var sums []repository.BrandSalesSum
	var brands []domain.Brand

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sums, err = s.saleRepo.SumByBrand(gctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		brands, err = s.brandRepo.ListBrands(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("sales-totals: erro ao somar vendas")
		return nil, databaseError(err, "Erro ao somar vendas por marca")
	}

	return aggregateBrandTotals(sums, brands), nil
}

// aggregateBrandTotals agrupa as somas pelo nome da marca. Marcas fora da
// configuração entram em "Outros", sempre por último.
func aggregateBrandTotals(sums []repository.BrandSalesSum, brands []domain.Brand) []domain.BrandTotal {
	names := make(map[string]string, len(brands))
	for _, brand := range brands {
		names[brand.ID] = brand.Name
	}

	type acc struct {
		amount decimal.Decimal
		units  decimal.Decimal
	}
	grouped := make(map[string]*acc)
	for _, sum := range sums {
		name, ok := names[sum.BrandID]
		if !ok {
			name = domain.OtherBrandsLabel
		}
		a, ok := grouped[name]
		if !ok {
			a = &acc{}
			grouped[name] = a
		}
		a.amount = a.amount.Add(sum.Amount)
		a.units = a.units.Add(sum.Units)
	}

	totals := make([]domain.BrandTotal, 0, len(grouped))
	for name, a := range grouped {
		totals = append(totals, domain.BrandTotal{
			BrandName: name,
			Amount:    a.amount.Round(2).InexactFloat64(),
			Units:     a.units.Round(2).InexactFloat64(),
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if (totals[i].BrandName == domain.OtherBrandsLabel) != (totals[j].BrandName == domain.OtherBrandsLabel) {
			return totals[j].BrandName == domain.OtherBrandsLabel
		}
		return totals[i].BrandName < totals[j].BrandName
	})

	return totals
}

func (s *Service) getBrand(ctx context.Context, id string) (*domain.Brand, error) {
	brand, err := s.brandRepo.GetBrandByID(ctx, id)
	if err != nil {
		return nil, databaseError(err, "Erro ao consultar marca")
	}
	if brand == nil {
		return nil, validationError(ErrBrandNotFound, id)
	}
	return brand, nil
}

func (s *Service) round(value float64) float64 {
	return utils.Round(value, int32(s.cfg.Decimals))
}

// normalize arredonda valores atuais e anteriores para as casas configuradas
func (s *Service) normalize(entry domain.ChangeEntry) domain.ChangeEntry {
	entry.ActualAmount = s.round(entry.ActualAmount)
	entry.ActualUnits = s.round(entry.ActualUnits)
	entry.GoalAmount = s.round(entry.GoalAmount)
	entry.PreviousActualAmount = s.round(entry.PreviousActualAmount)
	entry.PreviousActualUnits = s.round(entry.PreviousActualUnits)
	entry.PreviousGoalAmount = s.round(entry.PreviousGoalAmount)
	return entry
}

// historyForEntry gera uma linha de auditoria por campo que mudou
func historyForEntry(entry domain.ChangeEntry, entityName string, userID int) []domain.HistoryEntry {
	current := entry.Current()
	previous := entry.Previous()
	period := domain.FormatPeriod(entry.Month, entry.Year)

	entries := make([]domain.HistoryEntry, 0, len(domain.EditableFields))
	for _, field := range domain.EditableFields {
		newValue, _ := current.Get(field)
		oldValue, _ := previous.Get(field)
		if newValue == oldValue {
			continue
		}
		entries = append(entries, domain.HistoryEntry{
			EntityID:      entry.EntityID,
			EntityName:    entityName,
			MonthAffected: period,
			Field:         field,
			PreviousValue: oldValue,
			NewValue:      newValue,
			UserID:        userID,
		})
	}
	return entries
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return validationError(ErrInvalidYear, fmt.Sprintf("%d", year))
	}
	return nil
}

func validateEntry(entry domain.ChangeEntry) error {
	period := domain.FormatPeriod(entry.Month, entry.Year)

	if entry.EntityID == "" {
		return validationError(ErrMissingRequiredData, "entity_id é obrigatório")
	}
	if err := validateYear(entry.Year); err != nil {
		return err
	}
	if entry.Month < 1 || entry.Month > domain.MonthsPerGrid {
		return validationError(ErrInvalidMonth, period)
	}
	if entry.ActualAmount < 0 || entry.ActualUnits < 0 || entry.GoalAmount < 0 {
		return validationError(ErrNegativeValue, period)
	}
	return nil
}
