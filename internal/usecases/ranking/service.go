//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reconciling"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type RankingService interface {
	GetBrandRanking(ctx context.Context, year, month int) (*domain.BrandRankingResponse, error)
}

type BrandRankingService struct {
	performanceRepo repository.PerformanceRepository
	brandRepo       repository.BrandRepository
}

func NewBrandRankingService(performanceRepo repository.PerformanceRepository, brandRepo repository.BrandRepository) RankingService {
	return &BrandRankingService{
		performanceRepo: performanceRepo,
		brandRepo:       brandRepo,
	}
}

// GetBrandRanking ordena todas as marcas pelo score do mês. Marcas sem registro
// entram com valores zerados.
func (s *BrandRankingService) GetBrandRanking(ctx context.Context, year, month int) (*domain.BrandRankingResponse, error) {
	if month < 1 || month > domain.MonthsPerGrid {
		return nil, fmt.Errorf("%w: %d", reconciling.ErrInvalidMonth, month)
	}

	var records []domain.PerformanceRecord
	var brands []domain.Brand

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.performanceRepo.ListByPeriod(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		brands, err = s.brandRepo.ListBrands(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("brand-ranking: erro ao carregar dados do período")
		return nil, err
	}

	period := domain.FormatPeriod(month, year)
	return &domain.BrandRankingResponse{
		Period:  period,
		Ranking: buildRanking(period, brands, records),
	}, nil
}

func buildRanking(period string, brands []domain.Brand, records []domain.PerformanceRecord) []domain.BrandRankingItem {
	byBrand := make(map[string]domain.PerformanceRecord, len(records))
	for _, record := range records {
		byBrand[record.EntityID] = record
	}

	ranking := make([]domain.BrandRankingItem, 0, len(brands))
	for _, brand := range brands {
		record := byBrand[brand.ID]
		variance, score := reconciling.CalculateIndicators(record.ActualAmount, record.GoalAmount)
		ranking = append(ranking, domain.BrandRankingItem{
			BrandID:      brand.ID,
			BrandName:    brand.Name,
			Period:       period,
			ActualAmount: record.ActualAmount,
			GoalAmount:   record.GoalAmount,
			ScorePct:     score,
			VariancePct:  variance,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].ScorePct != ranking[j].ScorePct {
			return ranking[i].ScorePct > ranking[j].ScorePct
		}
		if ranking[i].ActualAmount != ranking[j].ActualAmount {
			return ranking[i].ActualAmount > ranking[j].ActualAmount
		}
		return ranking[i].BrandName < ranking[j].BrandName
	})

	for i := range ranking {
		ranking[i].Position = i + 1
	}

	return ranking
}
