package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reconciling"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestBrandRankingService_GetBrandRanking(t *testing.T) {
	log.SetupTestLogger()

	brands := []domain.Brand{
		{ID: "B1", Name: "Alfa"},
		{ID: "B2", Name: "Beta"},
		{ID: "B3", Name: "Gama"},
		{ID: "B4", Name: "Delta"},
	}

	tests := []struct {
		name      string
		month     int
		mockSetup func(perf *mocks.MockPerformanceRepository, brand *mocks.MockBrandRepository)
		wantIDs   []string
		wantErr   error
	}{
		{
			name:  "ordena por score e inclui marcas sem registro",
			month: 3,
			mockSetup: func(perf *mocks.MockPerformanceRepository, brand *mocks.MockBrandRepository) {
				perf.EXPECT().ListByPeriod(gomock.Any(), 2024, 3).Return([]domain.PerformanceRecord{
					{EntityID: "B1", ActualAmount: 50, GoalAmount: 100},  // 50%
					{EntityID: "B2", ActualAmount: 150, GoalAmount: 100}, // 150%
					{EntityID: "B3", ActualAmount: 10},                   // sem meta, 100%
				}, nil)
				brand.EXPECT().ListBrands(gomock.Any()).Return(brands, nil)
			},
			wantIDs: []string{"B2", "B3", "B1", "B4"},
		},
		{
			name:      "mês inválido",
			month:     0,
			mockSetup: func(perf *mocks.MockPerformanceRepository, brand *mocks.MockBrandRepository) {},
			wantErr:   reconciling.ErrInvalidMonth,
		},
		{
			name:  "erro no repositório",
			month: 3,
			mockSetup: func(perf *mocks.MockPerformanceRepository, brand *mocks.MockBrandRepository) {
				perf.EXPECT().ListByPeriod(gomock.Any(), 2024, 3).Return(nil, assert.AnError)
				brand.EXPECT().ListBrands(gomock.Any()).Return(brands, nil).AnyTimes()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			perf := mocks.NewMockPerformanceRepository(ctrl)
			brand := mocks.NewMockBrandRepository(ctrl)
			tt.mockSetup(perf, brand)

			service := NewBrandRankingService(perf, brand)
			result, err := service.GetBrandRanking(context.Background(), 2024, tt.month)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "03-2024", result.Period)
			ids := make([]string, 0, len(result.Ranking))
			for i, item := range result.Ranking {
				ids = append(ids, item.BrandID)
				assert.Equal(t, i+1, item.Position)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
