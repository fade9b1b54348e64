package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/performing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/performing/mocks"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestRegisterSale(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *mocks.MockPerformer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "venda registrada com data",
			body: `{"date":"2024-05-10","amount":150.5,"units":2,"brand_id":"B1","category_id":"C1"}`,
			mockSetup: func(m *mocks.MockPerformer) {
				m.EXPECT().RegisterSale(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.RegisterSaleRequest) (*domain.Sale, error) {
						require.NotNil(t, req.Date)
						assert.Equal(t, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC), *req.Date)
						assert.Equal(t, 150.5, req.Amount)
						assert.Equal(t, 7, req.UserID)
						return &domain.Sale{ID: "abc123", Date: *req.Date, Amount: req.Amount, Units: req.Units, BrandID: "B1", CategoryID: "C1"}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "venda sem data usa data atual do serviço",
			body: `{"amount":10,"brand_id":"B1","category_id":"C1"}`,
			mockSetup: func(m *mocks.MockPerformer) {
				m.EXPECT().RegisterSale(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.RegisterSaleRequest) (*domain.Sale, error) {
						assert.Nil(t, req.Date)
						return &domain.Sale{ID: "abc123"}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "data inválida",
			body:       `{"date":"10/05/2024","amount":10,"brand_id":"B1","category_id":"C1"}`,
			mockSetup:  func(m *mocks.MockPerformer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "marca fora da categoria",
			body: `{"amount":10,"brand_id":"B1","category_id":"C2"}`,
			mockSetup: func(m *mocks.MockPerformer) {
				m.EXPECT().RegisterSale(gomock.Any(), gomock.Any()).Return(nil, &performing.PerformanceError{
					Err:  performing.ErrBrandCategoryMismatch,
					Code: apiErrors.ErrBrandMismatch,
				})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrBrandMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockPerformer(ctrl)
			tt.mockSetup(service)

			h := newTestRouter(middleware.RoleManager, Sales(service))
			rec := doRequest(t, h, http.MethodPost, "/v1/sales", tt.body)

			if tt.wantCode != "" {
				requireAPIError(t, rec, tt.wantStatus, tt.wantCode)
				return
			}

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			var sale domain.Sale
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sale))
			assert.Equal(t, "abc123", sale.ID)
		})
	}
}

func TestRegisterSale_ViewerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockPerformer(ctrl)

	h := newTestRouter(middleware.RoleViewer, Sales(service))
	rec := doRequest(t, h, http.MethodPost, "/v1/sales", `{"amount":10}`)

	requireAPIError(t, rec, http.StatusForbidden, apiErrors.ErrInsufficientPrivilege)
}

func TestGetSalesTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockPerformer(ctrl)
	service.EXPECT().GetBrandTotals(gomock.Any(), domain.SalesFilters{CategoryID: "C1"}).Return([]domain.BrandTotal{
		{BrandName: "Marca 1", Amount: 300, Units: 3},
		{BrandName: domain.OtherBrandsLabel, Amount: 20, Units: 1},
	}, nil)

	h := newTestRouter(middleware.RoleViewer, Sales(service))
	rec := doRequest(t, h, http.MethodGet, "/v1/sales/totals?category_id=C1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var totals []domain.BrandTotal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	require.Len(t, totals, 2)
	assert.Equal(t, domain.OtherBrandsLabel, totals[1].BrandName)
}

func TestUpdateBrandGoal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *mocks.MockPerformer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "meta atualizada",
			body: `{"goal":5000}`,
			mockSetup: func(m *mocks.MockPerformer) {
				m.EXPECT().UpdateBrandGoal(gomock.Any(), "B1", 5000.0).Return(&domain.Brand{ID: "B1", Name: "Marca 1", Goal: 5000}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "meta zero é permitida",
			body: `{"goal":0}`,
			mockSetup: func(m *mocks.MockPerformer) {
				m.EXPECT().UpdateBrandGoal(gomock.Any(), "B1", 0.0).Return(&domain.Brand{ID: "B1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "meta ausente",
			body:       `{}`,
			mockSetup:  func(m *mocks.MockPerformer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "marca inexistente",
			body: `{"goal":10}`,
			mockSetup: func(m *mocks.MockPerformer) {
				m.EXPECT().UpdateBrandGoal(gomock.Any(), "B1", 10.0).Return(nil, &performing.PerformanceError{
					Err:  performing.ErrBrandNotFound,
					Code: apiErrors.ErrBrandNotFound,
				})
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrBrandNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockPerformer(ctrl)
			tt.mockSetup(service)

			h := newTestRouter(middleware.RoleAdmin, Performance(service))
			rec := doRequest(t, h, http.MethodPut, "/v1/brands/B1/goal", tt.body)

			if tt.wantCode != "" {
				requireAPIError(t, rec, tt.wantStatus, tt.wantCode)
				return
			}
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
