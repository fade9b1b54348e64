package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
		wantToken  string
	}{
		{
			name: "login com sucesso",
			body: `{"email":"ana@loja.com","password":"segredo"}`,
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), "ana@loja.com", "segredo").Return("jwt-token", nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "jwt-token",
		},
		{
			name:       "corpo inválido",
			body:       `{"email":`,
			mockSetup:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "senha incorreta",
			body: `{"email":"ana@loja.com","password":"errada"}`,
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 1, "Senha incorreta"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "erro desconhecido",
			body: `{"email":"ana@loja.com","password":"segredo"}`,
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).Return("", assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			tt.mockSetup(service)

			h := newTestRouter(middleware.RoleViewer, Authentication(service))
			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if tt.wantCode != "" {
				requireAPIError(t, rec, tt.wantStatus, tt.wantCode)
				return
			}

			require.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantToken, body["token"])
		})
	}
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)
	service.EXPECT().GetUserProfile(gomock.Any(), 7).Return(&domain.User{ID: 7, Name: "Ana", RoleID: middleware.RoleManager}, nil)

	h := newTestRouter(middleware.RoleManager, Authentication(service))
	rec := doRequest(t, h, http.MethodGet, "/v1/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Ana", user.Name)
}

func TestGetMe_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)
	service.EXPECT().GetUserProfile(gomock.Any(), 7).
		Return(nil, authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, ""))

	h := newTestRouter(middleware.RoleViewer, Authentication(service))
	rec := doRequest(t, h, http.MethodGet, "/v1/me", "")

	requireAPIError(t, rec, http.StatusNotFound, apiErrors.ErrUserNotFound)
}
