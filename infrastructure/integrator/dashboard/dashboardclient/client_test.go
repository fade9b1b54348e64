package dashboardclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reconciling"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *DashboardClient {
	t.Helper()
	log.SetupTestLogger()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := newDashboardClient(config.Dashboard{BaseURL: srv.URL, Token: "fixo"}, srv.Client())
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Dashboard
		wantErr    error
		wantAnyErr bool
	}{
		{
			name: "token fixo",
			cfg:  config.Dashboard{BaseURL: "http://painel.local", Token: "abc"},
		},
		{
			name: "email e senha",
			cfg:  config.Dashboard{BaseURL: "http://painel.local", Email: "a@b.com", Password: "x"},
		},
		{
			name:    "sem credenciais",
			cfg:     config.Dashboard{BaseURL: "http://painel.local"},
			wantErr: ErrMissingCredentials,
		},
		{
			name:       "URL inválida",
			cfg:        config.Dashboard{BaseURL: "painel", Token: "abc"},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, defaultTimeout, client.(*DashboardClient).httpClient.Timeout)
			}
		})
	}
}

func TestFetchPerformance(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantLen int
		wantErr bool
	}{
		{
			name:    "sequência pura",
			status:  http.StatusOK,
			body:    `[{"entity_id":"B1","year":2024,"month":3,"actual_amount":10}]`,
			wantLen: 1,
		},
		{
			name:    "envelope com data",
			status:  http.StatusOK,
			body:    `{"data":[{"entity_id":"B1","year":2024,"month":3},{"entity_id":"B1","year":2024,"month":4}]}`,
			wantLen: 2,
		},
		{
			name:    "objeto sem data vira vazio",
			status:  http.StatusOK,
			body:    `{"message":"ok"}`,
			wantLen: 0,
		},
		{
			name:    "JSON inválido vira vazio",
			status:  http.StatusOK,
			body:    `[{"entity_id":`,
			wantLen: 0,
		},
		{
			name:    "erro do servidor",
			status:  http.StatusInternalServerError,
			body:    `{"code":"SRV_002","message":"Erro ao listar registros de desempenho"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/performance", r.URL.Path)
				assert.Equal(t, "B1", r.URL.Query().Get("entity_id"))
				assert.Equal(t, "2024", r.URL.Query().Get("year"))
				assert.Equal(t, "Bearer fixo", r.Header.Get("Authorization"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			records, err := client.FetchPerformance(context.Background(), "B1", 2024)

			if tt.wantErr {
				require.Error(t, err)
				var subErr *domain.SubmissionError
				require.True(t, errors.As(err, &subErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, subErr.Code)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, records)
			assert.Len(t, records, tt.wantLen)
		})
	}
}

func TestSubmitChangeBatch(t *testing.T) {
	changeSet := domain.ChangeSet{{EntityID: "B1", EntityName: "Marca 1", Year: 2024, Month: 5, ActualAmount: 100}}

	t.Run("lote aceito", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/performance/batch", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got domain.ChangeSet
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, changeSet, got)

			_, _ = w.Write([]byte(`{"saved":1,"history_entries":1}`))
		})

		assert.NoError(t, client.SubmitChangeBatch(context.Background(), changeSet))
	})

	t.Run("recusa mantém a mensagem do servidor", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrNegativeValue, "valor negativo não permitido: mês 5", nil)
		})

		err := client.SubmitChangeBatch(context.Background(), changeSet)

		var subErr *domain.SubmissionError
		require.True(t, errors.As(err, &subErr))
		assert.Equal(t, http.StatusBadRequest, subErr.StatusCode)
		assert.Equal(t, apiErrors.ErrNegativeValue, subErr.Code)
		assert.Equal(t, "valor negativo não permitido: mês 5", err.Error())
	})

	t.Run("corpo em texto puro", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream indisponível\n"))
		})

		err := client.SubmitChangeBatch(context.Background(), changeSet)
		assert.Equal(t, "upstream indisponível", err.Error())
	})
}

func TestFetchConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "objeto direto", body: `{"entities":[{"id":"B1","name":"Marca 1","category_id":"C1"}],"categories":[{"id":"C1","name":"Óculos"}]}`},
		{name: "envelope", body: `{"data":{"entities":[{"id":"B1","name":"Marca 1","category_id":"C1"}],"categories":[{"id":"C1","name":"Óculos"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			cfg, err := client.FetchConfig(context.Background())

			require.NoError(t, err)
			require.Len(t, cfg.Entities, 1)
			assert.Equal(t, "Marca 1", cfg.Entities[0].Name)
			assert.Len(t, cfg.BrandsByCategory("C1"), 1)
		})
	}
}

func TestFetchConfig_MalformedList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"entities":{"B1":"Marca 1"},"categories":[{"id":"C1","name":"Óculos"}]}`))
	})

	cfg, err := client.FetchConfig(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, cfg.Entities)
	assert.Empty(t, cfg.Entities)
	assert.Len(t, cfg.Categories, 1)
}

func TestFetchHistory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "B1", r.URL.Query().Get("entity_id"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("year"))

		_, _ = w.Write([]byte(`{"data":[{"entity_name":"Marca 1","month_affected":"05-2024","field":"actual_amount","previous_value":0,"new_value":10}]}`))
	})

	entries, err := client.FetchHistory(context.Background(), domain.HistoryFilters{EntityID: "B1", Limit: 50})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.FieldActualAmount, entries[0].Field)

	page := reconciling.Paginate(entries, 1, 10)
	assert.Equal(t, 1, page.TotalPages)
}

func TestLoginAndRefresh(t *testing.T) {
	var logins atomic.Int32
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/login" {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"email":"ana@loja.com","password":"segredo"}`, string(body))
			n := logins.Add(1)
			_, _ = w.Write([]byte(`{"token":"t` + string(rune('0'+n)) + `"}`))
			return
		}

		calls.Add(1)
		// o primeiro token expira depois da primeira chamada
		if r.Header.Get("Authorization") == "Bearer t1" && calls.Load() > 1 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	log.SetupTestLogger()

	client, err := newDashboardClient(config.Dashboard{
		BaseURL:  srv.URL,
		Email:    "ana@loja.com",
		Password: "segredo",
		Timeout:  time.Second,
	}, srv.Client())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.FetchPerformance(ctx, "", 2024)
	require.NoError(t, err)
	assert.Equal(t, int32(1), logins.Load())

	_, err = client.FetchPerformance(ctx, "", 2024)
	require.NoError(t, err)
	assert.Equal(t, int32(2), logins.Load())
	assert.Equal(t, int32(3), calls.Load())
}

func TestLoginFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	}))
	t.Cleanup(srv.Close)

	client, err := newDashboardClient(config.Dashboard{BaseURL: srv.URL, Email: "a@b.com", Password: "x"}, srv.Client())
	require.NoError(t, err)

	_, err = client.FetchConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "falha no login do painel")
	assert.Contains(t, err.Error(), "Credenciais inválidas")
}
