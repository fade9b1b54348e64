// Package dashboardclient é o cliente HTTP da API de desempenho usado pelo editor de grade
package dashboardclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 15 * time.Second

var ErrMissingCredentials = errors.New("token ou email/senha do painel não configurados")

type Client interface {
	FetchPerformance(ctx context.Context, entityID string, year int) ([]domain.PerformanceRecord, error)
	SubmitChangeBatch(ctx context.Context, changeSet domain.ChangeSet) error
	FetchConfig(ctx context.Context) (*domain.DashboardConfig, error)
	FetchHistory(ctx context.Context, filters domain.HistoryFilters) ([]domain.HistoryEntry, error)
}

type DashboardClient struct {
	httpClient *http.Client
	baseURL    *url.URL
	email      string
	password   string

	mu    sync.Mutex
	token string
}

// NewClient cria o cliente a partir da configuração do painel. Sem token fixo,
// o cliente faz login com email e senha na primeira chamada.
func NewClient(cfg config.Dashboard) (Client, error) {
	return newDashboardClient(cfg, &http.Client{})
}

func newDashboardClient(cfg config.Dashboard, httpClient *http.Client) (*DashboardClient, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("URL base do painel inválida: %q", cfg.BaseURL)
	}

	if cfg.Token == "" && (cfg.Email == "" || cfg.Password == "") {
		return nil, ErrMissingCredentials
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient.Timeout = timeout

	return &DashboardClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		email:      cfg.Email,
		password:   cfg.Password,
		token:      cfg.Token,
	}, nil
}

type response struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (r response) ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// apiError monta o erro a partir do corpo padronizado da API, quando houver
func (r response) apiError() *domain.SubmissionError {
	subErr := &domain.SubmissionError{StatusCode: r.StatusCode}
	if apiErr, ok := apiErrors.Decode(r.Body); ok {
		subErr.Code = apiErr.Code
		subErr.Message = apiErr.Message
	}
	if subErr.Message == "" {
		subErr.Message = strings.TrimSpace(string(r.Body))
	}
	if subErr.Message == "" {
		subErr.Message = r.Status
	}
	return subErr
}

// do executa a requisição autenticada. Um 401 com credenciais configuradas
// renova o token e repete a chamada uma vez.
func (c *DashboardClient) do(ctx context.Context, method, endpoint string, query url.Values, body any) (response, error) {
	token, err := c.currentToken(ctx)
	if err != nil {
		return response{}, err
	}

	resp, err := c.send(ctx, method, endpoint, query, body, token)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.canLogin() {
		token, err = c.login(ctx)
		if err != nil {
			return response{}, err
		}
		return c.send(ctx, method, endpoint, query, body, token)
	}

	return resp, nil
}

func (c *DashboardClient) send(ctx context.Context, method, endpoint string, query url.Values, body any, token string) (response, error) {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return response{}, errors.Wrap(err, "erro ao codificar requisição")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return response{}, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, errors.Wrapf(err, "erro ao executar %s %s", method, endpoint)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, errors.Wrap(err, "erro ao ler a resposta")
	}

	return response{StatusCode: resp.StatusCode, Status: resp.Status, Body: raw}, nil
}

func (c *DashboardClient) canLogin() bool {
	return c.email != "" && c.password != ""
}

func (c *DashboardClient) currentToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token != "" {
		return token, nil
	}
	return c.login(ctx)
}

func (c *DashboardClient) login(ctx context.Context) (string, error) {
	if !c.canLogin() {
		return "", ErrMissingCredentials
	}

	resp, err := c.send(ctx, http.MethodPost, "/v1/login", nil, map[string]string{
		"email":    c.email,
		"password": c.password,
	}, "")
	if err != nil {
		return "", err
	}
	if !resp.ok() {
		return "", errors.Wrap(resp.apiError(), "falha no login do painel")
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Token == "" {
		return "", errors.New("resposta de login sem token")
	}

	c.mu.Lock()
	c.token = body.Token
	c.mu.Unlock()

	return body.Token, nil
}
