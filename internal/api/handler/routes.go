package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/performing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Performance(service performing.Performer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/config",
			Method:      http.MethodGet,
			Handler:     GetConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance",
			Method:      http.MethodGet,
			Handler:     ListPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance/batch",
			Method:      http.MethodPost,
			Handler:     SubmitChangeBatch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/history",
			Method:      http.MethodGet,
			Handler:     GetHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:id/grid/:year",
			Method:      http.MethodGet,
			Handler:     GetGrid(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:id/goal",
			Method:      http.MethodPut,
			Handler:     UpdateBrandGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
	}
}

func Sales(service performing.Performer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     RegisterSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/sales/totals",
			Method:      http.MethodGet,
			Handler:     GetSalesTotals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func BrandRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking/brands",
			Method:      http.MethodGet,
			Handler:     GetBrandRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
