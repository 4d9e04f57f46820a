package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/meta-ads-sheets/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-sheets/pkg/middleware"
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

func Sync(service SyncController) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSync(service),
			Middlewares: []alice.Constructor{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/runs",
			Method:      http.MethodGet,
			Handler:     ListSyncRuns(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
	}
}
