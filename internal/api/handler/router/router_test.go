package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
)

func tagMiddleware(tag string) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(
		Route{
			Path:   "/v1/ping",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}),
			Middlewares: []alice.Constructor{tagMiddleware("a"), tagMiddleware("b")},
		},
	))

	tests := []struct {
		name     string
		method   string
		path     string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "middlewares da rota na ordem declarada",
			method: http.MethodGet,
			path:   "/v1/ping",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "a,b", strings.Join(rec.Header().Values("X-Order"), ","))
			},
		},
		{
			name:   "rota inexistente",
			method: http.MethodGet,
			path:   "/v1/nada",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Contains(t, rec.Body.String(), "VAL_004")
			},
		},
		{
			name:   "método não permitido",
			method: http.MethodPost,
			path:   "/v1/ping",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
				assert.Contains(t, rec.Body.String(), "VAL_005")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			tt.validate(t, rec)
		})
	}

	assert.Equal(t, []string{"GET /v1/ping"}, rt.Routes())
}
