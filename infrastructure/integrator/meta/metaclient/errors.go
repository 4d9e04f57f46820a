package metaclient

import (
	"fmt"

	metadomain "github.com/vfg2006/meta-ads-sheets/infrastructure/integrator/meta/domain"
)

const maxErrorBody = 512

// UpstreamHTTPError representa uma resposta não-2xx da Graph API
type UpstreamHTTPError struct {
	StatusCode int
	Body       string
	Graph      *metadomain.ErrorResponse
}

func newUpstreamHTTPError(statusCode int, body []byte) *UpstreamHTTPError {
	upstreamErr := &UpstreamHTTPError{StatusCode: statusCode}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		upstreamErr.Graph = &errorResp
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	upstreamErr.Body = string(body)

	return upstreamErr
}

func (e *UpstreamHTTPError) Error() string {
	if e.Graph != nil {
		return fmt.Sprintf("erro na resposta da API. Status: %d, Erro: %s", e.StatusCode, e.Graph.String())
	}
	return fmt.Sprintf("erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

// TokenExpired indica que o access token precisa ser renovado manualmente
func (e *UpstreamHTTPError) TokenExpired() bool {
	return e.Graph != nil && e.Graph.IsTokenExpired()
}

func (e *UpstreamHTTPError) RateLimited() bool {
	return e.StatusCode == 429 || (e.Graph != nil && e.Graph.IsRateLimited())
}
