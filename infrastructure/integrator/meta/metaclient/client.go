package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-ads-sheets/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	InsightsURL(accountID string) string
	GetAdInsightsPage(ctx context.Context, pageURL string, params url.Values) (*metadomain.InsightsPage, error)
	CheckTokenValidity(ctx context.Context) error
}

// MetaClient é a conexão compartilhada por todas as contas: um único pool HTTP
// com retentativas e um único limitador de requisições.
type MetaClient struct {
	cfg         config.Meta
	httpClient  *retryablehttp.Client
	rateLimiter *rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.Meta.MaxRetries
	httpClient.RetryWaitMin = 1 * time.Second
	httpClient.RetryWaitMax = 30 * time.Second
	httpClient.HTTPClient.Timeout = time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second
	httpClient.Logger = retryableLogger{}
	// devolve a última resposta não-2xx em vez de um erro genérico
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	burst := int(cfg.Meta.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	return &MetaClient{
		cfg:         cfg.Meta,
		httpClient:  httpClient,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.Meta.RequestsPerSecond), burst),
	}
}

func (c *MetaClient) InsightsURL(accountID string) string {
	return fmt.Sprintf("%s/act_%s/insights", c.cfg.URL, accountID)
}
