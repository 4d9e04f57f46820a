package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-sheets/infrastructure/integrator/meta/domain"
)

// GetAdInsightsPage busca uma página de insights. Na primeira página params carrega os
// filtros; nas seguintes pageURL é o cursor "next" completo e params deve ser nil.
func (c *MetaClient) GetAdInsightsPage(ctx context.Context, pageURL string, params url.Values) (*metadomain.InsightsPage, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("metaclient: limitador de requisições: %w", err)
	}

	requestURL := pageURL
	if len(params) > 0 {
		requestURL = pageURL + "?" + params.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		err = c.redactError(err)
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = c.redactError(err)
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", c.redactError(err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newUpstreamHTTPError(resp.StatusCode, body)
	}

	var page metadomain.InsightsPage
	if err := json.Unmarshal(body, &page); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, fmt.Errorf("erro ao decodificar página de insights: %w", err)
	}

	return &page, nil
}

// CheckTokenValidity consulta o endpoint /me para falhar cedo com token inválido
func (c *MetaClient) CheckTokenValidity(ctx context.Context) error {
	if c.cfg.AccessToken == "" {
		return fmt.Errorf("token não pode ser vazio")
	}

	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", c.cfg.AccessToken)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+"/me?"+params.Encode(), nil)
	if err != nil {
		return c.redactError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao verificar token: %w", c.redactError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return newUpstreamHTTPError(resp.StatusCode, body)
	}

	return nil
}
