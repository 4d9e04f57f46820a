package metaclient

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

const redactedToken = "REDACTED"

var accessTokenPattern = regexp.MustCompile(`(access_token=)[^&\s"']+`)

// redactToken mascara o valor de access_token em URLs e mensagens
func redactToken(s string) string {
	return accessTokenPattern.ReplaceAllString(s, "${1}"+redactedToken)
}

// redactError remove o token dos erros de transporte (*url.Error carrega a URL completa)
func (c *MetaClient) redactError(err error) error {
	if err == nil {
		return nil
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactToken(urlErr.URL)
	}

	msg := err.Error()
	if c.cfg.AccessToken != "" && strings.Contains(msg, c.cfg.AccessToken) {
		return errors.New(strings.ReplaceAll(msg, c.cfg.AccessToken, redactedToken))
	}
	return err
}
