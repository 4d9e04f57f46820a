package meta

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-sheets/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

var ErrMissingAccountID = errors.New("insights: account id não informado")

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAdInsights busca os insights diários por anúncio de uma conta, seguindo o cursor
// "next" até o fim. Um erro no meio da paginação interrompe a busca e a tabela é
// devolvida com as linhas já coletadas e marcada como parcial.
func (s *MetaIntegrator) FetchAdInsights(ctx context.Context, accountID string, window domain.ReportingWindow) (*domain.InsightTable, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrMissingAccountID
	}

	logger := logrus.WithField("account_id", accountID)

	rows := make([]domain.NormalizedRow, 0)
	table := func() *domain.InsightTable {
		t := domain.NewInsightTable(rows)
		t.SortByDateDesc()
		return t
	}

	pageURL := s.Client.InsightsURL(accountID)
	params := s.insightsParams(window)
	seen := make(map[string]struct{})
	pages := 0

	for {
		page, err := s.Client.GetAdInsightsPage(ctx, pageURL, params)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"error": err.Error(),
				"page":  pages + 1,
				"rows":  len(rows),
			}).Error("insights: failed to get ad insights page, keeping partial result")

			t := table()
			t.Partial = true
			t.PartialErr = err
			return t, nil
		}
		pages++

		for _, record := range page.Data {
			rows = append(rows, FactoryNormalizedRow(record))
		}

		next := page.NextURL()
		if next == "" {
			break
		}
		if _, ok := seen[next]; ok {
			logger.WithField("page", pages).Warn("insights: repeated paging cursor, stopping pagination")
			break
		}
		seen[next] = struct{}{}

		pageURL = next
		params = nil
	}

	logger.WithFields(logrus.Fields{
		"pages": pages,
		"rows":  len(rows),
	}).Debug("insights: successfully retrieved ad insights")

	return table(), nil
}

func (s *MetaIntegrator) insightsParams(window domain.ReportingWindow) url.Values {
	params := url.Values{}
	params.Add("access_token", s.cfg.Meta.AccessToken)
	params.Add("time_range", window.TimeRange())
	params.Add("fields", strings.Join(metadomain.InsightFields, ","))
	params.Add("time_increment", metadomain.DailyTimeIncrement)
	params.Add("level", metadomain.LevelAd)
	if s.cfg.Meta.PageSize > 0 {
		params.Add("limit", strconv.Itoa(s.cfg.Meta.PageSize))
	}
	return params
}

// FactoryNormalizedRow converte um registro cru da Graph API para o schema fixo de colunas
func FactoryNormalizedRow(record metadomain.InsightRecord) domain.NormalizedRow {
	row := domain.NewNormalizedRow()

	row.Date = record.DateStart
	row.AccountName = record.AccountName
	row.Currency = record.AccountCurrency
	row.CampaignName = record.CampaignName
	row.AdsetName = record.AdsetName
	row.AdName = record.AdName

	if record.Spend != "" {
		spend, err := decimal.NewFromString(record.Spend.String())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"spend_value": record.Spend.String(),
				"error":       err.Error(),
			}).Warn("insights: error converting spend to decimal")
		} else {
			row.Spend = decimal.NewNullDecimal(spend)
		}
	}

	row.SetMetric(domain.ColumnImpressions, parseMetric(domain.ColumnImpressions, record.Impressions))
	row.SetMetric(domain.ColumnClicks, parseMetric(domain.ColumnClicks, record.Clicks))
	row.SetMetric(domain.ColumnReach, parseMetric(domain.ColumnReach, record.Reach))

	for _, mapping := range metadomain.ActionTypeMappings() {
		row.SetMetric(mapping.Column, metadomain.ExtractAction(record.Actions, mapping.ActionType))
	}

	row.SetMetric(domain.ColumnOutboundClicks, metadomain.ExtractAction(record.OutboundClicks, metadomain.OutboundClickActionType))
	row.SetMetric(domain.ColumnThruPlays, metadomain.ExtractAction(record.VideoThruplayWatchedActions, metadomain.ThruPlayActionType))

	return row
}

func parseMetric(column string, value json.Number) float64 {
	raw := value.String()
	if raw == "" {
		return 0
	}

	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"column": column,
			"value":  raw,
			"error":  err.Error(),
		}).Warn("insights: error converting metric to float")
		return 0
	}

	return parsed.InexactFloat64()
}
