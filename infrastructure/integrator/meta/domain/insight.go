package metadomain

import "encoding/json"

// Campos solicitados ao endpoint de insights, na ordem enviada
var InsightFields = []string{
	"account_currency",
	"account_name",
	"campaign_name",
	"adset_name",
	"ad_name",
	"impressions",
	"clicks",
	"spend",
	"reach",
	"actions",
	"outbound_clicks",
	"video_thruplay_watched_actions",
}

const (
	LevelAd            = "ad"
	DailyTimeIncrement = "1"
)

// InsightRecord é uma linha crua retornada por uma página de insights.
// Campos ausentes ficam nil (texto) ou vazios (números).
type InsightRecord struct {
	DateStart                   *string     `json:"date_start"`
	DateStop                    *string     `json:"date_stop"`
	AccountName                 *string     `json:"account_name"`
	AccountCurrency             *string     `json:"account_currency"`
	CampaignName                *string     `json:"campaign_name"`
	AdsetName                   *string     `json:"adset_name"`
	AdName                      *string     `json:"ad_name"`
	Spend                       json.Number `json:"spend"`
	Impressions                 json.Number `json:"impressions"`
	Clicks                      json.Number `json:"clicks"`
	Reach                       json.Number `json:"reach"`
	Actions                     []Action    `json:"actions"`
	OutboundClicks              []Action    `json:"outbound_clicks"`
	VideoThruplayWatchedActions []Action    `json:"video_thruplay_watched_actions"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

// InsightsPage é o corpo de uma resposta paginada de insights
type InsightsPage struct {
	Data   []InsightRecord `json:"data"`
	Paging *Paging         `json:"paging,omitempty"`
}

// NextURL retorna o cursor da próxima página; vazio encerra a paginação
func (p *InsightsPage) NextURL() string {
	if p == nil || p.Paging == nil {
		return ""
	}
	return p.Paging.Next
}
