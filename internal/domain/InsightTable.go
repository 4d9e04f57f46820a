package domain

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Colunas da tabela normalizada de insights
const (
	ColumnDate             = "date"
	ColumnAccountName      = "account_name"
	ColumnCurrency         = "currency"
	ColumnCampaignName     = "campaign_name"
	ColumnAdsetName        = "adset_name"
	ColumnAdName           = "ad_name"
	ColumnSpend            = "spend"
	ColumnMessConversation = "mess_conversation"
	ColumnLead             = "lead"
	ColumnImpressions      = "impressions"
	ColumnClicks           = "clicks"
	ColumnReach            = "reach"
	ColumnLinkClicks       = "link_clicks"
	Column3SecPlays        = "3sec_plays"
	ColumnThruPlays        = "thruPlays"
	ColumnEngagement       = "engagement"
	ColumnReaction         = "reaction"
	ColumnComments         = "comments"
	ColumnShare            = "share"
	ColumnOutboundClicks   = "outbound_clicks"
)

type ColumnKind int

const (
	// KindText colunas de identificação, nulas quando ausentes
	KindText ColumnKind = iota
	// KindDecimal valores monetários, nulos quando ausentes
	KindDecimal
	// KindMetric métricas numéricas derivadas, 0 quando ausentes
	KindMetric
)

type Column struct {
	Name string
	Kind ColumnKind
}

// Default retorna o valor usado quando a Graph API omite o campo
func (c Column) Default() any {
	if c.Kind == KindMetric {
		return float64(0)
	}
	return nil
}

// A ordem define o layout da planilha e é idêntica para todas as contas.
var insightColumns = [...]Column{
	{Name: ColumnDate, Kind: KindText},
	{Name: ColumnAccountName, Kind: KindText},
	{Name: ColumnCurrency, Kind: KindText},
	{Name: ColumnCampaignName, Kind: KindText},
	{Name: ColumnAdsetName, Kind: KindText},
	{Name: ColumnAdName, Kind: KindText},
	{Name: ColumnSpend, Kind: KindDecimal},
	{Name: ColumnMessConversation, Kind: KindMetric},
	{Name: ColumnLead, Kind: KindMetric},
	{Name: ColumnImpressions, Kind: KindMetric},
	{Name: ColumnClicks, Kind: KindMetric},
	{Name: ColumnReach, Kind: KindMetric},
	{Name: ColumnLinkClicks, Kind: KindMetric},
	{Name: Column3SecPlays, Kind: KindMetric},
	{Name: ColumnThruPlays, Kind: KindMetric},
	{Name: ColumnEngagement, Kind: KindMetric},
	{Name: ColumnReaction, Kind: KindMetric},
	{Name: ColumnComments, Kind: KindMetric},
	{Name: ColumnShare, Kind: KindMetric},
	{Name: ColumnOutboundClicks, Kind: KindMetric},
}

// InsightColumns retorna uma cópia do schema fixo de 20 colunas
func InsightColumns() []Column {
	columns := insightColumns
	return columns[:]
}

// MetricColumns retorna apenas as colunas numéricas derivadas
func MetricColumns() []Column {
	return lo.Filter(InsightColumns(), func(c Column, _ int) bool {
		return c.Kind == KindMetric
	})
}

// NormalizedRow é uma linha de insight por anúncio e dia
type NormalizedRow struct {
	Date         *string
	AccountName  *string
	Currency     *string
	CampaignName *string
	AdsetName    *string
	AdName       *string
	Spend        decimal.NullDecimal
	Metrics      map[string]float64
}

// NewNormalizedRow cria uma linha com todas as métricas presentes e zeradas
func NewNormalizedRow() NormalizedRow {
	metrics := make(map[string]float64, len(insightColumns))
	for _, c := range MetricColumns() {
		metrics[c.Name] = 0
	}
	return NormalizedRow{Metrics: metrics}
}

// SetMetric ignora nomes fora do schema
func (r *NormalizedRow) SetMetric(column string, value float64) {
	if _, ok := r.Metrics[column]; ok {
		r.Metrics[column] = value
	}
}

func (r NormalizedRow) Metric(column string) float64 {
	return r.Metrics[column]
}

// Value retorna o valor da coluna pronto para escrita no destino (nil para nulo)
func (r NormalizedRow) Value(column string) any {
	switch column {
	case ColumnDate:
		return textValue(r.Date)
	case ColumnAccountName:
		return textValue(r.AccountName)
	case ColumnCurrency:
		return textValue(r.Currency)
	case ColumnCampaignName:
		return textValue(r.CampaignName)
	case ColumnAdsetName:
		return textValue(r.AdsetName)
	case ColumnAdName:
		return textValue(r.AdName)
	case ColumnSpend:
		if !r.Spend.Valid {
			return nil
		}
		return r.Spend.Decimal.InexactFloat64()
	}

	value, ok := r.Metrics[column]
	if !ok {
		return nil
	}
	return value
}

func textValue(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

// InsightTable é o resultado normalizado da busca de uma conta
type InsightTable struct {
	Columns []Column
	Rows    []NormalizedRow
	// Partial indica que a paginação parou antes do fim por erro na Graph API
	Partial    bool
	PartialErr error
}

func NewInsightTable(rows []NormalizedRow) *InsightTable {
	if rows == nil {
		rows = []NormalizedRow{}
	}
	return &InsightTable{
		Columns: InsightColumns(),
		Rows:    rows,
	}
}

func (t *InsightTable) Len() int {
	return len(t.Rows)
}

func (t *InsightTable) IsEmpty() bool {
	return len(t.Rows) == 0
}

func (t *InsightTable) ColumnNames() []string {
	return lo.Map(t.Columns, func(c Column, _ int) string {
		return c.Name
	})
}

func (t *InsightTable) HasColumn(name string) bool {
	return lo.ContainsBy(t.Columns, func(c Column) bool {
		return c.Name == name
	})
}

// DropColumn retorna uma projeção sem a coluna informada; as linhas são compartilhadas
func (t *InsightTable) DropColumn(name string) *InsightTable {
	return &InsightTable{
		Columns: lo.Reject(t.Columns, func(c Column, _ int) bool {
			return c.Name == name
		}),
		Rows:       t.Rows,
		Partial:    t.Partial,
		PartialErr: t.PartialErr,
	}
}

// SortByDateDesc ordena por data decrescente, datas nulas por último
func (t *InsightTable) SortByDateDesc() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i].Date, t.Rows[j].Date
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})
}

// AccountName retorna o primeiro nome de conta não nulo da tabela
func (t *InsightTable) AccountName() (string, bool) {
	if !t.HasColumn(ColumnAccountName) {
		return "", false
	}

	for _, row := range t.Rows {
		if row.AccountName == nil {
			continue
		}
		if name := strings.TrimSpace(*row.AccountName); name != "" {
			return name, true
		}
	}

	return "", false
}

// Records retorna cabeçalho e linhas na ordem das colunas da tabela
func (t *InsightTable) Records() [][]any {
	records := make([][]any, 0, len(t.Rows)+1)
	records = append(records, lo.Map(t.Columns, func(c Column, _ int) any {
		return c.Name
	}))

	for _, row := range t.Rows {
		records = append(records, lo.Map(t.Columns, func(c Column, _ int) any {
			return row.Value(c.Name)
		}))
	}

	return records
}
