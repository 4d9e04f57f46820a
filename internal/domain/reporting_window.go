package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/meta-ads-sheets/pkg/utils"
)

// ReportingWindow representa o período consultado na Graph API em cada execução
type ReportingWindow struct {
	Since time.Time
	Until time.Time
}

// ResolveReportingWindow calcula a janela a partir do primeiro dia do mês corrente
// no ano fiscal fixado até o momento atual. fiscalYear <= 0 usa o ano de now.
func ResolveReportingWindow(now time.Time, fiscalYear int) ReportingWindow {
	year := fiscalYear
	if year <= 0 {
		year = now.Year()
	}

	return ReportingWindow{
		Since: time.Date(year, now.Month(), 1, 0, 0, 0, 0, now.Location()),
		Until: now,
	}
}

// TimeRange serializa a janela no formato esperado pelo parâmetro time_range
func (w ReportingWindow) TimeRange() string {
	return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", utils.FormatDate(w.Since), utils.FormatDate(w.Until))
}
