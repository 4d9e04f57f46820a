package utils

import "time"

// FormatDate formata a data no padrão YYYY-MM-DD aceito pela Graph API
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
