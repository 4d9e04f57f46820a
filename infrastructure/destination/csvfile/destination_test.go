package csvfile

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

func TestDestination_Sync(t *testing.T) {
	dir := t.TempDir()
	destination := NewDestination(dir)

	date := "2024-06-02"
	row := domain.NewNormalizedRow()
	row.Date = &date
	row.Spend = decimal.NewNullDecimal(decimal.RequireFromString("12.5"))
	row.SetMetric(domain.ColumnLinkClicks, 5)

	table := domain.NewInsightTable([]domain.NormalizedRow{row}).DropColumn(domain.ColumnAccountName)

	require.NoError(t, destination.Sync(context.Background(), table, "PA"))

	content, err := os.ReadFile(destination.Path("PA"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(table.ColumnNames(), ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2024-06-02,,,,,12.5,0,0,0,0,0,5,"))

	t.Run("nova execução substitui o conteúdo anterior", func(t *testing.T) {
		require.NoError(t, destination.Sync(context.Background(), domain.NewInsightTable(nil), "PA"))

		content, err := os.ReadFile(destination.Path("PA"))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		assert.Len(t, lines, 1)
		assert.Len(t, strings.Split(lines[0], ","), 20)
	})

	t.Run("contexto cancelado não escreve", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, destination.Sync(ctx, table, "CW"), context.Canceled)
		_, err := os.Stat(destination.Path("CW"))
		assert.True(t, os.IsNotExist(err))
	})
}
