package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-06-02", FormatDate(time.Date(2024, 6, 2, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12-31", FormatDate(time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local)))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)
}
