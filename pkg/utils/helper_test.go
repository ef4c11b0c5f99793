package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("0")
	assert.Error(t, err)

	_, err = ParseID("abc")
	assert.Error(t, err)
}

func TestCombineDateTime(t *testing.T) {
	date, err := ParseDate("2026-09-01")
	require.NoError(t, err)

	got, err := CombineDateTime(date, "18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC), got)

	_, err = CombineDateTime(date, "25:99")
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 6.40, Round2(8.0*0.8))
	assert.Equal(t, 8.49, Round2(9.99*0.85))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 1.01, Round2(1.006))
}
