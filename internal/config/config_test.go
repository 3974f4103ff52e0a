package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("/tmp/cash-data")
	cfg.Categories.Expense = []string{"Rent", "Food"}
	cfg.Backup.AutoSnapshot = true

	path := filepath.Join(t.TempDir(), "cashmonitor.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Data.Dir, got.Data.Dir)
	assert.Equal(t, cfg.Currency, got.Currency)
	assert.Equal(t, cfg.Pin.SessionMinutes, got.Pin.SessionMinutes)
	assert.Equal(t, []string{"Rent", "Food"}, got.Categories.Expense)
	assert.Empty(t, got.Categories.Income)
	assert.True(t, got.Backup.AutoSnapshot)
}

func TestDefaults(t *testing.T) {
	cfg := Default("data")

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 5, cfg.Pin.SessionMinutes)
	assert.False(t, cfg.Backup.AutoSnapshot)
	assert.Empty(t, cfg.Categories.Expense)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("data")
	path := filepath.Join(t.TempDir(), "cashmonitor.yaml")
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "dir: data")
	assert.Contains(t, contents, "currency: EUR")
	assert.Contains(t, contents, "session_minutes: 5")
	assert.Contains(t, contents, "auto_snapshot: false")
}
