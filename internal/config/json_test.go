package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {"user": "gopher", "pass": "secret"},
		"remote": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"sync": {"log_path": "keep.log", "label": "log", "policy": "prefer-local"},
		"storage": {
			"ledger_path": "ledger.json",
			"session_path": "session.json",
			"history_dsn": "history.db",
			"backup_dir": "backups"
		},
		"watch": {"enabled": true, "debounce": "2s", "interval": "5m", "backoff": "30s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "gopher", cfg.Auth.User)
	assert.Equal(t, "secret", cfg.Auth.Pass)
	assert.Equal(t, "localhost:8080", cfg.Remote.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "keep.log", cfg.Sync.LogPath)
	assert.Equal(t, "log", cfg.Sync.Label)
	assert.Equal(t, "prefer-local", cfg.Sync.Policy)
	assert.Equal(t, "ledger.json", cfg.Storage.LedgerPath)
	assert.Equal(t, "session.json", cfg.Storage.SessionPath)
	assert.Equal(t, "history.db", cfg.Storage.HistoryDSN)
	assert.Equal(t, "backups", cfg.Storage.BackupDir)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, 5*time.Minute, cfg.Watch.Interval)
	assert.Equal(t, 30*time.Second, cfg.Watch.Backoff)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also arrive as raw nanosecond numbers
	path := writeTempJSON(t, `{"remote": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_BadDurationString(t *testing.T) {
	path := writeTempJSON(t, `{"watch": {"debounce": "soonish"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
