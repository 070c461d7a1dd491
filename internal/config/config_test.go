package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://www.youtube.com/", cfg.Crawl.DefaultURL)
	assert.Equal(t, 30, cfg.Crawl.MaxItems)
	assert.Equal(t, 10*time.Second, cfg.WaitTimeout())
	assert.Equal(t, 2*time.Second, cfg.SettleDelay())
	assert.Contains(t, cfg.Selectors.Items, "ytd-rich-item-renderer")
	assert.NotEmpty(t, cfg.Selectors.TitleLink)
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"crawl": {"max_items": 5, "settle_delay_ms": 800},
		"selectors": {"channel": [".owner"]},
		"chromedp": {"user_data_dir": "data/chromedp"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Crawl.MaxItems)
	assert.Equal(t, 800*time.Millisecond, cfg.SettleDelay())
	assert.Equal(t, 10*time.Second, cfg.WaitTimeout(), "untouched values keep defaults")
	assert.Equal(t, []string{".owner"}, cfg.Selectors.Channel)
	assert.NotEmpty(t, cfg.Selectors.Items)
	assert.True(t, filepath.IsAbs(cfg.Chromedp.UserDataDir))
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"settle below minimum", `{"crawl": {"settle_delay_ms": 100}}`},
		{"non positive max items", `{"crawl": {"max_items": 0}}`},
		{"non positive wait", `{"crawl": {"wait_timeout_ms": -1}}`},
		{"relative origin", `{"crawl": {"site_origin": "/youtube"}}`},
		{"no item selectors", `{"selectors": {"items": []}}`},
		{"negative rate", `{"crawl": {"navigations_per_second": -2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.json))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := ParseConfig([]byte(`{not json`))
	assert.Error(t, err)

	cfg, err := ParseConfig([]byte(`{"crawl": {"site_origin": ""}}`))
	require.NoError(t, err, "empty origin means derive from the crawled url")
	assert.Empty(t, cfg.Crawl.SiteOrigin)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Crawl.MaxItems)

	path := filepath.Join(t.TempDir(), "appconfig.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log": {"level": "debug"}}`), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
