package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("JOBBOT_SCAN_INTERVAL_MINUTES", "")

	path := writeConfig(t, "\xef\xbb\xbf"+`{
		"telegram_bot_token": "123:abc",
		"telegram_chat_id": 987654,
		"roles": ["Developer", "software engineer"],
		"keywords_include": ["junior"],
		"keywords_exclude": ["senior"]
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, "987654", cfg.TelegramChatID)
	assert.Equal(t, []string{"developer", "software engineer"}, cfg.Roles)
	assert.Equal(t, 30, cfg.ScanIntervalMinutes)
	assert.Equal(t, 30*time.Minute, cfg.ScanInterval())
	assert.Equal(t, DefaultDelays(), cfg.Delays)
	assert.Equal(t, DefaultEndpoints(), cfg.Endpoints)
	assert.Equal(t, []string{RegionIndia, RegionUSA}, cfg.Regions)
	assert.Equal(t, "seen_jobs.json", cfg.SeenJobsPath)

	id, err := cfg.ChatID()
	require.NoError(t, err)
	assert.Equal(t, int64(987654), id)
}

func TestLoad_YAMLWithOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")
	t.Setenv("JOBBOT_SCAN_INTERVAL_MINUTES", "15")

	path := writeConfig(t, `
telegram_bot_token: file-token
telegram_chat_id: "1"
roles: [developer]
scan_interval_minutes: 45
regions: [USA]
delays:
  batch_cooldown: 5s
  batch_size: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.TelegramToken)
	assert.Equal(t, "-100200", cfg.TelegramChatID)
	assert.Equal(t, 15, cfg.ScanIntervalMinutes)
	assert.Equal(t, []string{RegionUSA}, cfg.Regions)
	assert.Equal(t, 5*time.Second, cfg.Delays.BatchCooldown)
	assert.Equal(t, 3, cfg.Delays.BatchSize)
	//untouched delays keep defaults
	assert.Equal(t, time.Second, cfg.Delays.InterSend)
	assert.Equal(t, 100*time.Second, cfg.Delays.LongPollTimeout)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("JOBBOT_SCAN_INTERVAL_MINUTES", "")

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"roles": [`))
		assert.Error(t, err)
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"roles": ["developer"]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telegram_bot_token is required")
		assert.Contains(t, err.Error(), "telegram_chat_id is required")
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"telegram_bot_token": "t", "telegram_chat_id": "1", "roles": ["dev"], "regions": ["Mars"]}`))
		assert.ErrorContains(t, err, `unknown region "Mars"`)
	})
}

func TestTokenIsPlaceholder(t *testing.T) {
	assert.True(t, (&Config{TelegramToken: "YOUR_BOT_TOKEN"}).TokenIsPlaceholder())
	assert.False(t, (&Config{TelegramToken: "123:abc"}).TokenIsPlaceholder())
}

func TestChatID_Invalid(t *testing.T) {
	_, err := (&Config{TelegramChatID: "@channel"}).ChatID()
	assert.Error(t, err)
}

func TestApplyLevel(t *testing.T) {
	cfg := &Config{Roles: []string{"developer"}, KeywordsInclude: []string{"x"}}

	p := cfg.ApplyLevel(Fresher)
	assert.Contains(t, p.Include, "junior")
	assert.Contains(t, p.Exclude, "senior")
	assert.Equal(t, []string{"developer"}, p.Roles)
	assert.Equal(t, p.Include, cfg.KeywordsInclude)
	assert.Equal(t, "Fresher Job", Fresher.Label())

	p = cfg.ApplyLevel(Experienced)
	assert.Contains(t, p.Include, "senior")
	assert.Contains(t, p.Exclude, "junior")
	assert.NotContains(t, p.Exclude, "graduate")
	assert.Equal(t, "Experienced Job", Experienced.Label())
	assert.Equal(t, "Experienced", Experienced.Title())
}

func TestLookupRegion(t *testing.T) {
	assert.Equal(t, "IN", LookupRegion(RegionIndia).GL)
	assert.Equal(t, "US:en", LookupRegion("anything").CEID)
}
