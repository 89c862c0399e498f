package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development", DefaultLocale: "en"},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  time.Minute,
		},
		GuestList: GuestListConfig{FetchTimeout: 10 * time.Second, FetchRetries: 2},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.App.Environment = "local"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logger.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.App.DefaultLocale = "fr"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.GuestList.FetchRetries = -1
	assert.Error(t, cfg.Validate())

	// Empty source settings are fine: the loader falls back to the sample.
	cfg = validConfig()
	cfg.GuestList.Path = ""
	cfg.GuestList.URL = ""
	assert.NoError(t, cfg.Validate())
}

func TestExpandGuestsPath(t *testing.T) {
	cfg := validConfig()
	cfg.GuestList.Path = ""
	require.NoError(t, cfg.expandGuestsPath())
	assert.Empty(t, cfg.GuestList.Path)

	cfg.GuestList.Path = "data/guests.csv"
	require.NoError(t, cfg.expandGuestsPath())
	assert.True(t, filepath.IsAbs(cfg.GuestList.Path))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitList("*"))
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		splitList(" https://a.example , https://b.example ,"),
	)
	assert.Nil(t, splitList(""))
}

func TestGetBoolConfigValue(t *testing.T) {
	assert.True(t, getBoolConfigValue("true", "UNSET_TEST_KEY", false))
	assert.True(t, getBoolConfigValue("YES", "UNSET_TEST_KEY", false))
	assert.True(t, getBoolConfigValue("1", "UNSET_TEST_KEY", false))
	assert.False(t, getBoolConfigValue("nope", "UNSET_TEST_KEY", true))
	assert.True(t, getBoolConfigValue("", "UNSET_TEST_KEY", true))
}
