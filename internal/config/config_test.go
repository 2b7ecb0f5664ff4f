package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("ZHIBI_API_URL")
	os.Unsetenv("LOG_FILE_PATH")
	os.Unsetenv("GO_ENV")

	cfg := Load()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.Api.BaseURL)
	assert.Equal(t, "zhibi-tui.log", cfg.App.LogFilePath)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ZHIBI_API_URL", "http://10.0.0.5:8000")
	t.Setenv("LOG_FILE_PATH", "/tmp/zhibi.log")

	cfg := Load()

	assert.Equal(t, "http://10.0.0.5:8000", cfg.Api.BaseURL)
	assert.Equal(t, "/tmp/zhibi.log", cfg.App.LogFilePath)
}
