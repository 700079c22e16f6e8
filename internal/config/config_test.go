package config_test

import (
	"testing"

	"floorplan-compliance-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "")
	t.Setenv("RULES_FILE", "")

	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, "uploaded_files", cfg.Upload.Dir)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, 100, cfg.Upload.MinImagePixel)
	assert.Equal(t, 10000, cfg.Upload.MaxImagePixel)
	assert.Empty(t, cfg.Rules.File)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com , https://b.example.com")
	t.Setenv("UPLOAD_DIR", "/tmp/uploads")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "25")
	t.Setenv("RULES_FILE", "/etc/rules.yaml")

	cfg := config.LoadConfig()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/tmp/uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(25*1024*1024), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, "/etc/rules.yaml", cfg.Rules.File)
}

func TestLoadConfigBadUploadSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE_MB", "not-a-number")

	cfg := config.LoadConfig()

	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSizeBytes)
}
