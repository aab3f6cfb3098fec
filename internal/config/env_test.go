package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// viper treats empty env values as unset, so defaults apply
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.DatabaseName)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "flamesblue")

	cfg := Load()

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "flamesblue", cfg.DatabaseName)
}
