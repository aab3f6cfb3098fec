package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// loads configuration from environment variables, with .env support for
// local development
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("ENVIRONMENT", "development")

	return &Config{
		Port:         viper.GetString("PORT"),
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		DatabaseName: viper.GetString("DATABASE_NAME"),
		Environment:  viper.GetString("ENVIRONMENT"),
	}
}
