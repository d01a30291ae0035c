package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the tutor service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	DatabasePath     string
	AIBaseURL        string
	AIModel          string
	AIMaxTokens      int
	AITemperature    float32
	AttemptThreshold int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an
// optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("HERUPA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Herupa Tutor API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8090")
	v.SetDefault("database.path", "herupa.db")
	v.SetDefault("ai.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("ai.model", "llama-3.3-70b-versatile")
	v.SetDefault("ai.max_tokens", 600)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("attempt.threshold", 3)

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		DatabasePath:     v.GetString("database.path"),
		AIBaseURL:        v.GetString("ai.base_url"),
		AIModel:          v.GetString("ai.model"),
		AIMaxTokens:      v.GetInt("ai.max_tokens"),
		AITemperature:    float32(v.GetFloat64("ai.temperature")),
		AttemptThreshold: v.GetInt("attempt.threshold"),
	}

	if cfg.AIMaxTokens <= 0 {
		cfg.AIMaxTokens = 600
	}

	if cfg.AttemptThreshold <= 0 {
		return Config{}, fmt.Errorf("attempt threshold must be positive, got %d", cfg.AttemptThreshold)
	}

	return cfg, nil
}
