package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"v0promptgen/internal/ai"
	"v0promptgen/internal/ai/prompts"
	"v0promptgen/internal/logger"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress      string   `mapstructure:"SERVER_ADDRESS"`       // e.g., ":8080"
	AppEnv             string   `mapstructure:"APP_ENV"`              // "production" switches gin to release mode
	LogLevel           string   `mapstructure:"LOG_LEVEL"`            // debug | info | warn | error
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma separated; "*" allows any origin

	// Completion Provider Configuration
	OpenAIKey           string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL       string        `mapstructure:"OPENAI_BASE_URL"` // empty means api.openai.com
	CompletionModel     string        `mapstructure:"COMPLETION_MODEL"`
	CompletionMaxTokens int           `mapstructure:"COMPLETION_MAX_TOKENS"`
	CompletionTimeout   time.Duration `mapstructure:"COMPLETION_TIMEOUT"`
	TargetTool          string        `mapstructure:"TARGET_TOOL"` // design tool named in the generated prompt

	// Persistence Configuration
	PersistRecords bool          `mapstructure:"PERSIST_RECORDS"`
	DatabasePath   string        `mapstructure:"DATABASE_PATH"`
	PersistTimeout time.Duration `mapstructure:"PERSIST_TIMEOUT"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{})

	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("COMPLETION_MODEL", ai.DefaultModel)
	v.SetDefault("COMPLETION_MAX_TOKENS", ai.DefaultMaxTokens)
	v.SetDefault("COMPLETION_TIMEOUT", ai.DefaultCompletionTimeout)
	v.SetDefault("TARGET_TOOL", prompts.DefaultTargetTool)

	v.SetDefault("PERSIST_RECORDS", true)
	v.SetDefault("DATABASE_PATH", "prompts.db")
	v.SetDefault("PERSIST_TIMEOUT", ai.DefaultPersistTimeout)
}

// LoadConfig reads configuration from file and environment variables.
// Environment variables take precedence over config.yaml.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	setDefaults(v)
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Infof("Config file ('config.yaml') not found in %s, relying on environment variables.", path)
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		logger.Infof("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.normalize()
	return config, nil
}

func (c *Config) normalize() {
	if c.OpenAIKey == "" {
		logger.Warnf("OPENAI_API_KEY is not set; every generation will fail.")
	}
	if c.CompletionMaxTokens <= 0 {
		logger.Warnf("COMPLETION_MAX_TOKENS=%d is not positive, using %d", c.CompletionMaxTokens, ai.DefaultMaxTokens)
		c.CompletionMaxTokens = ai.DefaultMaxTokens
	}
	if c.CompletionTimeout <= 0 {
		c.CompletionTimeout = ai.DefaultCompletionTimeout
	}
	if c.PersistTimeout <= 0 {
		c.PersistTimeout = ai.DefaultPersistTimeout
	}
	if c.TargetTool == "" {
		c.TargetTool = prompts.DefaultTargetTool
	}
	if c.CompletionModel == "" {
		c.CompletionModel = ai.DefaultModel
	}
	if c.PersistRecords && c.DatabasePath == "" {
		logger.Warnf("PERSIST_RECORDS is on but DATABASE_PATH is empty; disabling persistence.")
		c.PersistRecords = false
	}

	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, origin := range c.CORSAllowedOrigins {
		origin = strings.TrimSpace(origin)
		switch {
		case origin == "":
		case origin == "*", strings.HasPrefix(origin, "http://"), strings.HasPrefix(origin, "https://"):
			origins = append(origins, origin)
		default:
			logger.Warnf("Ignoring CORS origin %q: must start with http:// or https://", origin)
		}
	}
	c.CORSAllowedOrigins = origins
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
