package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Vision VisionConfig
	Batch  BatchConfig
	Store  StoreConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VisionConfig holds LLM API configuration
type VisionConfig struct {
	APIKey            string `mapstructure:"api_key"`
	BaseURL           string `mapstructure:"base_url"`
	ExtractModel      string `mapstructure:"extract_model"`
	CompareModel      string `mapstructure:"compare_model"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
}

// BatchConfig holds reconciliation batch configuration
type BatchConfig struct {
	CaptureDir     string  `mapstructure:"capture_dir"`
	EntriesFile    string  `mapstructure:"entries_file"`
	Workers        int     `mapstructure:"workers"`
	PriceTolerance float64 `mapstructure:"price_tolerance"`
	DebugLogging   bool    `mapstructure:"debug_logging"`
}

// StoreConfig holds record persistence configuration
type StoreConfig struct {
	Type string `mapstructure:"type"` // "memory" or "file"
	Path string `mapstructure:"path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shelfcheck/")

	// Environment variable settings
	v.SetEnvPrefix("SHELFCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Vision defaults (Groq's OpenAI-compatible endpoint)
	v.SetDefault("vision.api_key", "")
	v.SetDefault("vision.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("vision.extract_model", "llama-3.2-11b-vision-preview")
	v.SetDefault("vision.compare_model", "gemma2-9b-it")
	v.SetDefault("vision.requests_per_minute", 30)

	// Batch defaults
	v.SetDefault("batch.capture_dir", "captures")
	v.SetDefault("batch.entries_file", "user_entries.json")
	v.SetDefault("batch.workers", 1)
	v.SetDefault("batch.price_tolerance", 10.0)
	v.SetDefault("batch.debug_logging", false)

	// Store defaults
	v.SetDefault("store.type", "file")
	v.SetDefault("store.path", "records.jsonl")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Vision.APIKey == "" {
		return fmt.Errorf("vision API key is required (set SHELFCHECK_VISION_API_KEY)")
	}

	if config.Store.Type != "memory" && config.Store.Type != "file" {
		return fmt.Errorf("store type must be 'memory' or 'file', got: %s", config.Store.Type)
	}

	if config.Store.Type == "file" && config.Store.Path == "" {
		return fmt.Errorf("store path is required when store type is 'file'")
	}

	if config.Batch.Workers < 0 {
		return fmt.Errorf("batch workers must be non-negative, got: %d", config.Batch.Workers)
	}

	return nil
}
