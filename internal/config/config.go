// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	AI       AIConfig
	Speech   SpeechConfig
	Vision   VisionConfig
	Queue    QueueConfig
	Postgres PostgresConfig
}

// AIConfig configures the chat-completion analysis client.
type AIConfig struct {
	Endpoint    string  `koanf:"PULKEEPER_AI_ENDPOINT"`
	APIKey      string  `koanf:"PULKEEPER_AI_API_KEY"`
	Model       string  `koanf:"PULKEEPER_AI_MODEL"`
	Temperature float64 `koanf:"PULKEEPER_AI_TEMPERATURE"`

	// TimeoutSeconds bounds each analysis request end to end.
	TimeoutSeconds int `koanf:"PULKEEPER_AI_TIMEOUT_SECONDS"`

	// Attempts is the total number of tries per request, including the first.
	Attempts int `koanf:"PULKEEPER_AI_ATTEMPTS"`
}

// SpeechConfig configures the voice transcription client.
type SpeechConfig struct {
	Endpoint       string `koanf:"PULKEEPER_SPEECH_ENDPOINT"`
	APIKey         string `koanf:"PULKEEPER_SPEECH_API_KEY"`
	Model          string `koanf:"PULKEEPER_SPEECH_MODEL"`
	TimeoutSeconds int    `koanf:"PULKEEPER_SPEECH_TIMEOUT_SECONDS"`
	Attempts       int    `koanf:"PULKEEPER_SPEECH_ATTEMPTS"`
}

// VisionConfig configures the receipt text extractor.
// The underlying client reads GEMINI_API_KEY from the environment itself.
type VisionConfig struct {
	Model string `koanf:"PULKEEPER_VISION_MODEL"`
}

// QueueConfig configures the in-memory job queue.
type QueueConfig struct {
	BufferSize int `koanf:"PULKEEPER_QUEUE_BUFFER"`
	Workers    int `koanf:"PULKEEPER_QUEUE_WORKERS"`
}

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	Host     string `koanf:"POSTGRES_HOST"`
	Port     int    `koanf:"POSTGRES_PORT"`
	Database string `koanf:"POSTGRES_DB"`
	User     string `koanf:"POSTGRES_USER"`
	Password string `koanf:"POSTGRES_PASSWORD"`
	SSLMode  string `koanf:"POSTGRES_SSLMODE"`
}

// DSN builds a pgx-compatible connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// Load reads configuration from environment variables and applies defaults
// for everything that is safe to default. API keys have no defaults.
func Load() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AI.Endpoint == "" {
		c.AI.Endpoint = "https://api.deepseek.com/v1/chat/completions"
	}
	if c.AI.Model == "" {
		c.AI.Model = "deepseek-chat"
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.2
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = 15
	}
	if c.AI.Attempts <= 0 {
		c.AI.Attempts = 3
	}

	if c.Speech.Endpoint == "" {
		c.Speech.Endpoint = "https://api.openai.com/v1/audio/transcriptions"
	}
	if c.Speech.Model == "" {
		c.Speech.Model = "whisper-1"
	}
	if c.Speech.TimeoutSeconds <= 0 {
		c.Speech.TimeoutSeconds = 15
	}
	if c.Speech.Attempts <= 0 {
		c.Speech.Attempts = 2
	}

	if c.Vision.Model == "" {
		c.Vision.Model = "gemini-2.5-flash"
	}

	if c.Queue.BufferSize <= 0 {
		c.Queue.BufferSize = 100
	}
	if c.Queue.Workers <= 0 {
		c.Queue.Workers = 4
	}

	if c.Postgres.Host == "" {
		c.Postgres.Host = "localhost"
	}
	if c.Postgres.Port == 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.Database == "" {
		c.Postgres.Database = "pulkeeper"
	}
	if c.Postgres.User == "" {
		c.Postgres.User = "pulkeeper"
	}
	if c.Postgres.SSLMode == "" {
		c.Postgres.SSLMode = "disable"
	}
}
