package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
	"github.com/aliskhannn/vocabulary-bot/internal/repository"
)

const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidTelegramMode         = errors.New("invalid telegram mode")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string    `mapstructure:"env"`          // current application environment (local, dev, production etc)
	FeedbackURL string    `mapstructure:"feedback_url"` // link shown by the feedback button
	Telegram    Telegram  `mapstructure:"telegram"`     // transport configuration section
	Words       Words     `mapstructure:"words"`        // vocabulary sources
	Quiz        Quiz      `mapstructure:"quiz"`         // quiz configuration section
	Broadcast   Broadcast `mapstructure:"broadcast"`    // daily word configuration section
}

// Telegram contains transport-related configuration parameters.
type Telegram struct {
	Token      string `mapstructure:"-"`           // bot API token loaded from environment
	Debug      bool   `mapstructure:"debug"`       // log raw Bot API traffic
	Mode       string `mapstructure:"mode"`        // "polling" or "webhook"
	WebhookURL string `mapstructure:"webhook_url"` // public URL Telegram posts updates to
	ListenAddr string `mapstructure:"listen_addr"` // local address of the webhook server
}

// Words lists vocabulary files. Path is a single-level shortcut used when Levels is empty.
type Words struct {
	Path   string                   `mapstructure:"path"`
	Levels []repository.LevelSource `mapstructure:"levels"`
}

// Quiz contains quiz parameters.
type Quiz struct {
	Length          int           `mapstructure:"length"`           // questions per quiz
	SessionTTL      time.Duration `mapstructure:"session_ttl"`      // idle time before a session expires, 0 disables
	CleanupSchedule string        `mapstructure:"cleanup_schedule"` // cron spec of the expired session sweep
}

// Broadcast contains word-of-the-day parameters.
type Broadcast struct {
	Schedule    string `mapstructure:"schedule"`    // cron spec, "0 9 * * *" is 09:00 daily
	Timezone    string `mapstructure:"timezone"`    // IANA zone the schedule is evaluated in
	Concurrency int    `mapstructure:"concurrency"` // parallel deliveries
}

// Location returns the broadcast time zone.
func (b Broadcast) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load broadcast timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

// LevelSources returns the configured levels, falling back to Path as the default level.
func (w Words) LevelSources() []repository.LevelSource {
	if len(w.Levels) > 0 {
		return w.Levels
	}
	return []repository.LevelSource{{Name: entities.DefaultLevelName, Path: w.Path}}
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	// Load sensitive values from environment variables.
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	if cfg.Telegram.Mode == ModeWebhook && cfg.Telegram.WebhookURL == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_WEBHOOK_URL", ErrMissingEnvironmentVariables)
	}

	return cfg, nil
}

// LoadWords reads only what is needed to load vocabulary; the token is not required.
func LoadWords() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	// A missing .env is fine, the variables may come from the environment.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("feedback_url", "https://github.com/jevhen123zavirukha/TelegramBot_english")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.mode", ModePolling)
	v.SetDefault("telegram.webhook_url", "")
	v.SetDefault("telegram.listen_addr", ":8443")
	v.SetDefault("words.path", "words.txt")
	v.SetDefault("quiz.length", entities.DefaultQuizLength)
	v.SetDefault("quiz.session_ttl", "30m")
	v.SetDefault("quiz.cleanup_schedule", "@every 10m")
	v.SetDefault("broadcast.schedule", "0 9 * * *")
	v.SetDefault("broadcast.timezone", "UTC")
	v.SetDefault("broadcast.concurrency", 8)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN", "TOKEN_BOT")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Telegram.Token = v.GetString("telegram_api_token")

	switch cfg.Telegram.Mode {
	case ModePolling, ModeWebhook:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTelegramMode, cfg.Telegram.Mode)
	}

	return &cfg, nil
}
