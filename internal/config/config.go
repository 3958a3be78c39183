package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/masykur/fpldraft/internal/platform/logging"
)

// Config stores runtime configuration for the draft companion.
type Config struct {
	FBRAPIKey        string
	FBRAPIBaseURL    string        `validate:"required,url"`
	FBRAPITimeout    time.Duration `validate:"gt=0"`
	FBRAPIMaxRetries int           `validate:"gte=0"`
	TotalTeams       int           `validate:"gte=2,lte=20"`
	DraftPosition    int           `validate:"gte=1"`
	SuggestCount     int           `validate:"gte=1"`
	OutputDir        string        `validate:"required"`
	LogLevel         logging.Level
}

// LiveDataEnabled reports whether an API key is present. Absence is not an
// error: the sample player table is used instead.
func (c Config) LiveDataEnabled() bool {
	return c.FBRAPIKey != ""
}

func Load() (Config, error) {
	timeout, err := time.ParseDuration(getEnv("FBRAPI_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FBRAPI_TIMEOUT: %w", err)
	}

	maxRetries, err := getEnvAsInt("FBRAPI_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FBRAPI_MAX_RETRIES: %w", err)
	}

	totalTeams, err := getEnvAsInt("DRAFT_TOTAL_TEAMS", 12)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRAFT_TOTAL_TEAMS: %w", err)
	}

	draftPosition, err := getEnvAsInt("DRAFT_POSITION", 7)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRAFT_POSITION: %w", err)
	}

	suggestCount, err := getEnvAsInt("SUGGEST_COUNT", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse SUGGEST_COUNT: %w", err)
	}

	cfg := Config{
		FBRAPIKey:        strings.TrimSpace(os.Getenv("FBRAPI_KEY")),
		FBRAPIBaseURL:    strings.TrimRight(getEnv("FBRAPI_BASE_URL", "https://api.fbrapi.com/v1"), "/"),
		FBRAPITimeout:    timeout,
		FBRAPIMaxRetries: maxRetries,
		TotalTeams:       totalTeams,
		DraftPosition:    draftPosition,
		SuggestCount:     suggestCount,
		OutputDir:        getEnv("ANALYSIS_OUTPUT_DIR", "."),
		LogLevel:         parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	if cfg.DraftPosition > cfg.TotalTeams {
		return Config{}, fmt.Errorf("DRAFT_POSITION %d out of range 1..%d", cfg.DraftPosition, cfg.TotalTeams)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
