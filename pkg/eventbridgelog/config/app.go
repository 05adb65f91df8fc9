package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	eberrors "github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/errors"
)

// Application defaults.
const (
	DefaultAppName           = "Event Bridge Log Producer"
	DefaultAppVersion        = "1.0.0"
	DefaultLogLevel          = "INFO"
	DefaultLogFormat         = "json"
	DefaultBatchSize         = 10
	DefaultMaxRetries        = 3
	DefaultRetryDelaySeconds = 1.0
)

// LevelCritical sits above slog.LevelError.
const LevelCritical = slog.LevelError + 4

// logLevels maps accepted level names to slog levels. NOTSET logs everything.
var logLevels = map[string]slog.Level{
	"CRITICAL": LevelCritical,
	"ERROR":    slog.LevelError,
	"WARNING":  slog.LevelWarn,
	"INFO":     slog.LevelInfo,
	"DEBUG":    slog.LevelDebug,
	"NOTSET":   slog.LevelDebug - 4,
}

// appEnv binds ApplicationConfig overrides to environment variables. Values
// stay strings here and are validated by NewApplicationConfig.
type appEnv struct {
	AppName           *string `env:"APP_NAME" json:"app_name,omitempty"`
	AppVersion        *string `env:"APP_VERSION" json:"app_version,omitempty"`
	Environment       *string `env:"ENVIRONMENT" json:"environment,omitempty"`
	Debug             *string `env:"DEBUG" json:"debug,omitempty"`
	LogLevel          *string `env:"LOG_LEVEL" json:"log_level,omitempty"`
	LogFormat         *string `env:"LOG_FORMAT" json:"log_format,omitempty"`
	BatchSize         *string `env:"PRODUCER_BATCH_SIZE" json:"batch_size,omitempty"`
	MaxRetries        *string `env:"PRODUCER_MAX_RETRIES" json:"max_retries,omitempty"`
	RetryDelaySeconds *string `env:"PRODUCER_RETRY_DELAY" json:"retry_delay_seconds,omitempty"`
}

// ApplicationConfig holds the runtime settings of a producing service.
//
// Unlike AWSConfig, construction is strict: any unknown enumerated value or
// out-of-range producer setting fails with a *errors.ConfigurationError
// listing every offending field.
type ApplicationConfig struct {
	AppName     string
	AppVersion  string
	Environment string
	Debug       bool

	// LogLevel is one of CRITICAL, ERROR, WARNING, INFO, DEBUG, NOTSET.
	LogLevel string

	// LogFormat is "json" or "text".
	LogFormat string

	BatchSize         int
	MaxRetries        int
	RetryDelaySeconds float64
}

// NewApplicationConfig builds an ApplicationConfig from snake_case overrides
// and defaults. It never reads the process environment.
func NewApplicationConfig(overrides map[string]any) (ApplicationConfig, error) {
	v := NewValues(overrides)
	var fields []eberrors.FieldError
	fail := func(key, msg string) {
		raw, _ := v.Lookup(key)
		fields = append(fields, eberrors.FieldError{Field: key, Message: msg, Value: raw})
	}

	str := func(key, def string) string {
		s, err := v.ParseString(key, def)
		if err != nil {
			fail(key, err.Error())
		}
		return s
	}

	cfg := ApplicationConfig{
		AppName:    str("app_name", DefaultAppName),
		AppVersion: str("app_version", DefaultAppVersion),
	}

	env := strings.ToLower(strings.TrimSpace(str("environment", Development)))
	switch env {
	case "":
		cfg.Environment = Development
	case Development, Production:
		cfg.Environment = env
	default:
		fail("environment", "must be development or production")
	}

	debug, err := v.ParseBool("debug", true)
	if err != nil {
		fail("debug", err.Error())
	}
	cfg.Debug = debug

	level := strings.ToUpper(strings.TrimSpace(str("log_level", DefaultLogLevel)))
	if _, ok := logLevels[level]; ok {
		cfg.LogLevel = level
	} else {
		fail("log_level", "must be one of CRITICAL, ERROR, WARNING, INFO, DEBUG, NOTSET")
	}

	format := strings.ToLower(strings.TrimSpace(str("log_format", DefaultLogFormat)))
	if format == "json" || format == "text" {
		cfg.LogFormat = format
	} else {
		fail("log_format", "must be json or text")
	}

	if cfg.BatchSize, err = v.ParseInt("batch_size", DefaultBatchSize); err != nil {
		fail("batch_size", err.Error())
	} else if cfg.BatchSize < 1 {
		fail("batch_size", "must be at least 1")
	}

	if cfg.MaxRetries, err = v.ParseInt("max_retries", DefaultMaxRetries); err != nil {
		fail("max_retries", err.Error())
	} else if cfg.MaxRetries < 0 {
		fail("max_retries", "must not be negative")
	}

	if cfg.RetryDelaySeconds, err = v.ParseFloat("retry_delay_seconds", DefaultRetryDelaySeconds); err != nil {
		fail("retry_delay_seconds", err.Error())
	} else if cfg.RetryDelaySeconds < 0 {
		fail("retry_delay_seconds", "must not be negative")
	}

	if len(fields) > 0 {
		return ApplicationConfig{}, eberrors.NewConfigurationError("app", fields)
	}
	return cfg, nil
}

// ApplicationConfigFromEnv builds an ApplicationConfig from environment
// variables.
func ApplicationConfigFromEnv(env Env) (ApplicationConfig, error) {
	overrides, err := overridesFromEnv(env, &appEnv{})
	if err != nil {
		return ApplicationConfig{}, &eberrors.ConfigurationError{Section: "app", Err: err}
	}
	return NewApplicationConfig(overrides)
}

// IsProduction reports whether the service runs in production.
func (c ApplicationConfig) IsProduction() bool {
	return c.Environment == Production
}

// SlogLevel converts LogLevel to a slog level. Unknown names map to info.
func (c ApplicationConfig) SlogLevel() slog.Level {
	if level, ok := logLevels[c.LogLevel]; ok {
		return level
	}
	return slog.LevelInfo
}

// RetryDelay returns RetryDelaySeconds as a duration.
func (c ApplicationConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds * float64(time.Second))
}

// NewLogger creates a logger writing to w in LogFormat at LogLevel, tagged
// with the application identity.
func (c ApplicationConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}

	var handler slog.Handler
	if c.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", c.AppName),
		slog.String("version", c.AppVersion),
		slog.String("environment", c.Environment),
	)
}
