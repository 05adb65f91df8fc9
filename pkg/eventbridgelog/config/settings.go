package config

import (
	"log/slog"
)

// Settings is the root settings object a service reads at startup.
type Settings struct {
	AWS AWSConfig
	App ApplicationConfig
}

// BuildSettings builds Settings purely from the given overrides and
// defaults, never consulting the process environment. Either map may be nil.
func BuildSettings(aws, app map[string]any) (Settings, error) {
	appCfg, err := NewApplicationConfig(app)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		AWS: NewAWSConfig(aws),
		App: appCfg,
	}, nil
}

// SettingsFromEnv builds Settings from environment variables.
func SettingsFromEnv(env Env) (Settings, error) {
	appCfg, err := ApplicationConfigFromEnv(env)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		AWS: AWSConfigFromEnv(env),
		App: appCfg,
	}, nil
}

// LogValue implements slog.LogValuer.
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("aws", s.AWS),
		slog.Group("app",
			slog.String("app_name", s.App.AppName),
			slog.String("app_version", s.App.AppVersion),
			slog.String("environment", s.App.Environment),
			slog.Bool("debug", s.App.Debug),
			slog.String("log_level", s.App.LogLevel),
			slog.String("log_format", s.App.LogFormat),
			slog.Int("batch_size", s.App.BatchSize),
			slog.Int("max_retries", s.App.MaxRetries),
			slog.Float64("retry_delay_seconds", s.App.RetryDelaySeconds),
		),
	)
}
