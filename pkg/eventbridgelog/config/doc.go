// Package config provides the settings values shared by services on the
// platform: AWS account and resource naming, and application runtime
// behavior.
//
// Two construction paths exist and are never merged implicitly:
//
//	// Overrides plus defaults; the process environment is not read.
//	s, err := config.BuildSettings(map[string]any{"region": "eu-west-1"}, nil)
//
//	// Environment variables (AWS_REGION, LOG_LEVEL, PRODUCER_BATCH_SIZE, ...).
//	s, err := config.SettingsFromEnv(config.OSEnv())
//
//	// The same, with variables from a .env file underneath the process environment.
//	env, err := config.LoadEnv(config.DefaultEnvFile)
//	s, err = config.SettingsFromEnv(env)
//
// Settings can also be read from a YAML or JSON file with LoadSettingsFile,
// and a Watcher keeps them current as the file changes.
//
// AWSConfig never fails: unknown environments become development and
// resource names are prefixed with the environment. ApplicationConfig is
// strict and returns a *errors.ConfigurationError naming every bad field.
//
// NormalizeEnv, PrefixName and BuildRoleARN are the naming primitives the
// AWS settings are built on; they are exported for services that name their
// own resources.
package config
