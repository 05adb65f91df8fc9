package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	cenv "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	eberrors "github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/errors"
)

// Environment names.
const (
	Development = "development"
	Production  = "production"
)

// Short environment codes returned by NormalizeEnv.
const (
	ShortDev  = "dev"
	ShortProd = "prod"
)

// DefaultEnvFile is the dotenv file LoadEnv reads when given no paths.
const DefaultEnvFile = ".env"

// Env is a snapshot of environment variables keyed by upper-case name, so
// lookups ignore case.
type Env map[string]string

// Lookup returns the value of name, ignoring case.
func (e Env) Lookup(name string) (string, bool) {
	v, ok := e[strings.ToUpper(name)]
	return v, ok
}

// OSEnv snapshots the process environment.
func OSEnv() Env {
	m := make(Env)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[strings.ToUpper(k)] = v
	}
	return m
}

// LoadEnv snapshots the process environment layered over the given dotenv
// files (DefaultEnvFile when none are given). Missing files are skipped,
// later files override earlier ones, and process variables override them
// all. The process environment itself is not modified.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	m := make(Env)
	for _, path := range files {
		vars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &eberrors.ConfigurationError{
				Section: "env",
				Err:     fmt.Errorf("read %s: %w", path, err),
			}
		}
		for k, v := range vars {
			m[strings.ToUpper(k)] = v
		}
	}
	for k, v := range OSEnv() {
		m[k] = v
	}
	return m, nil
}

// MapEnv returns an Env backed by vars, for tests and embedding.
func MapEnv(vars map[string]string) Env {
	m := make(Env, len(vars))
	for k, v := range vars {
		m[strings.ToUpper(k)] = v
	}
	return m
}

// overridesFromEnv fills target, a struct of *string fields carrying env and
// json tags, from env and returns the set fields as an overrides map keyed
// by their json names. Unset and empty variables are left out.
func overridesFromEnv(env Env, target any) (map[string]any, error) {
	if env == nil {
		env = Env{}
	}
	if err := cenv.ParseWithOptions(target, cenv.Options{Environment: env}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	data, err := json.Marshal(target)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NormalizeEnv maps an environment name to its short code: "", development
// and dev give "dev"; production and prod give "prod". Matching ignores case
// and surrounding space. Anything else is treated as development.
func NormalizeEnv(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case Production, ShortProd:
		return ShortProd
	default:
		return ShortDev
	}
}

// normalizeEnvironment maps an environment name to Development or
// Production, falling back to Development.
func normalizeEnvironment(s string) string {
	if strings.ToLower(strings.TrimSpace(s)) == Production {
		return Production
	}
	return Development
}

// PrefixName returns "{env}-{name}". Names already carrying the prefix are
// returned unchanged, so PrefixName is idempotent. An empty name or env
// leaves the name as is.
func PrefixName(env, name string) string {
	if name == "" || env == "" {
		return name
	}
	prefix := env + "-"
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}

// BuildRoleARN formats an IAM role ARN.
func BuildRoleARN(accountID, roleName string) string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", accountID, roleName)
}
