package config

import (
	"log/slog"
	"strings"
)

// AWS defaults.
const (
	DefaultRegion             = "us-east-1"
	DefaultDeploymentRoleName = "EventBridgeLogDeploymentRole"
	DefaultExecutionRoleName  = "EventBridgeLogExecutionRole"
	DefaultBusName            = "event-bridge-log-bus"
	DefaultEventSource        = "ecommerce.platform"
	DefaultTableName          = "event-bridge-log-events"
	DefaultIndexName          = "events"
)

// awsEnv binds AWSConfig overrides to environment variables.
type awsEnv struct {
	Environment        *string `env:"ENVIRONMENT" json:"environment,omitempty"`
	Region             *string `env:"AWS_REGION" json:"region,omitempty"`
	DevAccountID       *string `env:"AWS_DEV_ACCOUNT_ID" json:"dev_account_id,omitempty"`
	ProdAccountID      *string `env:"AWS_PROD_ACCOUNT_ID" json:"prod_account_id,omitempty"`
	DeploymentRoleName *string `env:"AWS_DEPLOYMENT_ROLE_NAME" json:"deployment_role_name,omitempty"`
	ExecutionRoleName  *string `env:"AWS_EXECUTION_ROLE_NAME" json:"execution_role_name,omitempty"`
	Profile            *string `env:"AWS_PROFILE" json:"profile,omitempty"`
	AccessKeyID        *string `env:"AWS_ACCESS_KEY_ID" json:"access_key_id,omitempty"`
	SecretAccessKey    *string `env:"AWS_SECRET_ACCESS_KEY" json:"secret_access_key,omitempty"`
	SessionToken       *string `env:"AWS_SESSION_TOKEN" json:"session_token,omitempty"`
	EventBridgeBusName *string `env:"EVENTBRIDGE_BUS_NAME" json:"eventbridge_bus_name,omitempty"`
	EventBridgeSource  *string `env:"EVENTBRIDGE_SOURCE" json:"eventbridge_source,omitempty"`
	DynamoDBTableName  *string `env:"DYNAMODB_TABLE_NAME" json:"dynamodb_table_name,omitempty"`
	OpenSearchEndpoint *string `env:"OPENSEARCH_ENDPOINT" json:"opensearch_endpoint,omitempty"`
	OpenSearchIndex    *string `env:"OPENSEARCH_INDEX" json:"opensearch_index,omitempty"`
}

// AWSConfig holds account, credential and resource naming settings for one
// environment. It is a value: construct it with NewAWSConfig or
// AWSConfigFromEnv and pass it around by copy.
//
// Construction never fails. An unknown environment becomes development, a
// blank region becomes us-east-1, and the bus, table and index names always
// carry the "{environment}-" prefix.
type AWSConfig struct {
	Environment string
	Region      string

	DevAccountID  string
	ProdAccountID string

	DeploymentRoleName string
	ExecutionRoleName  string

	// Profile names a local AWS CLI profile.
	Profile string

	// Static credentials. Prefer roles outside local development.
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string

	EventBridgeBusName string
	EventBridgeSource  string
	DynamoDBTableName  string
	OpenSearchEndpoint string
	OpenSearchIndex    string
}

// NewAWSConfig builds an AWSConfig from snake_case overrides and defaults.
// It never reads the process environment.
func NewAWSConfig(overrides map[string]any) AWSConfig {
	v := NewValues(overrides)
	env := normalizeEnvironment(v.String("environment", Development))

	return AWSConfig{
		Environment:        env,
		Region:             nonBlank(v.String("region", ""), DefaultRegion),
		DevAccountID:       strings.TrimSpace(v.String("dev_account_id", "")),
		ProdAccountID:      strings.TrimSpace(v.String("prod_account_id", "")),
		DeploymentRoleName: nonBlank(v.String("deployment_role_name", ""), DefaultDeploymentRoleName),
		ExecutionRoleName:  nonBlank(v.String("execution_role_name", ""), DefaultExecutionRoleName),
		Profile:            v.String("profile", ""),
		AccessKeyID:        v.String("access_key_id", ""),
		SecretAccessKey:    v.String("secret_access_key", ""),
		SessionToken:       v.String("session_token", ""),
		EventBridgeBusName: PrefixName(env, nonBlank(v.String("eventbridge_bus_name", ""), DefaultBusName)),
		EventBridgeSource:  nonBlank(v.String("eventbridge_source", ""), DefaultEventSource),
		DynamoDBTableName:  PrefixName(env, nonBlank(v.String("dynamodb_table_name", ""), DefaultTableName)),
		OpenSearchEndpoint: v.String("opensearch_endpoint", ""),
		OpenSearchIndex:    PrefixName(env, nonBlank(v.String("opensearch_index", ""), DefaultIndexName)),
	}
}

// AWSConfigFromEnv builds an AWSConfig from environment variables.
func AWSConfigFromEnv(env Env) AWSConfig {
	// All fields are strings, so binding cannot fail.
	overrides, _ := overridesFromEnv(env, &awsEnv{})
	return NewAWSConfig(overrides)
}

// IsProduction reports whether the config targets production.
func (c AWSConfig) IsProduction() bool {
	return c.Environment == Production
}

// ShortEnv returns the short environment code ("dev" or "prod").
func (c AWSConfig) ShortEnv() string {
	return NormalizeEnv(c.Environment)
}

// AccountID returns the account for the current environment, or "" when
// none is configured.
func (c AWSConfig) AccountID() string {
	if c.IsProduction() {
		return c.ProdAccountID
	}
	return c.DevAccountID
}

// DeploymentRoleARN returns the cross-account deployment role ARN, or ""
// when no account is configured.
func (c AWSConfig) DeploymentRoleARN() string {
	return c.roleARN(c.DeploymentRoleName)
}

// ExecutionRoleARN returns the function execution role ARN, or "" when no
// account is configured.
func (c AWSConfig) ExecutionRoleARN() string {
	return c.roleARN(c.ExecutionRoleName)
}

func (c AWSConfig) roleARN(role string) string {
	account := c.AccountID()
	if account == "" {
		return ""
	}
	return BuildRoleARN(account, role)
}

// UsesStaticCredentials reports whether an access key pair is configured.
func (c AWSConfig) UsesStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// LogValue implements slog.LogValuer. Secrets are redacted.
func (c AWSConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("environment", c.Environment),
		slog.String("region", c.Region),
		slog.String("account_id", c.AccountID()),
		slog.String("profile", c.Profile),
		slog.String("access_key_id", c.AccessKeyID),
		slog.String("secret_access_key", redact(c.SecretAccessKey)),
		slog.String("session_token", redact(c.SessionToken)),
		slog.String("eventbridge_bus_name", c.EventBridgeBusName),
		slog.String("eventbridge_source", c.EventBridgeSource),
		slog.String("dynamodb_table_name", c.DynamoDBTableName),
		slog.String("opensearch_endpoint", c.OpenSearchEndpoint),
		slog.String("opensearch_index", c.OpenSearchIndex),
	)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "[REDACTED]"
}

func nonBlank(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
