package config_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/config"
)

func TestNewAWSConfig_Defaults(t *testing.T) {
	cfg := config.NewAWSConfig(nil)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "EventBridgeLogDeploymentRole", cfg.DeploymentRoleName)
	assert.Equal(t, "EventBridgeLogExecutionRole", cfg.ExecutionRoleName)
	assert.Equal(t, "development-event-bridge-log-bus", cfg.EventBridgeBusName)
	assert.Equal(t, "ecommerce.platform", cfg.EventBridgeSource)
	assert.Equal(t, "development-event-bridge-log-events", cfg.DynamoDBTableName)
	assert.Equal(t, "development-events", cfg.OpenSearchIndex)
	assert.Empty(t, cfg.OpenSearchEndpoint)
	assert.Empty(t, cfg.AccountID())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "dev", cfg.ShortEnv())
}

func TestNewAWSConfig_Region(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"empty", "", "us-east-1"},
		{"blank", "   ", "us-east-1"},
		{"nil", nil, "us-east-1"},
		{"wrong type", 42, "us-east-1"},
		{"set", "eu-west-1", "eu-west-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewAWSConfig(map[string]any{"region": tt.value})
			assert.Equal(t, tt.want, cfg.Region)
		})
	}
}

func TestNewAWSConfig_Environment(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{"production", "production"},
		{"PRODUCTION", "production"},
		{"development", "development"},
		{"staging", "development"},
		{"", "development"},
		{7, "development"},
	}

	for _, tt := range tests {
		cfg := config.NewAWSConfig(map[string]any{"environment": tt.input})
		assert.Equal(t, tt.want, cfg.Environment, "input %v", tt.input)
	}
}

func TestNewAWSConfig_ResourcePrefix(t *testing.T) {
	cfg := config.NewAWSConfig(map[string]any{
		"environment":          "production",
		"eventbridge_bus_name": "orders-bus",
		"dynamodb_table_name":  "production-orders",
	})

	assert.Equal(t, "production-orders-bus", cfg.EventBridgeBusName)
	assert.Equal(t, "production-orders", cfg.DynamoDBTableName, "already prefixed")
	assert.Equal(t, "production-events", cfg.OpenSearchIndex)
	assert.Equal(t, "ecommerce.platform", cfg.EventBridgeSource, "source is not prefixed")

	t.Run("rebuilding is stable", func(t *testing.T) {
		again := config.NewAWSConfig(map[string]any{
			"environment":          cfg.Environment,
			"eventbridge_bus_name": cfg.EventBridgeBusName,
			"dynamodb_table_name":  cfg.DynamoDBTableName,
			"opensearch_index":     cfg.OpenSearchIndex,
		})
		assert.Equal(t, cfg, again)
	})

	t.Run("blank name falls back to default", func(t *testing.T) {
		cfg := config.NewAWSConfig(map[string]any{"eventbridge_bus_name": ""})
		assert.Equal(t, "development-event-bridge-log-bus", cfg.EventBridgeBusName)
	})
}

func TestAWSConfig_RoleARNs(t *testing.T) {
	t.Run("no account", func(t *testing.T) {
		cfg := config.NewAWSConfig(map[string]any{"prod_account_id": "999999999999"})
		assert.Empty(t, cfg.AccountID())
		assert.Empty(t, cfg.DeploymentRoleARN())
		assert.Empty(t, cfg.ExecutionRoleARN())
	})

	t.Run("development account", func(t *testing.T) {
		cfg := config.NewAWSConfig(map[string]any{
			"dev_account_id":  "111111111111",
			"prod_account_id": "999999999999",
		})
		assert.Equal(t, "111111111111", cfg.AccountID())
		assert.Equal(t, "arn:aws:iam::111111111111:role/EventBridgeLogDeploymentRole", cfg.DeploymentRoleARN())
		assert.Equal(t, "arn:aws:iam::111111111111:role/EventBridgeLogExecutionRole", cfg.ExecutionRoleARN())
	})

	t.Run("production account", func(t *testing.T) {
		cfg := config.NewAWSConfig(map[string]any{
			"environment":          "production",
			"dev_account_id":       "111111111111",
			"prod_account_id":      "999999999999",
			"deployment_role_name": "Deployer",
		})
		assert.Equal(t, "999999999999", cfg.AccountID())
		assert.Equal(t, "arn:aws:iam::999999999999:role/Deployer", cfg.DeploymentRoleARN())
	})
}

func TestAWSConfigFromEnv(t *testing.T) {
	cfg := config.AWSConfigFromEnv(config.MapEnv(map[string]string{
		"ENVIRONMENT":           "production",
		"AWS_REGION":            "ap-southeast-2",
		"AWS_PROD_ACCOUNT_ID":   "999999999999",
		"AWS_ACCESS_KEY_ID":     "AKIAEXAMPLE",
		"AWS_SECRET_ACCESS_KEY": "secret",
		"EVENTBRIDGE_BUS_NAME":  "bus",
		"OPENSEARCH_ENDPOINT":   "https://search.example.com",
	}))

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "ap-southeast-2", cfg.Region)
	assert.Equal(t, "production-bus", cfg.EventBridgeBusName)
	assert.Equal(t, "https://search.example.com", cfg.OpenSearchEndpoint)
	assert.True(t, cfg.UsesStaticCredentials())
	assert.Equal(t, "arn:aws:iam::999999999999:role/EventBridgeLogExecutionRole", cfg.ExecutionRoleARN())

	t.Run("nil env gives defaults", func(t *testing.T) {
		assert.Equal(t, config.NewAWSConfig(nil), config.AWSConfigFromEnv(nil))
	})

	t.Run("process environment is not consulted", func(t *testing.T) {
		t.Setenv("AWS_REGION", "sa-east-1")
		t.Setenv("ENVIRONMENT", "production")
		cfg := config.AWSConfigFromEnv(config.MapEnv(nil))
		assert.Equal(t, "us-east-1", cfg.Region)
		assert.False(t, cfg.IsProduction())
	})
}

func TestAWSConfig_LogValueRedactsSecrets(t *testing.T) {
	cfg := config.NewAWSConfig(map[string]any{
		"access_key_id":     "AKIAEXAMPLE",
		"secret_access_key": "super-secret",
		"session_token":     "token-value",
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("aws", slog.Any("aws", cfg))

	out := buf.String()
	assert.Contains(t, out, "AKIAEXAMPLE")
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, "super-secret")
	assert.NotContains(t, out, "token-value")
}
