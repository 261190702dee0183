package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "key" || creds.SecretAccessKey != "secret" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestClientOptionsFromEnv(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "")
	if opts := ClientOptionsFromEnv(); len(opts) != 0 {
		t.Fatalf("expected no options without endpoint")
	}

	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	opts := ClientOptionsFromEnv()
	if len(opts) != 1 {
		t.Fatalf("expected one option, got %d", len(opts))
	}
	var o dynamodb.Options
	opts[0](&o)
	if aws.ToString(o.BaseEndpoint) != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint %q", aws.ToString(o.BaseEndpoint))
	}
}
