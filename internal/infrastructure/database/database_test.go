package database

import (
	"context"
	"errors"
	"testing"

	"rutvans_api/internal/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Run("defaults region", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), config.DynamoDBConfig{AccessKeyID: "local", SecretAccessKey: "local"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "us-east-1" {
			t.Fatalf("unexpected region: %q", cfg.Region)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("unexpected credentials error: %v", err)
		}
		if creds.AccessKeyID != "local" {
			t.Fatalf("unexpected access key: %q", creds.AccessKeyID)
		}
	})

	t.Run("client with local endpoint", func(t *testing.T) {
		client, err := ConnectDynamoDB(context.Background(), config.DynamoDBConfig{
			Region:          "us-west-2",
			Endpoint:        "http://localhost:8000",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		opts := client.Options()
		if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://localhost:8000" {
			t.Fatalf("unexpected base endpoint: %v", opts.BaseEndpoint)
		}
		if opts.Region != "us-west-2" {
			t.Fatalf("unexpected region: %q", opts.Region)
		}
	})
}

func TestConnectPostgres_MissingDSN(t *testing.T) {
	_, err := ConnectPostgres(context.Background(), config.PostgresConfig{})
	if !errors.Is(err, ErrMissingDSN) {
		t.Fatalf("expected ErrMissingDSN, got %v", err)
	}
}
