package main

import (
	"context"
	"fmt"

	"housingready/internal/db"
	"housingready/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig(prefix string) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL")
	}

	if c.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}

	return c, nil
}

func newLogger(c *types.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// openStore connects to DATABASE_URL and makes sure both tables exist.
func openStore(ctx context.Context, c *types.Config) (*db.DB, error) {
	d, err := db.Connect(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := d.EnsureSchema(ctx); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return d, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}
