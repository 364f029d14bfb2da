package main

import (
	"fmt"
	"time"

	"housingready/internal/seed"
	"housingready/internal/store"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with demo clients for local development",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "documents",
			Usage: "Attach an intake note document to each seeded client",
			Value: true,
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(cfg)
		ctx := c.Context

		database, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		logger.Info("Connected to database")

		var docs seed.DocumentCreator
		if c.Bool("documents") {
			docs = store.NewDocumentRepository(database)
		}

		created, err := seed.SeedClients(ctx, logger, store.NewClientRepository(database), docs, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to seed clients: %w", err)
		}

		fmt.Printf("Demo clients seeded: %d created\n", created)
		return nil
	},
}
