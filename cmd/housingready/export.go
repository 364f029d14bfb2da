package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"housingready/internal/export"
	"housingready/internal/storage"
	"housingready/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/urfave/cli/v2"
)

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Export the client list as CSV or XLSX",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "csv or xlsx",
			Value:   string(export.FormatCSV),
		},
		&cli.StringFlag{
			Name:  "search",
			Usage: "Only clients whose name, clarity id or worker contains this text",
		},
		&cli.StringFlag{
			Name:  "housed",
			Usage: "all, housed or not-housed",
			Value: string(export.HousedAll),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Directory to write the export into; - writes to stdout",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "bucket",
			Usage: "Also upload the export to this S3 bucket (defaults to EXPORT_BUCKET)",
		},
	},
	Action: runExport,
}

func runExport(c *cli.Context) error {
	cfg, err := loadConfig(c.String("env-prefix"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg)
	ctx := c.Context

	format, err := export.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	filter := export.Filter{
		Search: c.String("search"),
		Housed: export.HousedFilter(c.String("housed")),
	}
	if err := filter.Validate(); err != nil {
		return err
	}

	database, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	clients, err := store.NewClientRepository(database).Clients(ctx)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	selected := filter.Apply(clients)

	var buf bytes.Buffer
	if err := export.Write(&buf, format, selected); err != nil {
		return fmt.Errorf("failed to render export: %w", err)
	}

	fileName := export.FileName(time.Now().UTC(), format)

	logger.WithField("filter", filter.String()).WithField("clients", len(selected)).Info("export rendered")

	output := c.String("output")
	if output == "-" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
	} else {
		target := filepath.Join(output, fileName)
		if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		logger.WithField("path", target).Info("export written")
	}

	bucket := c.String("bucket")
	if bucket == "" {
		bucket = cfg.ExportBucket
	}
	if bucket == "" {
		return nil
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	archive := storage.NewExportArchive(s3.NewFromConfig(awsConfig), bucket, cfg.ExportPrefix)

	key, err := archive.Upload(ctx, fileName, buf.Bytes(), format.ContentType())
	if err != nil {
		return err
	}

	logger.WithField("location", archive.URI(key)).Info("export uploaded")

	return nil
}
