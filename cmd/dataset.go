package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"playcrypt/internal/dataset"
	"playcrypt/internal/shared"
)

// DatasetFetch downloads the dataset CSV from the configured URL.
func (r *Runner) DatasetFetch(ctx context.Context, cmd *cli.Command) error {
	url := cmd.String("url")
	if url == "" {
		url = r.config.Dataset.URL
	}
	if url == "" {
		return fmt.Errorf("%w: no dataset URL configured, set dataset.url or pass --url", shared.ErrMissingArgument)
	}

	r.logger.Info("fetching dataset", "url", url, "path", r.config.Dataset.Path)

	count, err := dataset.NewFetcher().Download(ctx, url, r.config.Dataset.Path)
	if err != nil {
		return fmt.Errorf("dataset fetch failed: %w", err)
	}

	r.logger.Info("dataset saved", "records", count)

	r.writePlain("✓ Dataset saved to %s\n", r.config.Dataset.Path)
	r.writePlain("  Records: %d\n", count)

	return nil
}

// DatasetInfo shows the dataset location and record count.
func (r *Runner) DatasetInfo(ctx context.Context, cmd *cli.Command) error {
	source := dataset.NewCSVSource(r.config.Dataset.Path)

	records, err := source.Records(ctx)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	r.writePlain("Dataset: %s\n", r.config.Dataset.Path)
	r.writePlain("Records: %d\n", len(records))

	return nil
}
