package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"playcrypt/internal/shared"
)

// Setup creates config.toml when missing, then initializes the word cache
// database and runs migrations.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.config = config
	r.configPath = configPath

	r.logger.Info("initializing word cache database", "path", config.Cache.Path)

	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", config.Cache.Path)

	r.writePlain("✓ Configuration: %s\n", configPath)
	r.writePlain("✓ Word cache: %s\n", config.Cache.Path)
	r.writePlainln("Next: add your Spotify credentials to %s and run 'playcrypt auth login'.", configPath)

	return nil
}
