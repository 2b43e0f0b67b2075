package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/tdx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes the default config file and initializes the sync journal.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		r.logger.Warn("config file not created", "error", err)
	} else {
		r.writePlain("wrote %s\n", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(r.config.StatePath()), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	_, db, err := r.journal()
	if err != nil {
		return err
	}
	defer db.Close()

	r.writePlain("journal ready at %s\n", r.config.JournalPath())
	r.writePlain("state file at %s\n", r.config.StatePath())

	return nil
}
