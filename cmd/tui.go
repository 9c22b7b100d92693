package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"playcrypt/internal/codec"
	"playcrypt/internal/shared"
	"playcrypt/internal/ui"
)

// TUI launches the interactive terminal UI for browsing and decoding
// playlists.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	srv, err := r.authenticatedService(ctx)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/playcrypt-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	defaults := codec.DefaultOptions(codec.FirstWord)
	if r.config.Encoding.FirstIndex > 0 || r.config.Encoding.SecondIndex > 0 {
		defaults.FirstIndex = r.config.Encoding.FirstIndex
		defaults.SecondIndex = r.config.Encoding.SecondIndex
	}

	model := ui.NewModel(ctx, srv, codec.New(nil, nil), defaults)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if model.Err() != nil {
		return model.Err()
	}

	return nil
}
