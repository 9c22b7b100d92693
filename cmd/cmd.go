// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// configFlag is shared by every command that reads config.toml.
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// schemeFlag selects the encoding scheme.
func schemeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "scheme",
		Aliases: []string{"s"},
		Usage:   "Encoding scheme: word (first word) or hex",
		Value:   "word",
	}
}

// indexFlags expose the hex scheme's track id character positions.
func indexFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "first",
			Usage: "First track id character position (0-21), hex scheme only",
			Value: -1,
		},
		&cli.IntFlag{
			Name:  "second",
			Usage: "Second track id character position (0-21), hex scheme only",
			Value: -1,
		},
	}
}

// setupCommand handles config creation and cache database migrations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml and initialize the word cache database",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// authCommand handles Spotify authentication.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Spotify authentication",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Authenticate with Spotify using OAuth2",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show the authenticated user, if any",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthStatus,
			},
		},
	}
}

// encodeCommand hides a message in a playlist.
func encodeCommand(r *Runner) *cli.Command {
	flags := []cli.Flag{
		configFlag(),
		schemeFlag(),
		&cli.StringFlag{
			Name:    "playlist",
			Aliases: []string{"p"},
			Usage:   "Target playlist ID or share URL",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the encoded track list without touching the playlist",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
	flags = append(flags, indexFlags()...)

	return &cli.Command{
		Name:  "encode",
		Usage: "Encode a message as an ordered track list and write it to a playlist",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "message"},
		},
		Flags:  flags,
		Action: r.Encode,
	}
}

// decodeCommand recovers a message from a playlist.
func decodeCommand(r *Runner) *cli.Command {
	flags := []cli.Flag{
		configFlag(),
		schemeFlag(),
		&cli.StringFlag{
			Name:     "playlist",
			Aliases:  []string{"p"},
			Usage:    "Playlist ID or share URL to decode",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
	flags = append(flags, indexFlags()...)

	return &cli.Command{
		Name:   "decode",
		Usage:  "Read a playlist and recover the hidden message",
		Flags:  flags,
		Action: r.Decode,
	}
}

// playlistsCommand lists the user's playlists.
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlists",
		Usage: "List Spotify playlists",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of playlists to return",
				Value: 50,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Playlists,
	}
}

// cacheCommand inspects and manages the word cache.
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and manage the word cache",
		Commands: []*cli.Command{
			{
				Name:  "words",
				Usage: "List cached words",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CacheWords,
			},
			{
				Name:   "clear",
				Usage:  "Remove every cached word",
				Flags:  []cli.Flag{configFlag()},
				Action: r.CacheClear,
			},
		},
	}
}

// datasetCommand manages the offline track dataset for the hex scheme.
func datasetCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "dataset",
		Usage: "Manage the offline track dataset used by the hex scheme",
		Commands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "Download the dataset CSV from the configured URL",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "url",
						Usage: "Override the dataset URL from config",
					},
				},
				Action: r.DatasetFetch,
			},
			{
				Name:   "info",
				Usage:  "Show dataset location and record count",
				Flags:  []cli.Flag{configFlag()},
				Action: r.DatasetInfo,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive decoding.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing and decoding playlists",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
