// Package cmd wires the syllabus command tree.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/cli/board"
	"github.com/thenoetrevino/syllabus/internal/cli/browse"
	"github.com/thenoetrevino/syllabus/internal/cli/column"
	"github.com/thenoetrevino/syllabus/internal/cli/place"
	"github.com/thenoetrevino/syllabus/internal/cli/styles"
	"github.com/thenoetrevino/syllabus/internal/cli/subject"
	"github.com/thenoetrevino/syllabus/internal/cli/track"
	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/logging"
	"github.com/thenoetrevino/syllabus/internal/render"
)

// NewRootCmd builds the root command with every noun attached
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logCloser  io.Closer
	)

	rootCmd := &cobra.Command{
		Use:   "syllabus",
		Short: "Syllabus - plan a curriculum semester by semester",
		Long: `Syllabus lays subjects out on boards of semesters, checks that every
prerequisite is scheduled before the subject that needs it and walks study
tracks section by section.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			closer, err := logging.Init(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			logCloser = closer

			render.InitStyles(cfg.ColorScheme)
			styles.Init(cfg.ColorScheme)

			slog.Debug("command starting", "command", cmd.CommandPath())
			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path of the config file (default $XDG_CONFIG_HOME/syllabus/config.yaml)")

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(place.PlaceCmd())
	rootCmd.AddCommand(subject.SubjectCmd())
	rootCmd.AddCommand(track.TrackCmd())
	rootCmd.AddCommand(browse.BrowseCmd())

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Execute runs the command tree
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
