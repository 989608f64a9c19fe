// Package cli implements the exifmeta command-line tool.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/simonhull/exifmeta"
)

// app holds state shared by all commands.
type app struct {
	logger  *slog.Logger
	verbose bool
}

// NewRootCommand builds the exifmeta command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	rootCmd := &cobra.Command{
		Use:     "exifmeta",
		Short:   "Read and write EXIF metadata in images",
		Version: exifmeta.GetVersionInfo().String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
			cmd.SilenceUsage = true
		},
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newDumpCommand(a),
		newGetCommand(a),
		newSetCommand(a),
		newRemoveCommand(a),
		newThumbnailCommand(a),
		newWatchCommand(a),
	)

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// open opens path with the command's logger attached.
func (a *app) open(path string, opts ...exifmeta.Option) (*exifmeta.File, error) {
	return exifmeta.Open(path, append([]exifmeta.Option{exifmeta.WithLogger(a.logger)}, opts...)...)
}
