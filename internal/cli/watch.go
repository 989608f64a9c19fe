package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/simonhull/exifmeta"
)

// defaultWatchDebounce is how long a file must stay quiet before it is read.
const defaultWatchDebounce = 500 * time.Millisecond

func newWatchCommand(a *app) *cobra.Command {
	var (
		output   outputFormat
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Dump the EXIF data of images as they are created or written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchDir(cmd.Context(), args[0], debounce, a.logger, func(path string) {
				if err := a.dump(cmd, []string{path}, output); err != nil {
					a.logger.Warn("dump failed", slog.String("path", path), slog.Any("error", err))
				}
			})
		},
	}
	addOutputFlag(cmd.Flags(), &output)
	cmd.Flags().DurationVar(&debounce, "debounce", defaultWatchDebounce, "Quiet period before a changed file is read")
	return cmd
}

// isImage reports whether path has an extension of a supported format.
func isImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []exifmeta.Format{exifmeta.FormatJPEG, exifmeta.FormatPNG, exifmeta.FormatTIFF, exifmeta.FormatWebP} {
		if slices.Contains(f.Extensions(), ext) {
			return true
		}
	}
	return false
}

// watchDir calls onChange for each image in dir that is created or
// written, once it has been quiet for debounce. It returns when ctx is
// done.
func watchDir(ctx context.Context, dir string, debounce time.Duration, logger *slog.Logger, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}

	logger.Info("watching directory", slog.String("dir", dir))

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !isImage(event.Name) {
				continue
			}
			// Our own saves go through hidden temp files and never match
			if strings.HasPrefix(filepath.Base(event.Name), ".") {
				continue
			}
			logger.Debug("file event", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			pending[event.Name] = time.Now().Add(debounce)

		case now := <-ticker.C:
			for path, due := range pending {
				if now.Before(due) {
					continue
				}
				delete(pending, path)
				onChange(path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.Any("error", err))
		}
	}
}
