package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/exifmeta"
)

// report is the json/yaml form of one file's metadata.
type report struct {
	File      string      `json:"file" yaml:"file"`
	Format    string      `json:"format" yaml:"format"`
	ByteOrder string      `json:"byte_order" yaml:"byte_order"`
	Encoding  string      `json:"encoding" yaml:"encoding"`
	Width     int         `json:"width,omitempty" yaml:"width,omitempty"`
	Height    int         `json:"height,omitempty" yaml:"height,omitempty"`
	IFDs      []ifdReport `json:"ifds" yaml:"ifds"`
	Thumbnail int         `json:"thumbnail_bytes" yaml:"thumbnail_bytes"`
	Warnings  []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type ifdReport struct {
	IFD     string        `json:"ifd" yaml:"ifd"`
	Entries []entryReport `json:"entries" yaml:"entries"`
}

type entryReport struct {
	Tag        string `json:"tag" yaml:"tag"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string `json:"type" yaml:"type"`
	Components int    `json:"components" yaml:"components"`
	Value      string `json:"value" yaml:"value"`
}

func newReport(f *exifmeta.File) report {
	r := report{
		File:      f.Path,
		Format:    f.Format.String(),
		ByteOrder: f.Data.ByteOrder().String(),
		Encoding:  f.Data.Encoding().String(),
		Thumbnail: len(f.Data.Thumbnail()),
	}
	if w, h, ok := dimensions(f); ok {
		r.Width, r.Height = w, h
	}
	for c := range f.Data.Contents() {
		if c.IsEmpty() {
			continue
		}
		ir := ifdReport{IFD: c.IFD().String()}
		for e := range c.Entries() {
			ir.Entries = append(ir.Entries, entryReport{
				Tag:        e.Tag().String(),
				Name:       e.Tag().Name(c.IFD()),
				Type:       e.DataType().String(),
				Components: e.Components(),
				Value:      e.Text(),
			})
		}
		r.IFDs = append(r.IFDs, ir)
	}
	for _, w := range f.Warnings {
		r.Warnings = append(r.Warnings, w.String())
	}
	return r
}

func newDumpCommand(a *app) *cobra.Command {
	var output outputFormat
	cmd := &cobra.Command{
		Use:   "dump FILE...",
		Short: "Print all EXIF entries of one or more images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dump(cmd, args, output)
		},
	}
	addOutputFlag(cmd.Flags(), &output)
	return cmd
}

// dump opens the files concurrently and prints them in argument order.
func (a *app) dump(cmd *cobra.Command, paths []string, output outputFormat) error {
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())

	reports := make([]report, len(paths))
	texts := make([][]byte, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := a.open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			defer f.Close()

			a.logger.Debug("opened file", slog.String("path", path), slog.Int("entries", f.Data.Len()))

			if output == outputText {
				var buf bytes.Buffer
				if err := writeText(&buf, f); err != nil {
					return err
				}
				texts[i] = buf.Bytes()
				return nil
			}
			reports[i] = newReport(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		for i, t := range texts {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if _, err := w.Write(t); err != nil {
				return err
			}
		}
		return nil
	}
}

// writeText prints a file in the Data.Dump layout, followed by warnings.
func writeText(w io.Writer, f *exifmeta.File) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", f.Path, f.Format); err != nil {
		return err
	}
	if width, height, ok := dimensions(f); ok {
		if _, err := fmt.Fprintf(w, "Dimensions: %dx%d\n", width, height); err != nil {
			return err
		}
	}
	if err := f.Data.Dump(w); err != nil {
		return err
	}
	for _, warn := range f.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", warn); err != nil {
			return err
		}
	}
	return nil
}
