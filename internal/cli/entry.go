package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/simonhull/exifmeta"
)

func newGetCommand(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get FILE IFD TAG",
		Short: "Print one EXIF entry",
		Long: `Print one EXIF entry.

IFD is one of image (or 0), thumbnail (or 1), exif, gps and interop. TAG is a
tag name such as Orientation or a number such as 0x0112.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ifd, tag, err := parseIFDTag(args[1], args[2])
			if err != nil {
				return err
			}

			f, err := a.open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			e, err := f.Data.Entry(ifd, tag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !raw {
				_, err = fmt.Fprintln(out, e.Text())
				return err
			}
			v, err := e.Value(f.Data.ByteOrder())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%s %d %v\n", e.DataType(), e.Components(), v)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the data type, component count and decoded value")
	return cmd
}

func newSetCommand(a *app) *cobra.Command {
	var (
		dtFlag dataTypeFlag
		backup string
	)
	cmd := &cobra.Command{
		Use:   "set FILE IFD TAG VALUE...",
		Short: "Set one EXIF entry and save the file",
		Long: `Set one EXIF entry and save the file.

The data type defaults to the first type the tag table allows for TAG.
Rationals are written num/den, undefined data as text or hex:0102...`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ifd, tag, err := parseIFDTag(args[1], args[2])
			if err != nil {
				return err
			}

			dt := dtFlag.dt
			if !dtFlag.set {
				info, ok := exifmeta.LookupTag(ifd, tag)
				if !ok || len(info.Formats) == 0 {
					return fmt.Errorf("tag %s is not in the tag table; pass --type", tag)
				}
				dt = info.Formats[0]
			}

			v, err := exifmeta.ParseValue(dt, args[3:])
			if err != nil {
				return err
			}

			f, err := a.open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := f.Data.Set(ifd, tag, v); err != nil {
				return err
			}

			var opts []exifmeta.SaveOption
			if backup != "" {
				opts = append(opts, exifmeta.WithBackup(backup))
			}
			if err := f.Save(opts...); err != nil {
				return err
			}
			a.logger.Debug("entry set", slog.String("file", f.Path), slog.String("ifd", ifd.String()), slog.String("tag", tag.String()))
			return nil
		},
	}
	cmd.Flags().Var(&dtFlag, "type", "Data type, e.g. short, long, rational, ascii, undefined")
	cmd.Flags().StringVar(&backup, "backup", "", "Keep the original file with this suffix, e.g. .bak")
	return cmd
}

func newRemoveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm FILE IFD TAG",
		Short:   "Remove one EXIF entry and save the file",
		Aliases: []string{"remove"},
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ifd, tag, err := parseIFDTag(args[1], args[2])
			if err != nil {
				return err
			}

			f, err := a.open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			removed, err := f.Data.Remove(ifd, tag)
			if err != nil {
				return err
			}
			if !removed {
				return &exifmeta.EntryNotFoundError{IFD: ifd, Tag: tag}
			}
			return f.Save()
		},
	}
	return cmd
}
