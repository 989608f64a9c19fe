package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newThumbnailCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thumbnail FILE OUT",
		Short: "Extract the embedded thumbnail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			thumb := f.Data.Thumbnail()
			if len(thumb) == 0 {
				return errors.New("no thumbnail")
			}
			if err := os.WriteFile(args[1], thumb, 0o644); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(thumb), args[1])
			return err
		},
	}
	return cmd
}
