package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/veedubyou/track-splitter/src/cli/internal/inputs"
)

func newListCommand(dirs *dirFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tracks in the input directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := inputs.List(dirs.input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintf(out, "No audio files found in %s\n", dirs.input)
				return nil
			}

			for i, file := range files {
				fmt.Fprintf(out, "%3d. %s (%s)\n", i+1, file.Name, humanize.Bytes(uint64(file.Size)))
			}

			return nil
		},
	}
}
