package fstream

import (
	"fmt"

	"github.com/spf13/cobra"

	"inputfile/pkg/inputfile"
)

func newNameCmd() *cobra.Command {
	var sf sourceFlags

	cmd := &cobra.Command{
		Use:   "name [path]",
		Short: "Print the filename inferred for a source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, plat, err := setup()
			if err != nil {
				return err
			}

			f, err := buildInput(args, sf, inputfile.WithPlatform(plat))
			if err != nil {
				return err
			}

			// Empty line when nothing could be inferred.
			fmt.Fprintln(cmd.OutOrStdout(), f.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&sf.url, "url", "", "infer from a URL")
	cmd.Flags().StringVar(&sf.base64, "base64", "", "infer from a base64 string")
	cmd.Flags().StringVar(&sf.name, "name", "", "override the inferred filename")

	return cmd
}
