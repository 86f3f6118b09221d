// Package fstream implements the fstream command line tool, a thin consumer
// of pkg/inputfile that streams any supported file source to a local
// destination.
package fstream

import (
	"github.com/spf13/cobra"
)

var configPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fstream",
		Short: "Stream heterogeneous file sources",
		Long: `fstream reads a file described as a local path, a remote URL, a base64
blob, or standard input, and streams its content to stdout or a file.

Examples:
  fstream cat report.csv
  fstream cat --url https://example.com/data/x.bin --out x.bin
  fstream cat --base64 aGVsbG8=
  fstream name --url https://example.com/data/x.bin`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")

	cmd.AddCommand(newCatCmd())
	cmd.AddCommand(newNameCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
