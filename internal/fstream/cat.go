package fstream

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"inputfile/pkg/inputfile"
	"inputfile/pkg/logger"
)

func newCatCmd() *cobra.Command {
	var (
		sf  sourceFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "cat [path]",
		Short: "Stream a file source to stdout or a file",
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

			rc, err := f.Open(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to open source: %w", err)
			}
			defer rc.Close()

			var w io.Writer = os.Stdout
			var dst *os.File
			if out != "" {
				dst, err = os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				w = dst
			}

			n, err := io.Copy(w, rc)
			if err != nil {
				if dst != nil {
					_ = dst.Close()
				}
				return fmt.Errorf("copy failed after %d bytes: %w", n, err)
			}
			// A failed close is a failed write; it must not report success.
			if dst != nil {
				if err := dst.Close(); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
			}

			logger.Debug("source streamed", "bytes", n, "name", f.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&sf.url, "url", "", "read the source from a URL (file:// reads local disk)")
	cmd.Flags().StringVar(&sf.base64, "base64", "", "read the source from a base64 string")
	cmd.Flags().StringVar(&sf.name, "name", "", "override the inferred filename")
	cmd.Flags().StringVar(&out, "out", "", "write to a file instead of stdout")

	return cmd
}
