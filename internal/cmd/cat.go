package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nuln/vstream"
)

func newCatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <source...>",
		Short: "Copy sources to standard output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := a.bufferSize()
			if err != nil {
				return err
			}
			buf := make([]byte, size)
			for _, source := range args {
				s, err := vstream.Open(source)
				if err != nil {
					return err
				}
				// Wrapped so the copy goes through buf, one Read per line for directories.
				n, err := io.CopyBuffer(struct{ io.Writer }{cmd.OutOrStdout()}, struct{ io.Reader }{s}, buf)
				_ = s.Close()
				if err != nil {
					return fmt.Errorf("read %s: %w", source, err)
				}
				a.logger.Debug("copied source", zap.String("source", source), zap.Int64("bytes", n))
			}
			return nil
		},
	}
}

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Print registered stream kinds in recognition order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, m := range vstream.Modules() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d\n", m.Kind, m.Priority); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
