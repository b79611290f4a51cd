package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nuln/vstream"
)

func newLsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [source...]",
		Short: "List the entries of directory sources",
		Long: `List each source line by line. Without a source the current directory is listed.

Each line read is printed on its own output line. An entry name longer than
the buffer (--buffer-size minus one) is printed as several fragments.

Examples:
  vstream ls
  vstream ls ~/music/
  vstream ls dir:/usr/share/sounds rclone:gdrive:midi
  vstream ls --buffer-size 5 dir:.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"dir:"}
			}
			size, err := a.bufferSize()
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer func() { _ = out.Flush() }()

			for _, source := range args {
				if err := a.list(out, source, size, len(args) > 1); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) list(out *bufio.Writer, source string, size int, header bool) error {
	s, err := vstream.Open(source)
	if err != nil {
		a.logger.Error("open failed", zap.String("source", source), zap.Error(err))
		return err
	}
	defer func() { _ = s.Close() }()

	if header {
		name := source
		if dir, ok := vstream.DirName(s); ok {
			name = dir
		}
		if _, err := fmt.Fprintf(out, "%s:\n", name); err != nil {
			return err
		}
	}

	count := 0
	err = vstream.EachLine(s, size, func(line []byte) error {
		count++
		if _, err := out.Write(line); err != nil {
			return err
		}
		return out.WriteByte('\n')
	})
	if err != nil {
		a.logger.Error("read failed", zap.String("source", source), zap.Error(err))
		return err
	}

	a.logger.Debug("listed source",
		zap.String("source", source),
		zap.Stringer("kind", s.Kind()),
		zap.Int("lines", count),
		zap.Int64("bytes", s.Tell()))
	return nil
}
