// Package cmd implements the vstream command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nuln/vstream"
	"github.com/nuln/vstream/internal/observability"
)

// Configuration keys.
const (
	keyBufferSize = "buffer_size"
	keyLogLevel   = "log.level"
	keyLogFormat  = "log.format"
)

// envPrefix prefixes environment overrides, e.g. VSTREAM_BUFFER_SIZE.
const envPrefix = "VSTREAM"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBufferSize, 1024)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, observability.FormatConsole)
}

// NewRootCommand builds the vstream command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	setDefaults(a.v)

	var configFile string

	root := &cobra.Command{
		Use:   "vstream",
		Short: "Read directories, files and remotes as uniform streams",
		Long: `vstream opens any supported source and reads it through one stream interface.

Sources:
  dir:<path>            directory listing, one entry per line
  <path>/               same, recognized by the trailing separator
  rclone:<remote:path>  directory listing of an rclone remote
  mem:<text>            literal in-memory content
  file:<path>, <path>   regular file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, configFile)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (YAML)")
	flags.Int("buffer-size", 1024, "Line buffer size in bytes (including the terminator)")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")
	flags.String("log-format", observability.FormatConsole, "Log format (console|json)")
	_ = a.v.BindPFlag(keyBufferSize, flags.Lookup("buffer-size"))
	_ = a.v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(keyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(newLsCommand(a), newCatCommand(a), newKindsCommand())
	return root
}

func (a *app) init(cmd *cobra.Command, configFile string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if configFile != "" {
		a.v.SetConfigFile(configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	logger, err := observability.NewLogger(a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	vstream.SetLogger(a.logger)
	return nil
}

func (a *app) bufferSize() (int, error) {
	n := a.v.GetInt(keyBufferSize)
	if n < 2 {
		return 0, fmt.Errorf("buffer size must be at least 2, got %d", n)
	}
	return n, nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
