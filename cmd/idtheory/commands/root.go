package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/cmd/idtheory/internal/config"
	"github.com/theory-cloud/idtheory/pkg/logger"
	"github.com/theory-cloud/idtheory/pkg/observability"
	obszap "github.com/theory-cloud/idtheory/pkg/observability/zap"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// state is shared by the subcommands of one root command.
type state struct {
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool

	cfg config.Config
	log observability.StructuredLogger
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	st := &state{cfg: config.Default(), log: observability.NewNoOpLogger()}

	root := &cobra.Command{
		Use:   "idtheory",
		Short: "Convert and generate opaque identifiers",
		Long: `idtheory - convert identifiers between hex, UUID, radix strings and integers,
and generate ObjectId-style, compact 64-bit, UUID and ULID identifiers.

Radix strings default to the legacy 60-symbol alphabet. Use --alphabet with a
literal alphabet or one of the names listed by 'idtheory alphabets'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.init(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return st.log.Flush(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&st.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&st.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&st.logFormat, "log-format", "", "log format (console, json)")
	flags.BoolVarP(&st.verbose, "verbose", "v", false, "verbose output (debug logging)")

	root.AddCommand(
		newConvertCommand(st),
		newGenerateCommand(st),
		newAlphabetsCommand(),
		newVersionCommand(),
	)
	return root
}

func (st *state) init(stderr io.Writer) error {
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	if st.logLevel != "" {
		cfg.Log.Level = st.logLevel
	}
	if st.logFormat != "" {
		cfg.Log.Format = st.logFormat
	}
	if st.verbose {
		cfg.Log.Level = "debug"
	}

	factory := obszap.NewZapLoggerFactory(obszap.WithOutput(stderr))
	log, err := factory.CreateConsoleLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger.SetLogger(log)

	st.cfg = cfg
	st.log = log
	return nil
}

// identifier builds an Identifier from config, with per-command overrides.
func (st *state) identifier(opts ...idtheory.Option) idtheory.Identifier {
	all := append(st.cfg.Options(), idtheory.WithLogger(st.log))
	return idtheory.New(append(all, opts...)...)
}
