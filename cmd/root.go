package cmd

import (
	"logmerge/pkg/config"
	"logmerge/pkg/logging"
	"logmerge/pkg/version"

	"github.com/spf13/cobra"
)

// Flag values for the root command. Unset flags fall back to the config file.
var (
	configPath     string
	force          bool
	debug          bool
	timestampField string
	outputName     string

	// runConfig is the resolved configuration of the current invocation.
	runConfig *config.Config
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "logmerge [flags] <INPUT A> <INPUT B> <OUTPUT DIR>",
	Short: "logmerge merges two timestamp-sorted JSON line logs",
	Long: `logmerge merges two newline-delimited JSON logs, each already sorted by a
timestamp field, into a single sorted log written to <OUTPUT DIR>/merge_logs.jsonl.

Inputs are streamed; neither is loaded into memory. On equal timestamps the
record from <INPUT A> is written first.`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	PreRunE:      setup,
	RunE:         runMerge,
}

func init() {
	flags := RootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML config file (default ./"+config.DefaultFileName+" if present)")
	flags.BoolVarP(&force, "force", "f", false, "Remove the output directory first if it already exists")
	flags.BoolVar(&debug, "debug", false, "Enable development logging")
	flags.StringVar(&timestampField, "timestamp-field", config.DefaultTimestampField, "Record key holding the timestamp")
	flags.StringVar(&outputName, "output-name", config.DefaultOutputName, "File name of the merged log inside the output directory")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// setup resolves configuration and initializes logging before a merge.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	runConfig = cfg

	return logging.Setup(cfg.Debug, "logmerge", version.Get().Version)
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("force") {
		cfg.Force = force
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("timestamp-field") {
		cfg.TimestampField = timestampField
	}
	if flags.Changed("output-name") {
		cfg.OutputName = outputName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
