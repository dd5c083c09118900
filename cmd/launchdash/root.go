package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spektr-org/launchdash/dataset"
	"github.com/spektr-org/launchdash/internal/config"
	"github.com/spektr-org/launchdash/internal/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	dataPath   string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "launchdash",
		Short: "Interactive dashboard over launch records",
		Long: "launchdash loads a CSV of launch records and keeps two views in sync\n" +
			"with a launch site selector and a payload range selector.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	f := root.PersistentFlags()
	f.StringVar(&g.configPath, "config", "", "Path to YAML config file")
	f.StringVar(&g.dataPath, "data", "", "Path to launch records CSV (overrides config)")
	f.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	f.StringVar(&g.logFormat, "log-format", "", "Log format: text or json (overrides config)")

	root.AddCommand(newServeCmd(g))
	root.AddCommand(newRenderCmd(g))
	root.AddCommand(newInspectCmd(g))
	return root
}

// setup loads the config, applies flag overrides, configures logging and
// loads the dataset. A load failure is returned as is so callers can
// inspect it with errors.As.
func (g *globalFlags) setup(cmd *cobra.Command) (config.Config, *dataset.Dataset, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if g.dataPath != "" {
		cfg.DataPath = g.dataPath
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, err
	}
	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())

	ds, err := dataset.LoadFile(cfg.DataPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	lo, hi := ds.Bounds()
	logging.New("cli").Info("dataset loaded",
		"source", ds.Source(),
		"records", ds.Len(),
		"sites", len(ds.Sites()),
		"min_payload", lo,
		"max_payload", hi)
	return cfg, ds, nil
}

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %v)", format, allowed)
}
