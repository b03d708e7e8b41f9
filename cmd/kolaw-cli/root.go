package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Alfex4936/kolaw/internal/config"
	"github.com/Alfex4936/kolaw/internal/net"
	"github.com/Alfex4936/kolaw/internal/util"
)

var (
	cfgFile      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "kolaw-cli",
	Short: "Draft amendment statements and search Korean statutes",
	Long: `kolaw-cli queries the law.go.kr Open API for every 법률 containing a word.

  amend   drafts a 타법개정문 replacing one word with another, with particles
          (조사) adjusted to the new word
  search  prints the articles mentioning a keyword, highlighted

The Open API id (OC) is read from config.yaml or KOLAW_REGISTRY_OC.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.kolaw/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(amendCmd, searchCmd, configCmd, versionCmd)
}

// setup loads the config and builds the logger and registry client.
// Callers must Sync the logger.
func setup() (*config.Config, *zap.Logger, *net.Client, error) {
	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}
	cfg := cm.Get()

	log, err := newLogger(verbose || cfg.Log.Verbose)
	if err != nil {
		return nil, nil, nil, err
	}
	if f := cm.File(); f != "" {
		log.Debug("config loaded", zap.String("file", f))
	}

	client, err := net.New(net.Config{
		OC:            cfg.Registry.OC,
		BaseURL:       cfg.Registry.BaseURL,
		Display:       cfg.Registry.Display,
		Timeout:       cfg.Registry.Timeout(),
		RatePerSecond: cfg.Registry.RatePerSecond,
		Retries:       cfg.Registry.Retries,
		Logger:        log,
	})
	if err != nil {
		log.Sync()
		return nil, nil, nil, err
	}
	return cfg, log, client, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return zc.Build()
}

func writeOut(cmd *cobra.Command, v any) error {
	return util.Write(cmd.OutOrStdout(), util.ParseFormat(outputFormat), v)
}
