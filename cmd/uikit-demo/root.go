package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uikit-demo",
		Short:         "Serve and preview the button demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Additionally write JSON logs to this file")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config file if one was given and applies the persistent flags.
func (f *rootFlags) loadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if f.configPath != "" {
		loaded, err := LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	return cfg, nil
}
