// Package cmd wires the galach CLI together with cobra: a root command
// that behaves like the parse subcommand when given bare arguments, plus
// dedicated parse, batch, and watch subcommands.
package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration
	noColor bool

	logger *zap.Logger
	config Config
)

var rootCmd = &cobra.Command{
	Use:              "galach [query]",
	Short:            "galach - parse free-text search queries into a syntax tree",
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		parseCmd.Run(parseCmd, args)
	},
}

// Execute initializes the logger and config and runs the selected command.
func Execute() error {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Flags are parsed inside rootCmd.Execute; cobra runs this afterwards.
	cobra.OnInitialize(func() {
		var err error
		config, err = LoadConfig(cfgFile)
		if err != nil {
			logger.Warn("using default configuration", zap.Error(err))
			config = DefaultConfig()
		}
		if noColor {
			config.Color = false
		}
		if !config.Color {
			color.NoColor = true
		}
	})

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "galach.yaml", "path to configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "processing timeout")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
}
