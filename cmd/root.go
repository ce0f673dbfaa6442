// Package cmd is for command line interactions with the arboretum application
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/config"
)

var (
	// logger is built before every command runs
	logger = zap.NewNop()

	// conf is the settings of the running command
	conf *config.Config
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "arboretum",
	Short: `Draw genetic structures and trait models in 3D.
Sequences are shown as a helix, strand, fold or plasmid ring, traits as animated models`,
	Version:       "0.1.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}

		var err error
		if conf, err = config.New(); err != nil {
			return err
		}

		zconf := zap.NewProductionConfig()
		if conf.Verbose {
			zconf.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if logger, err = zconf.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("settings", "s", "", "path to a YAML settings file")
	RootCmd.PersistentFlags().Bool("verbose", false, "log scene mounts and fallbacks")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
