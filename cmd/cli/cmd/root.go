// Package cmd provides the CLI commands for mainland-quote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mainland-quote/internal/config"
	"mainland-quote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mainland-quote",
	Short: "Price window and door estimates and quotes",
	Long: `mainland-quote calculates prices for custom-manufactured windows,
doors, and related units from their dimensions, material, and options,
under the configured business rules.

Examples:
  mainland-quote estimate ./estimate.json
  mainland-quote quote --format json ./quote.json
  mainland-quote config init`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	logCfg := config.Get().Logging
	if verbose {
		logCfg.Level = "debug"
	}
	_ = logging.Initialize(logCfg)
}
