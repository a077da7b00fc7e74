// Package cmd provides the CLI commands for freight-rate.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"freight-rate/internal/config"
	"freight-rate/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "freight-rate",
	Short: "Resolve zones and price parcel shipments across carriers",
	Long: `freight-rate resolves a source/destination pincode pair to each
carrier's pricing zone and computes the fully itemized landed cost:
base freight, surcharges, escalation, and GST.

Examples:
  freight-rate quote --from 400001 --to 110001 --weight 25
  freight-rate quote --from 400001 --to 600001 --weight 10 --cod --value 5000
  freight-rate zone --from 400001 --to 110001
  freight-rate carriers`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.freight-rate.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(zoneCmd)
	rootCmd.AddCommand(carriersCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	// A local .env can carry FREIGHT_* overrides (diesel price, data
	// dir). Absence is not an error.
	_ = godotenv.Load()

	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("freight-rate version 0.1.0")
	},
}

// configCmd writes the effective configuration to a file
var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Write the effective configuration to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".freight-rate.json"
		if len(args) > 0 {
			path = args[0]
		}
		if err := config.Get().Save(path); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", path)
		return nil
	},
}
