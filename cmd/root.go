// =============================================================================
// Shipping List Processor - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (process, validate, sample,
// version) are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (shiplist)
//   ├── processCmd (shiplist process)
//   ├── validateCmd (shiplist validate)
//   ├── sampleCmd (shiplist sample)
//   └── versionCmd (shiplist version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables per-row detail in command output.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shiplist",
	Short: "Shipping List Processor - landed-cost pricing and customs receipts",
	Long: `Shipping List Processor prices a shipping manifest and generates the
customs-facing receipt documents for export and re-import.

A run reads four xlsx workbooks: the shipping manifest, the markup and
insurance policy, the shipping rate, and the currency exchange rates. The
manifest is deduplicated by (part number, unit price), FOB prices are
derived from the policy markup, and CIF prices are computed with insurance,
freight by weight, and RMB-to-USD conversion. Three workbooks come out: the
deduplicated manifest, the export receipt, and the re-import receipt.

Example Usage:
  shiplist sample --dir ./samples       # Generate sample input workbooks
  shiplist process \
    --shipping-list manifest.xlsx \
    --policy policy.xlsx \
    --shipping-rate rate.xlsx \
    --exchange-rate fx.xlsx`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable per-row detail in output",
	)
}
