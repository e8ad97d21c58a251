// =============================================================================
// Shipping List Processor - Process Command
// =============================================================================
//
// This file defines the 'process' command, the main command of the tool.
// It orchestrates the full run:
//
//   1. Load configuration
//   2. Read the manifest workbook (column aliases resolved once, up front)
//   3. Read the three reference workbooks (policy, shipping rate, FX)
//   4. Run the pricing pipeline: dedup -> FOB -> CIF
//   5. Write the deduplicated manifest, export receipt and re-import
//      receipt (plus the FOB price list when configured)
//   6. Write the run summary
//
// The run is a single synchronous batch: all inputs are loaded before any
// computation, and any row failing a precondition aborts the run. Partial
// receipts would misstate totals against the deduplicated list.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hzlogistics/shiplist/internal/config"
	"github.com/hzlogistics/shiplist/internal/manifest"
	"github.com/hzlogistics/shiplist/internal/pricing"
	"github.com/hzlogistics/shiplist/internal/receipt"
	"github.com/hzlogistics/shiplist/internal/refdata"
	"github.com/hzlogistics/shiplist/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// shippingListFile is the path to the manifest workbook.
var shippingListFile string

// policyFile is the path to the markup/insurance policy workbook.
var policyFile string

// shippingRateFile is the path to the shipping rate workbook.
var shippingRateFile string

// exchangeRateFile is the path to the exchange rate workbook.
var exchangeRateFile string

// outputDir overrides the configured output directory.
var outputDir string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Price a shipping manifest and generate customs receipts",
	Long: `The process command reads the shipping manifest and the three reference
workbooks, runs the pricing pipeline, and writes the deduplicated manifest,
the export receipt, and the re-import receipt to the output directory.

Any row that fails a precondition (missing unit price, zero quantity,
no usable weight) aborts the run with the row's serial number and part
number, so the source workbook can be corrected and the run repeated.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&shippingListFile, "shipping-list", "",
		"Path to the shipping manifest workbook (required)")
	processCmd.Flags().StringVar(&policyFile, "policy", "",
		"Path to the policy workbook (required)")
	processCmd.Flags().StringVar(&shippingRateFile, "shipping-rate", "",
		"Path to the shipping rate workbook (required)")
	processCmd.Flags().StringVar(&exchangeRateFile, "exchange-rate", "",
		"Path to the exchange rate workbook (required)")
	processCmd.Flags().StringVar(&outputDir, "output-dir", "",
		"Output directory (overrides configuration)")

	processCmd.MarkFlagRequired("shipping-list")
	processCmd.MarkFlagRequired("policy")
	processCmd.MarkFlagRequired("shipping-rate")
	processCmd.MarkFlagRequired("exchange-rate")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess orchestrates one pipeline run.
func runProcess() error {
	startTime := time.Now()

	fmt.Println("=== Shipping List Processor ===")
	fmt.Println("Loading configuration...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if err := utils.EnsureDirectories(cfg.OutputDir); err != nil {
		return err
	}

	// -------------------------------------------------------------------------
	// STEP 1: READ INPUTS
	// -------------------------------------------------------------------------

	fmt.Printf("Reading manifest: %s\n", shippingListFile)
	rows, err := manifest.ReadWithOptions(shippingListFile, manifest.ReadOptions{
		HeaderRow: cfg.ManifestHeaderRow,
		Aliases:   cfg.Aliases(),
	})
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}
	fmt.Printf("Read %d manifest row(s)\n", len(rows))

	fmt.Println("Reading reference data...")
	policy, err := refdata.XLSXPolicySource{Path: policyFile}.Policy()
	if err != nil {
		return err
	}
	shippingRate, err := refdata.XLSXShippingRateSource{Path: shippingRateFile}.ShippingRate()
	if err != nil {
		return err
	}
	exchangeRates, err := refdata.XLSXExchangeRateSource{Path: exchangeRateFile}.ExchangeRates()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("  markup %s, insurance rate %s, coefficient %s\n",
			policy.MarkupPercentage, policy.InsuranceRate, policy.InsuranceCoefficient)
		fmt.Printf("  shipping rate %s RMB/kg (%s)\n", shippingRate.RMBPerKg, shippingRate.Carrier)
		fmt.Printf("  RMB/USD %s\n", exchangeRates.RMBToUSD)
	}

	// -------------------------------------------------------------------------
	// STEP 2: RUN THE PRICING PIPELINE
	// -------------------------------------------------------------------------

	fmt.Println("Pricing...")
	pipeline := pricing.Pipeline{
		Policy:        policy,
		ShippingRate:  shippingRate,
		ExchangeRates: exchangeRates,
	}
	result, err := pipeline.Run(rows)
	if err != nil {
		return err
	}
	fmt.Printf("Deduplicated to %d row(s)\n", len(result.Deduped))

	if verbose {
		for _, row := range result.Priced {
			fmt.Printf("  P/N %-12s qty %-8s CIF %s USD/unit\n",
				row.PartNumber, row.Quantity, row.CIFUnitPriceUSD.Round(cfg.RoundingDigits))
		}
	}

	// -------------------------------------------------------------------------
	// STEP 3: WRITE OUTPUTS
	// -------------------------------------------------------------------------

	fmt.Println("Writing output workbooks...")

	outPath := func(name string) string {
		return filepath.Join(cfg.OutputDir, utils.GenerateOutputFileName(cfg.OutputNaming, name))
	}

	dedupedPath := outPath("deduped_shipping_list")
	if err := manifest.WriteDeduped(dedupedPath, result.Deduped); err != nil {
		return err
	}

	outputs := []string{dedupedPath}

	if cfg.WriteFOBWorkbook {
		fobPath := outPath("fob_prices")
		if err := manifest.WriteFOB(fobPath, result.Priced); err != nil {
			return err
		}
		outputs = append(outputs, fobPath)
	}

	writeOpts := receipt.DefaultWriteOptions()

	exportPath := outPath("export_receipt")
	exportRows := receipt.ProjectExport(result.Priced, cfg.RoundingDigits)
	if err := receipt.WriteExport(exportPath, exportRows, writeOpts); err != nil {
		return err
	}
	outputs = append(outputs, exportPath)

	reimportPath := outPath("reimport_receipt")
	reimportRows := receipt.ProjectReimport(result.Priced, cfg.RoundingDigits)
	if err := receipt.WriteReimport(reimportPath, reimportRows, writeOpts); err != nil {
		return err
	}
	outputs = append(outputs, reimportPath)

	// -------------------------------------------------------------------------
	// STEP 4: SUMMARY
	// -------------------------------------------------------------------------

	if cfg.WriteSummary {
		summary := utils.ProcessingSummary{
			ManifestFile: shippingListFile,
			InputRows:    len(rows),
			DedupedRows:  len(result.Deduped),
			OutputFiles:  outputs,
			StartTime:    startTime,
			EndTime:      time.Now(),
		}
		if _, err := utils.WriteSummaryLog(summary, cfg.OutputDir); err != nil {
			return err
		}
	}

	fmt.Println("\n=== Processing Complete ===")
	for _, file := range outputs {
		fmt.Printf("  ✓ %s\n", file)
	}
	fmt.Printf("Time elapsed: %s\n", time.Since(startTime))

	return nil
}
