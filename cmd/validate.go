// =============================================================================
// Shipping List Processor - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the configuration
// and the reference workbooks without running the pipeline or writing any
// output. Useful before a real run when the reference tables have just
// been updated.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hzlogistics/shiplist/internal/config"
	"github.com/hzlogistics/shiplist/internal/refdata"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configuration and reference workbooks without processing",
	Long: `The validate command loads the configuration file and, when reference
workbook paths are supplied, reads each one and reports the values it
would use. No manifest is read and no output is written.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&policyFile, "policy", "",
		"Path to the policy workbook")
	validateCmd.Flags().StringVar(&shippingRateFile, "shipping-rate", "",
		"Path to the shipping rate workbook")
	validateCmd.Flags().StringVar(&exchangeRateFile, "exchange-rate", "",
		"Path to the exchange rate workbook")
}

// runValidate checks whatever inputs were supplied.
func runValidate() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fmt.Printf("Configuration OK (output dir %s, rounding to %d digits)\n",
		cfg.OutputDir, cfg.RoundingDigits)

	if policyFile != "" {
		policy, err := refdata.XLSXPolicySource{Path: policyFile}.Policy()
		if err != nil {
			return err
		}
		fmt.Printf("Policy OK: markup %s, insurance rate %s, coefficient %s\n",
			policy.MarkupPercentage, policy.InsuranceRate, policy.InsuranceCoefficient)
	}

	if shippingRateFile != "" {
		rate, err := refdata.XLSXShippingRateSource{Path: shippingRateFile}.ShippingRate()
		if err != nil {
			return err
		}
		fmt.Printf("Shipping rate OK: %s RMB/kg", rate.RMBPerKg)
		if rate.Carrier != "" {
			fmt.Printf(" (carrier %s)", rate.Carrier)
		}
		fmt.Println()
	}

	if exchangeRateFile != "" {
		rates, err := refdata.XLSXExchangeRateSource{Path: exchangeRateFile}.ExchangeRates()
		if err != nil {
			return err
		}
		fmt.Printf("Exchange rates OK: RMB/USD %s", rates.RMBToUSD)
		if rates.RMBToRupee != nil {
			fmt.Printf(", RMB/Rupee %s", rates.RMBToRupee)
		}
		fmt.Println()
	}

	return nil
}
