// =============================================================================
// Shipping List Processor - Sample Command
// =============================================================================
//
// This file defines the 'sample' command, which generates a full set of
// sample input workbooks (manifest, policy, shipping rate, exchange rates)
// for trying out the processor.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hzlogistics/shiplist/internal/sample"
	"github.com/hzlogistics/shiplist/pkg/utils"
)

// sampleDir is the directory the sample workbooks are written to.
var sampleDir string

// sampleCmd represents the 'sample' command.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate sample input workbooks",
	Long: `The sample command writes a sample shipping manifest plus the three
reference workbooks. The manifest contains a duplicated (part number,
unit price) pair, so a sample run also demonstrates deduplication.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := utils.EnsureDirectories(sampleDir); err != nil {
			return err
		}
		paths, err := sample.Generate(sampleDir)
		if err != nil {
			return err
		}
		fmt.Println("Sample workbooks generated:")
		for _, path := range paths {
			fmt.Printf("  ✓ %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVar(&sampleDir, "dir", ".",
		"Directory to write the sample workbooks to")
}
