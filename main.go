// =============================================================================
// Shipping List Processor - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Shipping List Processor CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   shiplist process        - Price a shipping manifest and emit receipts
//   shiplist validate       - Check configuration and reference workbooks
//   shiplist sample         - Generate sample input workbooks
//   shiplist version        - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/hzlogistics/shiplist/cmd"
)

func main() {
	cmd.Execute()
}
