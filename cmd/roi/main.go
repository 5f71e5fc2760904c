package main

import (
	"os"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/cmd/roi/commands"
)

// main is the entry point for the ROI calculator CLI
// ⭐ Unified CLI entry point: go run ./cmd/roi [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
