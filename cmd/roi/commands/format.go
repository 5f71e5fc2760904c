package commands

import (
	"fmt"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Terminal Output Helpers
// Every subcommand renders through these so reports line up
// ═══════════════════════════════════════════════════════════

const separatorWidth = 59

// PrintSeparator draws a single rule line.
func PrintSeparator() {
	fmt.Println(strings.Repeat("─", separatorWidth))
}

// PrintDoubleSeparator draws a double rule line.
func PrintDoubleSeparator() {
	fmt.Println(strings.Repeat("═", separatorWidth))
}

// PrintWarning prints message set off by blank lines.
func PrintWarning(message string) {
	fmt.Println()
	fmt.Printf("⚠️  %s\n", message)
	fmt.Println()
}

// PrintSuccess prints a checkmarked message.
func PrintSuccess(message string) {
	fmt.Printf("✅ %s\n", message)
}

// PrintInfo prints an informational message.
func PrintInfo(message string) {
	fmt.Printf("ℹ️  %s\n", message)
}

// PrintTableHeader prints column titles and a rule sized to the table.
func PrintTableHeader(columns []string, widths []int) {
	PrintTableRow(columns, widths)

	total := 0
	for i, w := range widths {
		total += w
		if i < len(widths)-1 {
			total += 2
		}
	}
	fmt.Println(strings.Repeat("─", total))
}

// PrintTableRow prints one row padded to the column widths.
func PrintTableRow(values []string, widths []int) {
	cells := make([]string, len(values))
	for i, val := range values {
		cells[i] = fmt.Sprintf("%-*s", widths[i], val)
	}
	fmt.Println(strings.Join(cells, "  "))
}

// PrintList prints items as an indented bulleted list.
func PrintList(items []string) {
	for _, item := range items {
		fmt.Printf("   • %s\n", item)
	}
}

// PrintKeyValue prints an aligned key : value line.
func PrintKeyValue(key string, value string, keyWidth int) {
	fmt.Printf("   %-*s : %s\n", keyWidth, key, value)
}
