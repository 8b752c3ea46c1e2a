package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recipelang/recipelang/internal/ui"
)

// colorizedHelpFunc wraps Cobra's default help with semantic coloring:
// group and section headers get the accent color for visual hierarchy.
func colorizedHelpFunc(cmd *cobra.Command, args []string) {
	var output strings.Builder

	// include Long description first (like Cobra's default help)
	if cmd.Long != "" {
		output.WriteString(cmd.Long)
		output.WriteString("\n\n")
	} else if cmd.Short != "" {
		output.WriteString(cmd.Short)
		output.WriteString("\n\n")
	}

	output.WriteString(cmd.UsageString())

	fmt.Print(colorizeHelpOutput(output.String()))
}

var (
	// standalone lines ending with ":" are group headers
	groupHeaderRE = regexp.MustCompile(`(?m)^([A-Z][A-Za-z &]+:)\s*$`)

	sectionHeaderRE = regexp.MustCompile(`(?m)^(Examples|Flags|Usage|Global Flags|Aliases|Available Commands):`)
)

func colorizeHelpOutput(help string) string {
	result := groupHeaderRE.ReplaceAllStringFunc(help, func(match string) string {
		return ui.RenderAccent(strings.TrimSpace(match))
	})

	result = sectionHeaderRE.ReplaceAllStringFunc(result, func(match string) string {
		return ui.RenderAccent(match)
	})

	return result
}
