package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipelang/recipelang/internal/lang"
	"github.com/recipelang/recipelang/internal/style"
)

var vocabCmd = &cobra.Command{
	Use:     "vocab",
	GroupID: GroupDiag,
	Short:   "List the recipe vocabulary",
	Long: `Print the closed RecipeLang vocabularies: actions, ingredients,
and time units. Anything outside these sets is a parse error.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVocab()
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

func printVocab() {
	actions := style.NewTable(
		col("WORD", 10),
		col("PATTERN", 40),
	)
	for _, a := range lang.Actions() {
		pattern := fmt.Sprintf("%s <ingredient> and <ingredient>", a)
		if a.Timed() {
			pattern = fmt.Sprintf("%s for <number> <unit>", a)
		}
		actions.AddRow(string(a), pattern)
	}

	ingredients := style.NewTable(col("INGREDIENT", 12))
	for _, ing := range lang.Ingredients() {
		ingredients.AddRow(string(ing))
	}

	units := style.NewTable(col("UNIT", 12))
	for _, u := range lang.Units() {
		units.AddRow(string(u))
	}

	fmt.Println("Actions:")
	fmt.Println(actions.Render())
	fmt.Println("Ingredients:")
	fmt.Println(ingredients.Render())
	fmt.Println("Time units:")
	fmt.Println(units.Render())
}

// col is shorthand for a left-aligned table column.
func col(name string, width int) style.Column {
	return style.Column{Name: name, Width: width}
}
