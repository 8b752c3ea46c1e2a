package interp

import (
	"fmt"
	"strings"

	"github.com/recipelang/recipelang/internal/lang"
)

// HelpText returns the grammar reference shown by the `help` meta
// command, in both the plain shell and the full-screen UI.
func HelpText() string {
	var actions, ingredients, units []string
	for _, a := range lang.Actions() {
		actions = append(actions, string(a))
	}
	for _, ing := range lang.Ingredients() {
		ingredients = append(ingredients, string(ing))
	}
	for _, u := range lang.Units() {
		units = append(units, string(u))
	}

	return fmt.Sprintf(`RecipeLang - A Simple Recipe Programming Language

COMMAND PATTERNS:
  1. Mix ingredients:  <action> <ingredient1> and <ingredient2>
  2. Timed actions:    <action> for <number> <unit>

VALID ACTIONS:
  %s

VALID INGREDIENTS:
  %s

VALID TIME UNITS:
  %s

EXAMPLE COMMANDS:
  mix flour and eggs
  add sugar and butter
  bake for 30 minutes
  cool for 10 minutes

SPECIAL COMMANDS:
  help     - Show this help
  recipe   - Display current recipe
  clear    - Clear current recipe
  quit     - Exit the interpreter`,
		strings.Join(actions, ", "),
		strings.Join(ingredients, ", "),
		strings.Join(units, ", "))
}
