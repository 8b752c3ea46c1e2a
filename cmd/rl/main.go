// rl is the RecipeLang command line interpreter.
package main

import (
	"os"

	"github.com/recipelang/recipelang/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
