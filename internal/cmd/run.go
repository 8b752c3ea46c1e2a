package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/recipelang/recipelang/internal/interp"
	"github.com/recipelang/recipelang/internal/lang"
	"github.com/recipelang/recipelang/internal/style"
)

var stopOnErrorFlag bool

var runCmd = &cobra.Command{
	Use:     "run <file.rl>",
	GroupID: GroupRecipes,
	Short:   "Execute a recipe file",
	Long: `Execute a recipe file line by line and print the assembled recipe.

Lines that fail to parse are reported and skipped; the rest of the
file still runs. Use --stop-on-error to halt at the first bad line
instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&stopOnErrorFlag, "stop-on-error", false,
		"Halt at the first line that fails to parse")
}

// runFile is batch mode: feed each line to the session, report per-line
// outcomes, then print the rendered recipe. Parse failures are
// line-scoped; only I/O problems make runFile itself fail.
func runFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening recipe %s", path)
	}
	defer f.Close()

	fmt.Printf("Executing recipe from: %s\n\n", path)

	sess := interp.NewSession()
	stopOnError := stopOnErrorFlag || cfg.StopOnError

	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())

		res, err := sess.Eval(line)
		if errors.Is(err, lang.ErrSkip) {
			continue
		}

		fmt.Printf("[Line %d] %s\n", lineNum, line)
		if err != nil {
			fmt.Printf("  %s %s %v\n", style.ArrowPrefix, style.ErrorPrefix, err)
			if stopOnError {
				fmt.Printf("\nExecution stopped at line %d\n", lineNum)
				return nil
			}
			continue
		}
		fmt.Printf("  %s %s Step %d: %s\n", style.ArrowPrefix, style.SuccessPrefix, res.StepNumber, res.Text)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "reading recipe %s", path)
	}

	fmt.Println(sess.Recipe().Render())
	return nil
}
