package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/recipelang/recipelang/internal/lang"
	"github.com/recipelang/recipelang/internal/style"
)

var checkCmd = &cobra.Command{
	Use:     "check <file.rl>",
	GroupID: GroupDiag,
	Short:   "Validate a recipe file without executing it",
	Long: `Parse every line of a recipe file and report the ones that fail.

Nothing is executed and no recipe is printed; the exit code is nonzero
when any line is invalid, so check works in scripts and CI hooks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening recipe %s", path)
	}
	defer f.Close()

	var statements, bad int
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		_, err := lang.ParseLine(sc.Text())
		switch {
		case errors.Is(err, lang.ErrSkip):
		case err != nil:
			bad++
			fmt.Printf("%s line %d: %v\n", style.ErrorPrefix, lineNum, err)
		default:
			statements++
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "reading recipe %s", path)
	}

	if bad > 0 {
		return fmt.Errorf("%d invalid line(s) in %s", bad, path)
	}
	fmt.Printf("%s %s: %d statement(s), no problems\n", style.SuccessPrefix, path, statements)
	return nil
}
