package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/recipelang/recipelang/internal/interp"
	"github.com/recipelang/recipelang/internal/lang"
	"github.com/recipelang/recipelang/internal/style"
	"github.com/recipelang/recipelang/internal/tui/shell"
	"github.com/recipelang/recipelang/internal/ui"
)

var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"repl"},
	GroupID: GroupRecipes,
	Short:   "Interactive RecipeLang shell",
	Long: `Start an interactive RecipeLang session.

Statements are applied as you type them. Four meta commands live
outside the recipe grammar:

  help     show the grammar reference
  recipe   display the recipe built so far
  clear    start over
  quit     exit (also: exit, ctrl+c, ctrl+d)

On a terminal this opens a full-screen UI; use --plain (or pipe
stdin) for a plain line-oriented loop.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	sess := interp.NewSession()

	if cfg.Transcripts {
		tr, err := interp.NewTranscript("")
		if err != nil {
			// transcripts are a convenience; a broken state dir must
			// not block the shell
			fmt.Fprintf(os.Stderr, "%s transcripts disabled: %v\n", style.WarningPrefix, err)
		} else {
			sess.SetTranscript(tr)
		}
	}

	if plainFlag || !ui.IsInputTerminal() || !ui.IsTerminal() {
		err := plainShell(sess)
		printTranscriptPath(sess)
		return err
	}

	m := shell.New(sess, cfg.Prompt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running shell")
	}
	printTranscriptPath(sess)
	return nil
}

// plainShell is the line-oriented fallback: works over pipes, dumb
// terminals, and in tests.
func plainShell(sess *interp.Session) error {
	banner := strings.Repeat("=", 50)
	fmt.Println(banner)
	fmt.Println("  Welcome to RecipeLang Interactive Mode!")
	fmt.Println(banner)
	fmt.Println("Type 'help' for commands, 'quit' to exit")
	fmt.Println()

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cfg.Prompt)
		if !sc.Scan() {
			fmt.Println("\nHappy cooking!")
			return errors.Wrap(sc.Err(), "reading input")
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			fmt.Println("Happy cooking!")
			return nil
		case "help":
			fmt.Println(interp.HelpText())
			continue
		case "recipe":
			fmt.Println(sess.Recipe().Render())
			continue
		case "clear":
			sess.Reset()
			fmt.Printf("%s Recipe cleared!\n", style.SuccessPrefix)
			continue
		}

		res, err := sess.Eval(line)
		switch {
		case errors.Is(err, lang.ErrSkip):
		case err != nil:
			fmt.Printf("%s %v\n", style.ErrorPrefix, err)
		default:
			fmt.Printf("%s Step %d: %s\n", style.SuccessPrefix, res.StepNumber, res.Text)
		}
	}
}

func printTranscriptPath(sess *interp.Session) {
	if tr := sess.Transcript(); tr != nil {
		fmt.Printf("%s session transcript: %s\n", style.ArrowPrefix, tr.Path())
	}
}
