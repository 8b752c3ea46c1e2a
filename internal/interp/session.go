// Package interp glues the line parser to the recipe accumulator: one
// Session per batch run or interactive shell.
package interp

import (
	"github.com/recipelang/recipelang/internal/lang"
	"github.com/recipelang/recipelang/internal/recipe"
)

// Result is the echo for one accepted statement, e.g. step 3 with text
// "Mix flour and eggs". The CLI formats it as "✓ Step 3: ...".
type Result struct {
	StepNumber int
	Text       string
}

// Session owns the recipe being built across one run. Parse failures
// are line-scoped: a failed Eval leaves the recipe untouched and the
// session usable.
type Session struct {
	rec        *recipe.Recipe
	transcript *Transcript
}

// NewSession returns a session with an empty recipe.
func NewSession() *Session {
	return &Session{rec: recipe.New()}
}

// SetTranscript enables recording of accepted statements.
func (s *Session) SetTranscript(t *Transcript) {
	s.transcript = t
}

// Transcript returns the active transcript, or nil.
func (s *Session) Transcript() *Transcript {
	return s.transcript
}

// Eval parses one line and, on success, applies it to the recipe.
// Blank/comment lines surface lang.ErrSkip; parse failures surface the
// *lang.ParseError unchanged. Transcript write failures are swallowed:
// recording is best-effort and must never break an accepted statement.
func (s *Session) Eval(line string) (Result, error) {
	st, err := lang.ParseLine(line)
	if err != nil {
		return Result{}, err
	}

	s.rec.Apply(st)
	if s.transcript != nil {
		_ = s.transcript.Record(st.Source())
	}

	return Result{StepNumber: len(s.rec.Steps()), Text: st.Text()}, nil
}

// Recipe exposes the accumulator for rendering.
func (s *Session) Recipe() *recipe.Recipe {
	return s.rec
}

// Reset clears the recipe, backing the interactive `clear` command.
func (s *Session) Reset() {
	s.rec.Reset()
}
