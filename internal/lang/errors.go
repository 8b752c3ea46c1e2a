package lang

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSkip is returned by ParseLine for blank lines and '#' comments.
// It signals "nothing to do here", not a failure; callers should test
// with errors.Is and move on to the next line.
var ErrSkip = errors.New("blank or comment line")

// ErrorKind classifies a parse failure. All kinds are line-scoped and
// recoverable; none is fatal to a session.
type ErrorKind int

const (
	// UnknownAction means the first token is not in the action vocabulary.
	UnknownAction ErrorKind = iota
	// UnknownIngredient means a mix operand is not in the pantry.
	UnknownIngredient
	// MalformedMix means a mix/add line has the wrong shape (missing
	// "and", wrong token count).
	MalformedMix
	// MalformedTimed means a bake/heat/cool line has the wrong shape
	// (missing "for", bad duration, bad unit).
	MalformedTimed
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownAction:
		return "unknown action"
	case UnknownIngredient:
		return "unknown ingredient"
	case MalformedMix:
		return "malformed mix command"
	case MalformedTimed:
		return "malformed timed command"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError describes why a line failed to parse. Callers distinguish
// failure classes via errors.As and the Kind field.
type ParseError struct {
	Kind   ErrorKind
	Line   string // the offending line, trimmed
	Token  string // the offending token, when one can be named
	reason string
}

func (e *ParseError) Error() string { return e.reason }

func errUnknownAction(line, token string) *ParseError {
	return &ParseError{
		Kind:   UnknownAction,
		Line:   line,
		Token:  token,
		reason: fmt.Sprintf("unknown action %q (valid actions: %s)", token, joinActions()),
	}
}

func errUnknownIngredient(line, token string) *ParseError {
	return &ParseError{
		Kind:   UnknownIngredient,
		Line:   line,
		Token:  token,
		reason: fmt.Sprintf("unknown ingredient %q (valid ingredients: %s)", token, joinIngredients()),
	}
}

func errMalformedMix(line string, action Action) *ParseError {
	return &ParseError{
		Kind:   MalformedMix,
		Line:   line,
		reason: fmt.Sprintf("invalid %s command: want %q", action, action+" <ingredient> and <ingredient>"),
	}
}

func errMalformedTimed(line string, action Action, detail string) *ParseError {
	return &ParseError{
		Kind:   MalformedTimed,
		Line:   line,
		reason: fmt.Sprintf("invalid %s command: %s (want %q)", action, detail, action+" for <number> <unit>"),
	}
}

func joinActions() string {
	var names []string
	for _, a := range Actions() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

func joinIngredients() string {
	var names []string
	for _, ing := range Ingredients() {
		names = append(names, string(ing))
	}
	return strings.Join(names, ", ")
}
