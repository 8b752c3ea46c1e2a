package lang

import (
	"strconv"
	"strings"
)

// ParseLine parses one line of RecipeLang source into a Statement.
//
// Blank lines and lines whose first non-space character is '#' return
// ErrSkip. Every other failure is a *ParseError carrying the kind, the
// offending line, and (where possible) the offending token.
//
// The function is pure: no I/O, no state beyond the fixed vocabularies.
func ParseLine(line string) (Statement, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, ErrSkip
	}

	tokens := strings.Fields(strings.ToLower(trimmed))

	action, ok := validActions[tokens[0]]
	if !ok {
		return nil, errUnknownAction(trimmed, tokens[0])
	}

	// Dispatch on the action's category, not on the presence of
	// "and"/"for": "bake flour and eggs" must fail as a malformed
	// timed command rather than sneak through as a mix.
	if action.Timed() {
		return parseTimed(trimmed, action, tokens)
	}
	return parseMix(trimmed, action, tokens)
}

// parseMix handles "<mix|add> <ingredient> and <ingredient>".
func parseMix(line string, action Action, tokens []string) (Statement, error) {
	if len(tokens) != 4 || tokens[2] != "and" {
		return nil, errMalformedMix(line, action)
	}

	left, ok := validIngredients[tokens[1]]
	if !ok {
		return nil, errUnknownIngredient(line, tokens[1])
	}
	right, ok := validIngredients[tokens[3]]
	if !ok {
		return nil, errUnknownIngredient(line, tokens[3])
	}

	return MixStatement{Action: action, Left: left, Right: right}, nil
}

// parseTimed handles "<bake|heat|cool> for <positive int> <unit>".
func parseTimed(line string, action Action, tokens []string) (Statement, error) {
	if len(tokens) != 4 || tokens[1] != "for" {
		return nil, errMalformedTimed(line, action, "expected 'for' after action")
	}

	n, err := strconv.Atoi(tokens[2])
	if err != nil || n <= 0 {
		return nil, errMalformedTimed(line, action, "duration must be a positive number, got '"+tokens[2]+"'")
	}

	unit, ok := validUnits[tokens[3]]
	if !ok {
		return nil, errMalformedTimed(line, action, "unknown time unit '"+tokens[3]+"'")
	}

	return TimedStatement{Action: action, Duration: n, Unit: unit}, nil
}
