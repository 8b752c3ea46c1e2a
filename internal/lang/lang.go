// Package lang implements the RecipeLang line grammar: closed action,
// ingredient, and unit vocabularies plus a single-pass line parser.
//
// The grammar recognizes two statement shapes:
//
//	mix flour and eggs        (mix category: mix, add)
//	bake for 30 minutes       (timed category: bake, heat, cool)
//
// Matching is case-insensitive; canonical forms are lower case.
package lang

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Action is a recipe verb. The set is closed; anything outside it is a
// parse error, never a pass-through.
type Action string

const (
	ActionMix  Action = "mix"
	ActionAdd  Action = "add"
	ActionBake Action = "bake"
	ActionHeat Action = "heat"
	ActionCool Action = "cool"
)

// Timed reports whether the action takes the "for <n> <unit>" form
// rather than the "<ingredient> and <ingredient>" form.
func (a Action) Timed() bool {
	switch a {
	case ActionBake, ActionHeat, ActionCool:
		return true
	}
	return false
}

// Ingredient is one of the fixed pantry items. No free-form ingredients.
type Ingredient string

const (
	Flour   Ingredient = "flour"
	Eggs    Ingredient = "eggs"
	Sugar   Ingredient = "sugar"
	Butter  Ingredient = "butter"
	Milk    Ingredient = "milk"
	Salt    Ingredient = "salt"
	Water   Ingredient = "water"
	Vanilla Ingredient = "vanilla"
)

// Unit is a time unit for timed actions.
type Unit string

const (
	Seconds Unit = "seconds"
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
)

var validActions = map[string]Action{
	"mix":  ActionMix,
	"add":  ActionAdd,
	"bake": ActionBake,
	"heat": ActionHeat,
	"cool": ActionCool,
}

var validIngredients = map[string]Ingredient{
	"flour":   Flour,
	"eggs":    Eggs,
	"sugar":   Sugar,
	"butter":  Butter,
	"milk":    Milk,
	"salt":    Salt,
	"water":   Water,
	"vanilla": Vanilla,
}

var validUnits = map[string]Unit{
	"seconds": Seconds,
	"minutes": Minutes,
	"hours":   Hours,
}

// Actions returns the action vocabulary, sorted.
func Actions() []Action {
	out := make([]Action, 0, len(validActions))
	for _, a := range validActions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Ingredients returns the ingredient vocabulary, sorted.
func Ingredients() []Ingredient {
	out := make([]Ingredient, 0, len(validIngredients))
	for _, ing := range validIngredients {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Units returns the unit vocabulary, sorted.
func Units() []Unit {
	out := make([]Unit, 0, len(validUnits))
	for _, u := range validUnits {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Statement is one parsed line of a recipe. Implementations are
// MixStatement and TimedStatement; the interface is closed.
type Statement interface {
	// Text returns the human-readable step, e.g. "Mix flour and eggs".
	Text() string
	// Source returns the canonical lower-case source form of the
	// statement, suitable for writing back to a .rl file.
	Source() string

	statement()
}

// MixStatement pairs two ingredients: "mix flour and eggs".
type MixStatement struct {
	Action Action
	Left   Ingredient
	Right  Ingredient
}

func (s MixStatement) statement() {}

func (s MixStatement) Text() string {
	return fmt.Sprintf("%s %s and %s", capitalize(string(s.Action)), s.Left, s.Right)
}

func (s MixStatement) Source() string {
	return fmt.Sprintf("%s %s and %s", s.Action, s.Left, s.Right)
}

// TimedStatement runs an action for a duration: "bake for 30 minutes".
type TimedStatement struct {
	Action   Action
	Duration int
	Unit     Unit
}

func (s TimedStatement) statement() {}

func (s TimedStatement) Text() string {
	return fmt.Sprintf("%s for %d %s", capitalize(string(s.Action)), s.Duration, s.Unit)
}

func (s TimedStatement) Source() string {
	return fmt.Sprintf("%s for %d %s", s.Action, s.Duration, s.Unit)
}

func capitalize(s string) string {
	return cases.Title(language.English).String(s)
}
