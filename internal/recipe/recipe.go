// Package recipe accumulates parsed statements into a recipe: a
// deduplicated ingredient set plus the ordered list of steps.
package recipe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/recipelang/recipelang/internal/lang"
)

const bannerWidth = 50

// Recipe is the in-memory aggregate built over one session. It is
// created empty, mutated by Apply, and reusable indefinitely after
// Reset. A Recipe never fails: its inputs are already-validated
// statements.
//
// Not safe for concurrent use; a session has exactly one caller.
type Recipe struct {
	used  map[lang.Ingredient]struct{}
	steps []string
}

// New returns an empty recipe.
func New() *Recipe {
	return &Recipe{used: make(map[lang.Ingredient]struct{})}
}

// Apply records one statement. Mix statements add both operands to the
// ingredient set (inserting an already-present ingredient is a no-op);
// timed statements touch no ingredients. Either way the rendered step
// text is appended, so applying the same statement twice yields one
// ingredient entry but two steps.
func (r *Recipe) Apply(st lang.Statement) {
	if mix, ok := st.(lang.MixStatement); ok {
		r.used[mix.Left] = struct{}{}
		r.used[mix.Right] = struct{}{}
	}
	r.steps = append(r.steps, st.Text())
}

// Ingredients returns the accumulated ingredients sorted
// lexicographically. The sort is a presentation contract: storage is a
// set, display is deterministic.
func (r *Recipe) Ingredients() []lang.Ingredient {
	out := make([]lang.Ingredient, 0, len(r.used))
	for ing := range r.used {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Steps returns the step texts in acceptance order, without the
// "Step N:" numbering; that is applied by Render.
func (r *Recipe) Steps() []string {
	out := make([]string, len(r.steps))
	copy(out, r.steps)
	return out
}

// Reset clears the recipe back to its initial empty state.
func (r *Recipe) Reset() {
	r.used = make(map[lang.Ingredient]struct{})
	r.steps = nil
}

// Render produces the plain-text recipe report. The core never prints
// and never colorizes; any styling is layered on by the CLI.
func (r *Recipe) Render() string {
	banner := strings.Repeat("=", bannerWidth)

	var sb strings.Builder
	sb.WriteString("\n" + banner + "\n")
	sb.WriteString("           YOUR RECIPE\n")
	sb.WriteString(banner + "\n\n")

	sb.WriteString("INGREDIENTS:\n")
	if ings := r.Ingredients(); len(ings) > 0 {
		names := make([]string, len(ings))
		for i, ing := range ings {
			names[i] = string(ing)
		}
		sb.WriteString("  " + strings.Join(names, ", ") + "\n")
	} else {
		sb.WriteString("  (no ingredients yet)\n")
	}
	sb.WriteString("\n")

	sb.WriteString("INSTRUCTIONS:\n")
	if len(r.steps) > 0 {
		for i, step := range r.steps {
			sb.WriteString(fmt.Sprintf("  Step %d: %s\n", i+1, step))
		}
	} else {
		sb.WriteString("  (no steps yet)\n")
	}

	sb.WriteString("\n" + banner + "\n")
	return sb.String()
}
