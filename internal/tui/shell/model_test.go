package shell

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipelang/recipelang/internal/interp"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(interp.NewSession(), "RecipeLang> ")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func scrollbackText(m *Model) string {
	return strings.Join(m.scrollback, "\n")
}

func TestSubmitStatement(t *testing.T) {
	m := newTestModel(t)

	cmd := m.submit("mix flour and eggs")
	require.Nil(t, cmd)

	out := scrollbackText(m)
	assert.Contains(t, out, "Step 1: Mix flour and eggs")
	assert.Len(t, m.session.Recipe().Steps(), 1)
}

func TestSubmitBadLineKeepsSession(t *testing.T) {
	m := newTestModel(t)
	m.submit("mix flour and eggs")

	cmd := m.submit("mix flour and cheese")
	require.Nil(t, cmd)

	assert.Contains(t, scrollbackText(m), "cheese")
	assert.Len(t, m.session.Recipe().Steps(), 1)
}

func TestSubmitMetaRecipe(t *testing.T) {
	m := newTestModel(t)
	m.submit("mix flour and eggs")
	m.submit("recipe")

	out := scrollbackText(m)
	assert.Contains(t, out, "YOUR RECIPE")
	assert.Contains(t, out, "Step 1: Mix flour and eggs")
}

func TestSubmitMetaClear(t *testing.T) {
	m := newTestModel(t)
	m.submit("mix flour and eggs")
	m.submit("clear")

	assert.Contains(t, scrollbackText(m), "Recipe cleared")
	assert.Empty(t, m.session.Recipe().Steps())
}

func TestSubmitMetaHelp(t *testing.T) {
	m := newTestModel(t)
	m.submit("help")

	assert.Contains(t, scrollbackText(m), "VALID INGREDIENTS")
}

func TestSubmitQuit(t *testing.T) {
	m := newTestModel(t)

	cmd := m.submit("quit")
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestSubmitEmptyLineIsNoop(t *testing.T) {
	m := newTestModel(t)
	before := len(m.scrollback)

	cmd := m.submit("   ")
	assert.Nil(t, cmd)
	assert.Len(t, m.scrollback, before)
}

func TestSubmitCommentIsSilentlySkipped(t *testing.T) {
	m := newTestModel(t)
	m.submit("# just a note")

	assert.Empty(t, m.session.Recipe().Steps())
	assert.NotContains(t, scrollbackText(m), "Error")
}
