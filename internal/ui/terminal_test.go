package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThemeModeEnvWins(t *testing.T) {
	t.Setenv("RL_THEME", "light")
	assert.Equal(t, ThemeModeLight, resolveThemeMode("dark"))
}

func TestResolveThemeModeInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("RL_THEME", "sepia")
	assert.Equal(t, ThemeModeDark, resolveThemeMode("dark"))
}

func TestResolveThemeModeConfig(t *testing.T) {
	t.Setenv("RL_THEME", "")
	assert.Equal(t, ThemeModeDark, resolveThemeMode("dark"))
	assert.Equal(t, ThemeModeLight, resolveThemeMode("LIGHT"))
	assert.Equal(t, ThemeModeAuto, resolveThemeMode(""))
	assert.Equal(t, ThemeModeAuto, resolveThemeMode("bogus"))
}

func TestDetectDarkBackgroundForced(t *testing.T) {
	assert.True(t, detectDarkBackground(ThemeModeDark))
	assert.False(t, detectDarkBackground(ThemeModeLight))
}

func TestShouldUseColorRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColor())
}

func TestShouldUseColorCliColorForce(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "1")
	assert.True(t, ShouldUseColor())
}

func TestShouldUseColorCliColorZero(t *testing.T) {
	t.Setenv("CLICOLOR", "0")
	assert.False(t, ShouldUseColor())
}
