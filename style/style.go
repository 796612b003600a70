// Package style wraps lipgloss into small string-to-string renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kinotv/kino/color"
	"github.com/kinotv/kino/key"
	"github.com/spf13/viper"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer for the given foreground. It is the identity when cli.colored is off.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string {
		if !viper.GetBool(key.CliColored) {
			return s
		}
		return Colored(c, "").Render(s)
	}
}

func Truncate(max int) func(string) string {
	return func(s string) string { return New().MaxWidth(max).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag renders s as a padded badge.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}
