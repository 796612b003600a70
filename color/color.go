// Package color names the terminal colors used by the CLI output.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
)

var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)

// Quality maps a rendition label's tier (see rank.QualityScore) to a color.
func Quality(score int) lipgloss.Color {
	switch {
	case score >= 4:
		return HiPurple
	case score == 3:
		return HiGreen
	case score == 2:
		return Yellow
	case score == 1:
		return Orange
	default:
		return Gray
	}
}
