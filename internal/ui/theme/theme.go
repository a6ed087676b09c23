package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a full set of UI colors.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
	Verb      color.Color
	Noun      color.Color
	Adjective color.Color
}

// Dark is the default palette.
var Dark = Palette{
	Primary:   lipgloss.Color("#22D3EE"), // Cyan
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
	Verb:      lipgloss.Color("#F472B6"), // Pink
	Noun:      lipgloss.Color("#60A5FA"), // Blue
	Adjective: lipgloss.Color("#FBBF24"), // Amber
}

// Light is used when dark mode is off.
var Light = Palette{
	Primary:   lipgloss.Color("#2563EB"),
	Secondary: lipgloss.Color("#0D9488"),
	Accent:    lipgloss.Color("#EA580C"),
	Success:   lipgloss.Color("#16A34A"),
	Error:     lipgloss.Color("#E11D48"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#64748B"),
	BgDark:    lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
	Verb:      lipgloss.Color("#DB2777"),
	Noun:      lipgloss.Color("#2563EB"),
	Adjective: lipgloss.Color("#D97706"),
}

// Active colors. Use swaps them; read them at render time.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
	Verb      color.Color
	Noun      color.Color
	Adjective color.Color
)

// Shared text styles, rebuilt by Use.
var (
	Title     lipgloss.Style
	Hint      lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
)

var dark = true

func init() {
	apply(Dark)
}

// Use switches between the dark and light palettes.
func Use(darkMode bool) {
	if darkMode == dark {
		return
	}
	dark = darkMode
	if darkMode {
		apply(Dark)
	} else {
		apply(Light)
	}
}

// IsDark reports which palette is active.
func IsDark() bool {
	return dark
}

func apply(p Palette) {
	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgDark, BgCard, Border = p.BgDark, p.BgCard, p.Border
	Verb, Noun, Adjective = p.Verb, p.Noun, p.Adjective

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
}
