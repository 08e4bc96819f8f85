// Package theme provides color themes for the terminal picker and maps each
// one to a matching syntax-highlight style for the HTML document.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used by the picker UI.
type Theme struct {
	Accent    lipgloss.Color
	AccentFg  lipgloss.Color // text on Accent background
	AccentDim lipgloss.Color
	Border    lipgloss.Color
	MutedFg   lipgloss.Color
	TextFg    lipgloss.Color
	SuccessFg lipgloss.Color
	WarnFg    lipgloss.Color
	ErrorFg   lipgloss.Color
}

// Theme names.
const (
	DraculaName        = "dracula"
	GruvboxDarkName    = "gruvbox-dark"
	MonokaiName        = "monokai"
	NordName           = "nord"
	SolarizedLightName = "solarized-light"
)

// syntaxStyles maps a UI theme to the chroma style used for highlighting.
var syntaxStyles = map[string]string{
	DraculaName:        "dracula",
	GruvboxDarkName:    "gruvbox",
	MonokaiName:        "monokai",
	NordName:           "nord",
	SolarizedLightName: "solarized-light",
}

// Dracula returns the default dark theme.
func Dracula() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#BD93F9"),
		AccentFg:  lipgloss.Color("#282A36"),
		AccentDim: lipgloss.Color("#44475A"),
		Border:    lipgloss.Color("#6272A4"),
		MutedFg:   lipgloss.Color("#6272A4"),
		TextFg:    lipgloss.Color("#F8F8F2"),
		SuccessFg: lipgloss.Color("#50FA7B"),
		WarnFg:    lipgloss.Color("#FFB86C"),
		ErrorFg:   lipgloss.Color("#FF5555"),
	}
}

// GruvboxDark returns the gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#FABD2F"),
		AccentFg:  lipgloss.Color("#282828"),
		AccentDim: lipgloss.Color("#3C3836"),
		Border:    lipgloss.Color("#7C6F64"),
		MutedFg:   lipgloss.Color("#928374"),
		TextFg:    lipgloss.Color("#EBDBB2"),
		SuccessFg: lipgloss.Color("#B8BB26"),
		WarnFg:    lipgloss.Color("#FE8019"),
		ErrorFg:   lipgloss.Color("#FB4934"),
	}
}

// Monokai returns the monokai theme.
func Monokai() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#AE81FF"),
		AccentFg:  lipgloss.Color("#272822"),
		AccentDim: lipgloss.Color("#3E3D32"),
		Border:    lipgloss.Color("#75715E"),
		MutedFg:   lipgloss.Color("#75715E"),
		TextFg:    lipgloss.Color("#F8F8F2"),
		SuccessFg: lipgloss.Color("#A6E22E"),
		WarnFg:    lipgloss.Color("#FD971F"),
		ErrorFg:   lipgloss.Color("#F92672"),
	}
}

// Nord returns the nord theme.
func Nord() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#88C0D0"),
		AccentFg:  lipgloss.Color("#2E3440"),
		AccentDim: lipgloss.Color("#434C5E"),
		Border:    lipgloss.Color("#4C566A"),
		MutedFg:   lipgloss.Color("#616E88"),
		TextFg:    lipgloss.Color("#ECEFF4"),
		SuccessFg: lipgloss.Color("#A3BE8C"),
		WarnFg:    lipgloss.Color("#EBCB8B"),
		ErrorFg:   lipgloss.Color("#BF616A"),
	}
}

// SolarizedLight returns the solarized light theme.
func SolarizedLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#268BD2"),
		AccentFg:  lipgloss.Color("#FDF6E3"),
		AccentDim: lipgloss.Color("#EEE8D5"),
		Border:    lipgloss.Color("#93A1A1"),
		MutedFg:   lipgloss.Color("#93A1A1"),
		TextFg:    lipgloss.Color("#657B83"),
		SuccessFg: lipgloss.Color("#859900"),
		WarnFg:    lipgloss.Color("#B58900"),
		ErrorFg:   lipgloss.Color("#DC322F"),
	}
}

// ByName returns the theme for a name, or nil when unknown.
func ByName(name string) *Theme {
	switch name {
	case DraculaName:
		return Dracula()
	case GruvboxDarkName:
		return GruvboxDark()
	case MonokaiName:
		return Monokai()
	case NordName:
		return Nord()
	case SolarizedLightName:
		return SolarizedLight()
	default:
		return nil
	}
}

// AvailableThemes lists the supported theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		GruvboxDarkName,
		MonokaiName,
		NordName,
		SolarizedLightName,
	}
}

// SyntaxStyle returns the chroma style name matching a UI theme, defaulting
// to dracula for unknown names.
func SyntaxStyle(name string) string {
	if style, ok := syntaxStyles[name]; ok {
		return style
	}
	return syntaxStyles[DraculaName]
}

// DefaultName is the theme used when nothing is configured.
const DefaultName = DraculaName
