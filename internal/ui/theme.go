package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	Header         lipgloss.Style
	Status         lipgloss.Style
	PanelTitle     lipgloss.Style
	PanelBorder    lipgloss.Style
	PanelBody      lipgloss.Style
	Tab            lipgloss.Style
	TabSelected    lipgloss.Style
	Symbol         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Accent         lipgloss.Style
	Pass           lipgloss.Style
	Fail           lipgloss.Style
	Muted          lipgloss.Style
}

type palette struct {
	bar, barAlt   color.Color
	text          color.Color
	title         color.Color
	accent        color.Color
	pass, fail    color.Color
	border, muted color.Color
}

func DefaultTheme() Theme {
	return ThemeForVariant("modern_arcade")
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "cozy_clean":
		return buildTheme(palette{
			bar:    lipgloss.Color("#1E2430"),
			barAlt: lipgloss.Color("#30394A"),
			text:   lipgloss.Color("#F4F6FA"),
			title:  lipgloss.Color("#F2B872"),
			accent: lipgloss.Color("#86B6F6"),
			pass:   lipgloss.Color("#80C4A3"),
			fail:   lipgloss.Color("#D17A86"),
			border: lipgloss.Color("#4A5972"),
			muted:  lipgloss.Color("#A3ACC2"),
		})
	case "retro_terminal":
		return buildTheme(palette{
			bar:    lipgloss.Color("#07150A"),
			barAlt: lipgloss.Color("#12301A"),
			text:   lipgloss.Color("#C5F7C4"),
			title:  lipgloss.Color("#E5D47A"),
			accent: lipgloss.Color("#9CF5A2"),
			pass:   lipgloss.Color("#9CF5A2"),
			fail:   lipgloss.Color("#FF6B6B"),
			border: lipgloss.Color("#1F5C2F"),
			muted:  lipgloss.Color("#73A17A"),
		})
	default:
		return buildTheme(palette{
			bar:    lipgloss.Color("#0E1420"),
			barAlt: lipgloss.Color("#1B2740"),
			text:   lipgloss.Color("#EAF2FF"),
			title:  lipgloss.Color("#5EEBFF"),
			accent: lipgloss.Color("#FFC857"),
			pass:   lipgloss.Color("#67F0A8"),
			fail:   lipgloss.Color("#FF6F91"),
			border: lipgloss.Color("#4B5F8A"),
			muted:  lipgloss.Color("#9CAAC6"),
		})
	}
}

func buildTheme(p palette) Theme {
	return Theme{
		Header:         lipgloss.NewStyle().Background(p.bar).Foreground(p.text).Padding(0, 1),
		Status:         lipgloss.NewStyle().Background(p.barAlt).Foreground(p.text).Padding(0, 1),
		PanelTitle:     lipgloss.NewStyle().Foreground(p.title).Bold(true),
		PanelBorder:    lipgloss.NewStyle().Foreground(p.border),
		PanelBody:      lipgloss.NewStyle().Foreground(p.text),
		Tab:            lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		TabSelected:    lipgloss.NewStyle().Foreground(p.bar).Background(p.accent).Bold(true).Padding(0, 1),
		Symbol:         lipgloss.NewStyle().Foreground(p.title).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(p.muted).Faint(true),
		Accent:         lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Pass:           lipgloss.NewStyle().Foreground(p.pass).Bold(true),
		Fail:           lipgloss.NewStyle().Foreground(p.fail).Bold(true),
		Muted:          lipgloss.NewStyle().Foreground(p.muted),
	}
}
