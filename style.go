package main

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Icon constants (crush-inspired).
const (
	IconSuccess = "✓" // checkmark
	IconError   = "×" // multiplication sign
	IconPending = "●" // filled circle
	IconArrow   = "→" // right arrow
	IconWarn    = "▲" // small up triangle

	DiagFill   = "╱" // box drawings light diagonal
	GridDot    = "·" // middle dot
	CursorMark = "┼" // light cross

	ScrollThumbChar = "┃" // heavy vertical line
	ScrollTrackChar = "│" // light vertical line
)

// palette defines all colors in one place. Changing values here
// recolors the entire UI.
var palette = struct {
	// Grays / text hierarchy
	Fg     color.Color // normal foreground
	Muted  color.Color // labels
	Faint  color.Color // descriptions, status text
	Subtle color.Color // separators, grid
	Dim    color.Color // very dim separators

	// UI chrome
	Primary    color.Color // charple purple, accent borders, selection
	PrimaryFg  color.Color // text on primary bg
	Secondary  color.Color // dolly pink
	Tertiary   color.Color // bok teal, prompts
	HeaderBlue color.Color // section headers

	// Backgrounds
	BgBase    color.Color // base background
	BgLighter color.Color // lighter panels, overlays
	BgSubtle  color.Color // subtle highlights, borders

	// Event kinds
	Green  color.Color // presented
	Cyan   color.Color // selected
	Yellow color.Color // dismissed, warnings
	Fatal  color.Color // errors
}{
	Fg:     lipgloss.Color("#DFDBDD"),
	Muted:  lipgloss.Color("#858392"),
	Faint:  lipgloss.Color("#BFBCC8"),
	Subtle: lipgloss.Color("#605F6B"),
	Dim:    lipgloss.Color("#4D4C57"),

	Primary:    lipgloss.Color("#6B50FF"),
	PrimaryFg:  lipgloss.Color("#FFFAF1"),
	Secondary:  lipgloss.Color("#FF60FF"),
	Tertiary:   lipgloss.Color("#68FFD6"),
	HeaderBlue: lipgloss.Color("#00A4FF"),

	BgBase:    lipgloss.Color("#201F26"),
	BgLighter: lipgloss.Color("#2D2C35"),
	BgSubtle:  lipgloss.Color("#3A3943"),

	Green:  lipgloss.Color("#00FFB2"),
	Cyan:   lipgloss.Color("#00A4FF"),
	Yellow: lipgloss.Color("#E8FE96"),
	Fatal:  lipgloss.Color("#FF577D"),
}

// appStyles groups all visual styles by semantic role.
type appStyles struct {
	// Shared styles used across multiple components
	Pane      lipgloss.Style // padded container for panes
	Label     lipgloss.Style // muted field labels
	Value     lipgloss.Style // normal field values
	EmptyText lipgloss.Style // faint empty-state text
	Prompt    lipgloss.Style // input prompts

	Header headerStyles
	Host   hostStyles
	Event  eventStyles
	Status statusStyles
	Dialog dialogStyles

	// Tooltip (hover popup)
	Tooltip tooltipStyles

	Help helpStyles

	// Scrollbar
	ScrollThumb lipgloss.Style
	ScrollTrack lipgloss.Style
}

type headerStyles struct {
	Brand    lipgloss.Style // "overlaykit" in bold primary
	Diagonal lipgloss.Style // diagonal fill chars
	Bar      lipgloss.Style // header bar background
	Info     lipgloss.Style // section header text in content areas
}

type hostStyles struct {
	Title       lipgloss.Style
	TitleActive lipgloss.Style
	Grid        lipgloss.Style
	Cursor      lipgloss.Style
}

type eventStyles struct {
	Time    lipgloss.Style
	Host    lipgloss.Style
	Present lipgloss.Style
	Select  lipgloss.Style
	Dismiss lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

type statusStyles struct {
	SuccessIcon lipgloss.Style
	SuccessMsg  lipgloss.Style
	ErrorIcon   lipgloss.Style
	ErrorMsg    lipgloss.Style
	WarnIcon    lipgloss.Style
	WarnMsg     lipgloss.Style
	InfoIcon    lipgloss.Style
	InfoMsg     lipgloss.Style
}

type dialogStyles struct {
	Box     lipgloss.Style // rounded border, primary colored
	Title   lipgloss.Style
	Content lipgloss.Style
}

type tooltipStyles struct {
	Box   lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

type helpStyles struct {
	Sep lipgloss.Style
}

var styles = defaultStyles()

func defaultStyles() appStyles {
	p := palette
	return appStyles{
		Pane: lipgloss.NewStyle().
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(p.Muted),
		Value: lipgloss.NewStyle().
			Foreground(p.Fg),
		EmptyText: lipgloss.NewStyle().
			Foreground(p.Faint).
			Faint(true),
		Prompt: lipgloss.NewStyle().
			Foreground(p.Tertiary),

		Header: headerStyles{
			Brand: lipgloss.NewStyle().
				Bold(true).
				Foreground(p.Primary),
			Diagonal: lipgloss.NewStyle().
				Foreground(p.Subtle),
			Bar: lipgloss.NewStyle().
				Background(p.BgLighter).
				Foreground(p.Fg),
			Info: lipgloss.NewStyle().
				Bold(true).
				Foreground(p.HeaderBlue),
		},

		Host: hostStyles{
			Title: lipgloss.NewStyle().
				Foreground(p.Muted),
			TitleActive: lipgloss.NewStyle().
				Bold(true).
				Foreground(p.HeaderBlue),
			Grid: lipgloss.NewStyle().
				Foreground(p.Dim),
			Cursor: lipgloss.NewStyle().
				Bold(true).
				Foreground(p.Secondary),
		},

		Event: eventStyles{
			Time:    lipgloss.NewStyle().Foreground(p.Subtle),
			Host:    lipgloss.NewStyle().Foreground(p.Muted),
			Present: lipgloss.NewStyle().Foreground(p.Green),
			Select:  lipgloss.NewStyle().Foreground(p.Cyan),
			Dismiss: lipgloss.NewStyle().Foreground(p.Yellow),
			Error:   lipgloss.NewStyle().Foreground(p.Fatal),
			Info:    lipgloss.NewStyle().Foreground(p.Faint),
		},

		Status: statusStyles{
			SuccessIcon: lipgloss.NewStyle().Foreground(p.Green),
			SuccessMsg:  lipgloss.NewStyle().Foreground(p.Green),
			ErrorIcon:   lipgloss.NewStyle().Foreground(p.Fatal),
			ErrorMsg:    lipgloss.NewStyle().Foreground(p.Fatal),
			WarnIcon:    lipgloss.NewStyle().Foreground(p.Yellow),
			WarnMsg:     lipgloss.NewStyle().Foreground(p.Yellow),
			InfoIcon:    lipgloss.NewStyle().Foreground(p.Cyan),
			InfoMsg:     lipgloss.NewStyle().Foreground(p.Faint),
		},

		Dialog: dialogStyles{
			Box: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.Primary).
				Background(p.BgLighter).
				Padding(1, 2),
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(p.Primary),
			Content: lipgloss.NewStyle().
				Foreground(p.Fg),
		},

		Tooltip: tooltipStyles{
			Box: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.Primary).
				Background(p.BgLighter).
				Padding(0, 1),
			Label: lipgloss.NewStyle().
				Foreground(p.Muted),
			Value: lipgloss.NewStyle().
				Foreground(p.Fg),
		},

		Help: helpStyles{
			Sep: lipgloss.NewStyle().
				Foreground(p.Dim),
		},

		ScrollThumb: lipgloss.NewStyle().
			Foreground(p.Primary),
		ScrollTrack: lipgloss.NewStyle().
			Foreground(p.Dim),
	}
}

// padContentBg pads each line of content to the widest line's visual width
// using background-colored spaces. This fixes background fill inside bordered
// containers where lipgloss's ANSI resets prevent background inheritance.
func padContentBg(content string, bg color.Color) string {
	lines := strings.Split(content, "\n")
	maxW := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	if maxW == 0 {
		return content
	}
	bgStyle := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		if w := lipgloss.Width(line); w < maxW {
			lines[i] = line + bgStyle.Render(strings.Repeat(" ", maxW-w))
		}
	}
	return strings.Join(lines, "\n")
}
