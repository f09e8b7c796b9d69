package main

import (
	"image"
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
)

// newStyledInput creates a textinput with the standard prompt styling applied.
func newStyledInput(prompt string, charLimit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = charLimit
	s := ti.Styles()
	s.Focused.Prompt = styles.Prompt
	s.Blurred.Prompt = styles.Prompt
	ti.SetStyles(s)
	return ti
}

// tabCompleter handles prefix-based tab completion with match cycling.
type tabCompleter struct {
	matches    []string
	matchIdx   int
	lastPrefix string
}

func (tc *tabCompleter) reset() {
	tc.matches = nil
	tc.matchIdx = 0
	tc.lastPrefix = ""
}

// complete returns the next match for the given prefix from candidates.
// When the prefix changes, matches are rebuilt. Returns empty string and
// false if no candidates match.
func (tc *tabCompleter) complete(prefix string, candidates []string) (string, bool) {
	if prefix != tc.lastPrefix {
		tc.lastPrefix = prefix
		tc.matches = tc.matches[:0]
		tc.matchIdx = 0
		prefixLow := strings.ToLower(prefix)
		for _, c := range candidates {
			if strings.HasPrefix(strings.ToLower(c), prefixLow) {
				tc.matches = append(tc.matches, c)
			}
		}
	}
	if len(tc.matches) == 0 {
		return "", false
	}
	result := tc.matches[tc.matchIdx]
	tc.matchIdx = (tc.matchIdx + 1) % len(tc.matches)
	return result, true
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// clampRect places a w by h box at (x, y), shifted so it stays inside area.
func clampRect(x, y, w, h int, area image.Rectangle) image.Rectangle {
	if x+w > area.Max.X {
		x = area.Max.X - w
	}
	if x < area.Min.X {
		x = area.Min.X
	}
	if y+h > area.Max.Y {
		y = area.Max.Y - h
	}
	if y < area.Min.Y {
		y = area.Min.Y
	}
	return image.Rect(x, y, x+w, y+h)
}
