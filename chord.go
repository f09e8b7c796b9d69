package main

import (
	"strings"

	"github.com/golangsnmp/overlaykit/internal/overlay"
)

// chordAction is a single sub-key action within a chord group.
type chordAction struct {
	key    string
	label  string
	format overlay.Format
}

// chordGroup is a prefix key with its available sub-actions.
type chordGroup struct {
	prefix  string
	label   string
	actions []chordAction
}

// chordGroups returns the static chord group definitions.
func chordGroups() []chordGroup {
	return []chordGroup{
		{
			prefix: "o",
			label:  "Open at cursor",
			actions: []chordAction{
				{key: "m", label: "menu", format: overlay.MenuOverlay},
				{key: "d", label: "description", format: overlay.DescriptionOverlay},
				{key: "s", label: "side menu", format: overlay.SideMenu},
			},
		},
	}
}

func findChord(prefix, key string) (chordAction, bool) {
	for _, g := range chordGroups() {
		if g.prefix != prefix {
			continue
		}
		for _, a := range g.actions {
			if a.key == key {
				return a, true
			}
		}
	}
	return chordAction{}, false
}

// renderChordHint builds the popup content for a chord group.
func renderChordHint(group chordGroup) string {
	ks := styles.Value.Bold(true)
	ds := styles.Label

	var b strings.Builder
	b.WriteString(styles.Dialog.Title.Render(group.label))
	b.WriteString("\n")

	for _, a := range group.actions {
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(ks.Render(a.key))
		b.WriteString("  ")
		b.WriteString(ds.Render(a.label))
	}

	return padContentBg(b.String(), palette.BgLighter)
}
