package main

import (
	"fmt"
	"image"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/ultraviolet/layout"
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogHelp
	dialogProfiles
)

// dialogModel manages the modal dialogs (help, profile list).
type dialogModel struct {
	kind dialogKind
}

func (d *dialogModel) isOpen() bool {
	return d.kind != dialogNone
}

func (d *dialogModel) toggle(k dialogKind) {
	if d.kind == k {
		d.kind = dialogNone
		return
	}
	d.kind = k
}

// drawCentered draws content in a centered dialog box on the canvas.
func (d *dialogModel) drawCentered(canvas uv.ScreenBuffer, area image.Rectangle, content string) {
	// Fill background with dim overlay
	bgFill := styles.Header.Bar.Width(area.Dx()).Height(area.Dy()).Render("")
	uv.NewStyledString(bgFill).Draw(canvas, area)

	box := styles.Dialog.Box.Render(content)
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	rect := layout.CenterRect(area, w, h)
	uv.NewStyledString(box).Draw(canvas, rect)
}

// renderProfileList lists the loaded profiles, marking the active one.
func (m model) renderProfileList() string {
	ks := styles.Value.Bold(true)
	ds := styles.Label

	var b strings.Builder
	b.WriteString(styles.Dialog.Title.Render("Profiles"))
	b.WriteString("\n")
	b.WriteString(ds.Render(m.profiles.Path()))
	b.WriteString("\n")
	for i, p := range m.profiles.Profiles {
		mark := "  "
		if i == m.profileIdx {
			mark = styles.Status.SuccessIcon.Render(IconSuccess) + " "
		}
		a := p.Appearance()
		b.WriteString("\n")
		b.WriteString(mark + ks.Render(p.Summary()))
		b.WriteString("\n    ")
		b.WriteString(ds.Render(fmt.Sprintf("width %d, row height %d, border %d, arrow %d",
			a.PanelWidth, a.ContentHeight, a.BorderWidth, a.ArrowWidth)))
	}
	b.WriteString("\n\n")
	b.WriteString(ds.Render("p cycles, s saves, esc closes"))
	return padContentBg(b.String(), palette.BgLighter)
}
