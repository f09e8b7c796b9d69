package main

import (
	"image"

	"github.com/charmbracelet/ultraviolet/layout"
)

const (
	logHeightPct = 30
	minLogHeight = 4
)

func (m *model) generateLayout() appLayout {
	area := image.Rect(0, 0, m.width, m.height)

	// 1-cell horizontal margins (left/right border columns drawn here)
	area.Min.X += 1
	area.Max.X -= 1

	// Header bar (1 row)
	headerArea, rest := layout.SplitVertical(area, layout.Fixed(1))

	// Bottom: status + hints, one more row while the rule bar is open
	bottomH := 2
	if m.ruleBar.active {
		bottomH++
	}
	mainArea, bottomArea := layout.SplitVertical(rest, layout.Fixed(max(0, rest.Dy()-bottomH)))

	// Reserve 1 row each for top and bottom border lines
	contentArea := mainArea
	contentArea.Min.Y += 1
	contentArea.Max.Y -= 1

	logH := max(minLogHeight, contentArea.Dy()*logHeightPct/100)
	hostsArea, logArea := layout.SplitVertical(contentArea, layout.Fixed(max(0, contentArea.Dy()-logH)))
	logSepRect, logRect := layout.SplitVertical(logArea, layout.Fixed(1))

	// Left/right split: left | border col (1 col) | right
	leftAndSep, rightRect := layout.SplitHorizontal(hostsArea, layout.Percent(50))
	leftRect, sepRect := layout.SplitHorizontal(leftAndSep, layout.Fixed(max(0, leftAndSep.Dx()-1)))

	return appLayout{
		area:   image.Rect(0, 0, m.width, m.height),
		header: headerArea,
		left:   leftRect,
		sep:    sepRect,
		right:  rightRect,
		logSep: logSepRect,
		log:    logRect,
		bottom: bottomArea,
	}
}

// applyLayout resizes the host panes. Overlays already on screen keep the
// frame they were laid out with.
func (m *model) applyLayout(l appLayout) {
	m.hosts[0].rect = l.left
	m.hosts[1].rect = l.right
	m.moveCursor(0, 0)

	// Pane style uses Padding(0, 1).
	const panePad = 2
	m.events.setSize(max(0, l.log.Dx()-panePad), l.log.Dy())
	m.ruleBar.setSize(m.width)
	m.help.SetWidth(m.width)
}

func (m *model) updateLayout() {
	m.cachedLayout = m.generateLayout()
	m.applyLayout(m.cachedLayout)
}
