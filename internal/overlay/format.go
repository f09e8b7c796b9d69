package overlay

// Format selects the layout rules and animation profile of an overlay.
type Format int

const (
	SideMenu Format = iota
	MenuOverlay
	DescriptionOverlay
)

func (f Format) String() string {
	switch f {
	case SideMenu:
		return "side-menu"
	case MenuOverlay:
		return "menu"
	case DescriptionOverlay:
		return "description"
	default:
		return "unknown"
	}
}

// ParseFormat maps the names produced by String back to a Format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "side-menu":
		return SideMenu, true
	case "menu":
		return MenuOverlay, true
	case "description":
		return DescriptionOverlay, true
	}
	return 0, false
}

// docked reports whether the format hangs off a host edge instead of the
// touch point.
func (f Format) docked() bool { return f == SideMenu }
