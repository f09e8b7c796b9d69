package profile

// DefaultProfiles returns the profiles used when no file exists.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name: "default",
			Theme: Theme{
				CornerRadius:       1,
				BorderWidth:        1,
				PartitionThickness: 1,
				ArrowWidth:         1,
			},
			Menu: []Item{
				{Label: "Copy"},
				{Label: "Paste"},
				{Label: "Inspect cell", When: `format == "menu"`},
				{Label: "Open to the left", When: `horizontal == "left"`},
				{Label: "Open to the right", When: `horizontal == "right"`},
				{Label: "Remove", When: `host == "right"`},
			},
			SideMenu: []Item{
				{Label: "Home"},
				{Label: "Profiles"},
				{Label: "Event log"},
				{Label: "Settings"},
				{Label: "Quit demo", When: `height > 20`},
			},
			Description: Description{
				Header: "Overlay panels",
				Body: "Right click opens a menu, middle click this description " +
					"and a click on the outer column of a pane slides in the side menu. " +
					"Click outside a panel or press esc to close it.",
			},
		},
		{
			Name: "compact",
			Theme: Theme{
				Panel:              "#1B1A21",
				Text:               "#F1EFEF",
				Tint:               "#00A4FF",
				Width:              18,
				ContentHeight:      1,
				PartitionThickness: 0,
				ArrowWidth:         0,
			},
			Menu: []Item{
				{Label: "Copy"},
				{Label: "Paste"},
				{Label: "Select all"},
				{Label: "Lower half", When: `vertical == "above"`},
			},
			SideMenu: []Item{
				{Label: "Home"},
				{Label: "Back"},
			},
			Description: Description{
				Header: "Compact",
				Body:   "Single line rows, no border and no arrow.",
			},
		},
		{
			Name: "bold",
			Theme: Theme{
				Panel:              "#3A2E1F",
				Text:               "#FFE6B3",
				Tint:               "#FF8C00",
				Width:              30,
				ContentHeight:      3,
				BorderWidth:        2,
				PartitionThickness: 1,
				ArrowWidth:         3,
			},
			Menu: []Item{
				{Label: "Share"},
				{Label: "Duplicate"},
				{Label: "Archive", When: `y < height / 2`},
			},
			SideMenu: []Item{
				{Label: "Inbox"},
				{Label: "Archive"},
				{Label: "Trash"},
			},
			Description: Description{
				Header: "Thick borders",
				Body:   "A wide panel with a thick frame and a three cell arrow.",
			},
		},
	}
}
