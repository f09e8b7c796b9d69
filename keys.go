package main

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	SwitchHost  key.Binding
	ChordOpen   key.Binding
	NextProfile key.Binding
	Profiles    key.Binding
	Copy        key.Binding
	Rule        key.Binding
	DismissAll  key.Binding
	ClearLog    key.Binding
	Snapshot    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "cursor right"),
		),
		SwitchHost: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		ChordOpen: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o ...", "open overlay"),
		),
		NextProfile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next profile"),
		),
		Profiles: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "list profiles"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),
		Rule: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "try condition"),
		),
		DismissAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss all"),
		),
		ClearLog: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear log"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ChordOpen, k.SwitchHost, k.NextProfile, k.Copy, k.DismissAll, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Cursor
		{k.Up, k.Down, k.Left, k.Right, k.SwitchHost},
		// Overlays
		{k.ChordOpen, k.DismissAll, k.Copy},
		// Meta
		{k.Rule, k.NextProfile, k.Profiles, k.ClearLog, k.Snapshot, k.Help, k.Quit},
	}
}
