package main

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/golangsnmp/overlaykit/internal/overlay"
)

const maxLogEntries = 500

type eventKind int

const (
	eventInfo eventKind = iota
	eventPresent
	eventSelect
	eventDismiss
	eventError
)

func (k eventKind) String() string {
	switch k {
	case eventPresent:
		return "present"
	case eventSelect:
		return "select"
	case eventDismiss:
		return "dismiss"
	case eventError:
		return "error"
	default:
		return "info"
	}
}

type logEntry struct {
	at   time.Time
	host string
	kind eventKind
	text string
}

// selection is a row picked in an overlay, waiting for the app to act on it.
type selection struct {
	host   *hostPane
	format overlay.Format
	touch  image.Point
	index  int
	label  string
}

// eventLog collects overlay callbacks from every host pane and shows them
// in the log pane.
type eventLog struct {
	now     func() time.Time
	logger  *slog.Logger
	entries []logEntry
	pending []selection
	lv      ListView[logEntry]
}

func newEventLog(logger *slog.Logger) *eventLog {
	return &eventLog{
		now:    time.Now,
		logger: logger,
		lv:     NewListView[logEntry](1),
	}
}

func (e *eventLog) add(host string, kind eventKind, text string) {
	e.entries = append(e.entries, logEntry{at: e.now(), host: host, kind: kind, text: text})
	if len(e.entries) > maxLogEntries {
		e.entries = e.entries[len(e.entries)-maxLogEntries:]
	}
	e.lv.SetRows(e.entries)
	e.logger.Info(text, "host", host, "event", kind)
}

func (e *eventLog) addf(host string, kind eventKind, format string, args ...any) {
	e.add(host, kind, fmt.Sprintf(format, args...))
}

func (e *eventLog) clear() {
	e.entries = nil
	e.lv.SetRows(nil)
}

// drain returns and forgets the selections recorded since the last call.
func (e *eventLog) drain() []selection {
	s := e.pending
	e.pending = nil
	return s
}

func (e *eventLog) setSize(width, height int) {
	e.lv.SetSize(width, height)
}

func (e *eventLog) view() string {
	title := styles.Header.Info.Render("Events")
	if !e.lv.Following() {
		title += styles.Label.Render(" (scrolled)")
	}
	if e.lv.Len() == 0 {
		return title + "\n" + styles.EmptyText.Render("nothing yet")
	}
	return title + "\n" + e.lv.Render(renderLogEntry)
}

func renderLogEntry(r logEntry, _ int, width int) string {
	var st lipgloss.Style
	switch r.kind {
	case eventPresent:
		st = styles.Event.Present
	case eventSelect:
		st = styles.Event.Select
	case eventDismiss:
		st = styles.Event.Dismiss
	case eventError:
		st = styles.Event.Error
	default:
		st = styles.Event.Info
	}
	line := styles.Event.Time.Render(r.at.Format("15:04:05.000")) + " " +
		styles.Event.Host.Render(fmt.Sprintf("%-5s", r.host)) + " " +
		st.Render(r.text)
	return ansi.Truncate(line, width, "…")
}
