package main

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

const statusDisplayDuration = 5 * time.Second

type statusType int

const (
	statusInfo statusType = iota
	statusSuccess
	statusWarn
	statusError
)

type statusMsg struct {
	typ  statusType
	text string
}

type clearStatusMsg struct {
	seq uint64
}

// statusModel manages typed status messages with auto-clear. A newer
// message restarts the clear timer.
type statusModel struct {
	current *statusMsg
	seq     uint64
}

func (s *statusModel) set(msg statusMsg) tea.Cmd {
	s.current = &msg
	s.seq++
	seq := s.seq
	return tea.Tick(statusDisplayDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (s *statusModel) clear(seq uint64) {
	if seq == s.seq {
		s.current = nil
	}
}

func (s *statusModel) view() string {
	if s.current == nil {
		return ""
	}

	var icon, msg string
	switch s.current.typ {
	case statusSuccess:
		icon = styles.Status.SuccessIcon.Render(IconSuccess)
		msg = styles.Status.SuccessMsg.Render(" " + s.current.text)
	case statusError:
		icon = styles.Status.ErrorIcon.Render(IconError)
		msg = styles.Status.ErrorMsg.Render(" " + s.current.text)
	case statusWarn:
		icon = styles.Status.WarnIcon.Render(IconWarn)
		msg = styles.Status.WarnMsg.Render(" " + s.current.text)
	default:
		icon = styles.Status.InfoIcon.Render(IconArrow)
		msg = styles.Status.InfoMsg.Render(" " + s.current.text)
	}
	return icon + msg
}

func setStatus(typ statusType, text string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{typ: typ, text: text}
	}
}
