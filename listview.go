package main

import "strings"

// RenderFunc renders a single row in a ListView.
// index is the absolute row index and width is the available content width
// (already adjusted for scrollbar).
type RenderFunc[R any] func(row R, index int, width int) string

// ListView is a generic scrollable list that can follow its tail.
// R is the row data type.
type ListView[R any] struct {
	rows     []R
	offset   int
	width    int
	height   int
	reserved int  // lines not available for rows (headers, etc.)
	follow   bool // keep the last row visible as rows are appended
}

// NewListView creates a ListView with the given number of reserved lines
// that follows its tail.
func NewListView[R any](reserved int) ListView[R] {
	return ListView[R]{reserved: reserved, follow: true}
}

// SetRows replaces the row data. A following list scrolls to the end.
func (lv *ListView[R]) SetRows(rows []R) {
	lv.rows = rows
	if lv.follow {
		lv.GoBottom()
		return
	}
	lv.clamp()
}

// SetSize sets the total available width and height.
func (lv *ListView[R]) SetSize(width, height int) {
	lv.width = width
	lv.height = height
	if lv.follow {
		lv.GoBottom()
		return
	}
	lv.clamp()
}

// Len returns the number of rows.
func (lv *ListView[R]) Len() int { return len(lv.rows) }

// Offset returns the current scroll offset.
func (lv *ListView[R]) Offset() int { return lv.offset }

// Following reports whether the list sticks to its last row.
func (lv *ListView[R]) Following() bool { return lv.follow }

// VisibleRows returns the number of rows that fit in the visible area.
func (lv *ListView[R]) VisibleRows() int {
	v := lv.height - lv.reserved
	if v < 1 {
		return 1
	}
	return v
}

func (lv *ListView[R]) maxOffset() int {
	return max(0, len(lv.rows)-lv.VisibleRows())
}

func (lv *ListView[R]) clamp() {
	lv.offset = max(0, min(lv.offset, lv.maxOffset()))
}

// ScrollBy moves the window by n rows (positive = down, negative = up).
// Scrolling to the end resumes following.
func (lv *ListView[R]) ScrollBy(n int) {
	lv.offset += n
	lv.clamp()
	lv.follow = lv.offset == lv.maxOffset()
}

// GoBottom shows the last rows and resumes following.
func (lv *ListView[R]) GoBottom() {
	lv.offset = lv.maxOffset()
	lv.follow = true
}

// Render iterates the visible window, calls fn for each row and joins the
// results with newlines. When the rows overflow, the last column is given to
// a scroll indicator.
func (lv *ListView[R]) Render(fn RenderFunc[R]) string {
	if len(lv.rows) == 0 {
		return ""
	}

	vis := lv.VisibleRows()
	needScroll := len(lv.rows) > vis
	contentW := lv.width
	if needScroll {
		contentW = lv.width - 1
	}
	end := min(lv.offset+vis, len(lv.rows))

	var bar []string
	if needScroll {
		bar = lv.scrollColumn(end - lv.offset)
	}

	var b strings.Builder
	for i := lv.offset; i < end; i++ {
		if i > lv.offset {
			b.WriteByte('\n')
		}
		line := fn(lv.rows[i], i, contentW)
		if bar != nil {
			line = padRight(line, contentW) + bar[i-lv.offset]
		}
		b.WriteString(line)
	}
	return b.String()
}

// scrollColumn returns one styled cell per visible line. The thumb covers
// the share of rows on screen, at least one cell, and sits on the last cell
// whenever the list follows its tail.
func (lv *ListView[R]) scrollColumn(height int) []string {
	total, vis := len(lv.rows), lv.VisibleRows()
	thumb := max(1, height*vis/total)
	pos := (height - thumb) * lv.offset / max(1, lv.maxOffset())
	if lv.follow {
		pos = height - thumb
	}
	pos = max(0, min(pos, height-thumb))

	col := make([]string, height)
	for i := range col {
		if i >= pos && i < pos+thumb {
			col[i] = styles.ScrollThumb.Render(ScrollThumbChar)
		} else {
			col[i] = styles.ScrollTrack.Render(ScrollTrackChar)
		}
	}
	return col
}
