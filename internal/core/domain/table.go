package domain

import (
	"cmp"
	"slices"
	"strings"
)

// HeaderLabel is the text of the time column's header cell.
const HeaderLabel = "Time"

const (
	rankHeader = iota
	rankMissing
	rankData
)

// Row is one record of a wishlist table.
type Row struct {
	// Cells holds the visible text of each cell, left to right.
	Cells []string
	// Link is the item detail URL. Empty for the header row and for rows without a link.
	Link string
	// Marked is the zebra stripe flag, recomputed by SortTable.
	Marked bool
}

// Cell returns the text at column and whether the row has such a cell.
func (r *Row) Cell(column int) (string, bool) {
	if column < 0 || column >= len(r.Cells) {
		return "", false
	}
	return r.Cells[column], true
}

// SetCell writes text at column, padding the row with empty cells when it is
// shorter than that.
func (r *Row) SetCell(column int, text string) {
	if column < 0 {
		return
	}
	for len(r.Cells) <= column {
		r.Cells = append(r.Cells, "")
	}
	r.Cells[column] = text
}

// Table is the ordered set of rows the view layer renders.
type Table struct {
	Rows []*Row
	// TimeColumn is the index of the duration cell.
	TimeColumn int
	// HeaderLabel identifies the header row; HeaderLabel is used when empty.
	HeaderLabel string
}

func (t *Table) headerLabel() string {
	if t.HeaderLabel == "" {
		return HeaderLabel
	}
	return t.HeaderLabel
}

// IsHeader reports whether r is the table's header row.
func (t *Table) IsHeader(r *Row) bool {
	text, ok := r.Cell(t.TimeColumn)
	return ok && text == t.headerLabel()
}

// SortTable stably reorders t.Rows by the duration in column.
//
// The header row always comes first, followed by rows that have no cell at
// column, followed by the data rows in ascending order (descending when
// reverse is set). Zebra marks are then reassigned starting with the first
// row after the header.
func SortTable(t *Table, column int, reverse bool) {
	label := t.headerLabel()
	rank := func(r *Row) int {
		text, ok := r.Cell(column)
		switch {
		case !ok:
			return rankMissing
		case text == label:
			return rankHeader
		default:
			return rankData
		}
	}

	slices.SortStableFunc(t.Rows, func(a, b *Row) int {
		ra, rb := rank(a), rank(b)
		if ra != rb {
			return cmp.Compare(ra, rb)
		}
		if ra != rankData {
			return 0
		}
		c := CompareDurations(strings.TrimSpace(a.Cells[column]), strings.TrimSpace(b.Cells[column]))
		if reverse {
			return -c
		}
		return c
	})

	for i, r := range t.Rows {
		r.Marked = i%2 == 1
	}
}

// SortState remembers the direction of the next sort, like a clickable header.
type SortState struct {
	Descending bool
	sorted     bool
}

// Toggle sorts t by its time column in the current direction and flips the
// direction for the next call.
func (s *SortState) Toggle(t *Table) {
	SortTable(t, t.TimeColumn, s.Descending)
	s.Descending = !s.Descending
	s.sorted = true
}

// Applied returns the direction of the last Toggle and whether one happened.
func (s *SortState) Applied() (descending, sorted bool) {
	if !s.sorted {
		return false, false
	}
	return !s.Descending, true
}
