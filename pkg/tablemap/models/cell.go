// Package models defines data structures for resolved table grids.
package models

// Cell kinds.
const (
	KindOrigin     = "origin"
	KindInherited  = "inherited"
	KindUnresolved = "unresolved"
)

// Cell is one logical position of a row group and the cell owning it.
type Cell struct {
	// Kind is "origin", "inherited" or "unresolved".
	Kind string `json:"kind"`
	// R is the physical row index (0-based).
	R int `json:"r"`
	// C is the column index (0-based).
	C int `json:"c"`
	// OwnerRow is the physical row the owning cell starts in.
	OwnerRow int `json:"owner_row"`
	// OwnerCol is the leftmost column the owning cell covers.
	OwnerCol int `json:"owner_col"`
	// Index is the owning cell's position among its row's cells (-1 if unresolved).
	Index int `json:"index"`
	// RowSpan is the number of rows the owning cell covers within its group.
	RowSpan int `json:"rowspan,omitempty"`
	// ColSpan is the number of columns the owning cell covers.
	ColSpan int `json:"colspan,omitempty"`
	// Range is the owning cell's area in A1 notation (e.g., "A1:B2").
	Range string `json:"range,omitempty"`
	// V is the owning cell's text, typed as int64, float64 or string.
	V interface{} `json:"v,omitempty"`
}

// IsAnchor reports whether the position is the owning cell's top-left corner.
func (c Cell) IsAnchor() bool {
	return c.Kind == KindOrigin && c.R == c.OwnerRow && c.C == c.OwnerCol
}
