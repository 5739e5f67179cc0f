package models

// Group represents one row group of a table.
type Group struct {
	// Index is the group's position in the table.
	Index int `json:"index"`
	// FirstRow is the first physical row (0-based, inclusive).
	FirstRow int `json:"first_row"`
	// LastRow is the last physical row (0-based, inclusive).
	LastRow int `json:"last_row"`
	// Columns is the column count of every row in the group.
	Columns int `json:"columns"`
	// Rows holds one entry per logical position, row by row.
	Rows [][]Cell `json:"rows"`
}

// Table represents the resolved grid of one table.
type Table struct {
	// ID uniquely identifies this extraction of the table.
	ID string `json:"id"`
	// Index is the table's position among the selected tables of the document.
	Index int `json:"index"`
	// Rows is the number of physical rows.
	Rows int `json:"rows"`
	// Groups contains the row groups in order.
	Groups []Group `json:"groups"`
	// Issues lists malformed spans found while mapping (optional).
	Issues []string `json:"issues,omitempty"`
}
