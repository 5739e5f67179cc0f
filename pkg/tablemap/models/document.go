package models

// Document represents the tables extracted from one HTML source.
type Document struct {
	// Source is the input file name (no path) or caller-supplied name.
	Source string `json:"source"`
	// Tables contains the resolved tables in document order.
	Tables []Table `json:"tables"`
}
