// Package output serialises resolved tables.
package output

import (
	"encoding/json"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/models"
)

// ToJSON serialises a document.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	return marshal(doc, pretty)
}

// TableToJSON serialises a single table.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	return marshal(t, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
