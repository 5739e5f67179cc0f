package tablemap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/models"
	"github.com/ukaji3/tablemap-go/pkg/tablemap/parser"
)

// Extract maps every selected table of an HTML file.
func Extract(path string, opts Options) (*models.Document, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return extract(doc, filepath.Base(path), opts)
}

// ExtractReader maps every selected table of an HTML document read from r.
// source names the document in the result and in errors.
func ExtractReader(r io.Reader, source string, opts Options) (*models.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return extract(doc, source, opts)
}

// LoadDocument parses an HTML file.
func LoadDocument(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return doc, nil
}

// MapDocument builds a Mapper for every table of doc matched by
// Options.Selector, in document order. Malformed tables only fail with
// Options.Strict set; the first failure is returned as an *ExtractionError.
func MapDocument(doc *html.Node, source string, opts Options) ([]*Mapper, error) {
	logger := opts.logger()

	tables, err := parser.FindTables(doc, opts.selector())
	if err != nil {
		return nil, err
	}
	logger.Debug("selected tables", "source", source, "count", len(tables))

	var mappers []*Mapper
	for i, table := range tables {
		m, err := New(table, opts)
		if err != nil {
			return nil, NewExtractionError(source, i, err)
		}
		mappers = append(mappers, m)
	}
	return mappers, nil
}

// NewDocument converts mapped tables into a serialisable document.
func NewDocument(source string, mappers []*Mapper) *models.Document {
	doc := &models.Document{
		Source: source,
		Tables: make([]models.Table, 0, len(mappers)),
	}
	for i, m := range mappers {
		doc.Tables = append(doc.Tables, m.Model(i))
	}
	return doc
}

func extract(doc *html.Node, source string, opts Options) (*models.Document, error) {
	mappers, err := MapDocument(doc, source, opts)
	if err != nil {
		return nil, err
	}
	return NewDocument(source, mappers), nil
}
