package model

import "fmt"

// PageKind identifies the layout of a compiled page.
type PageKind string

const (
	PageHeader PageKind = "header"
	PageTable  PageKind = "table"
	PageNotes  PageKind = "notes"
	PageImage  PageKind = "image"
)

// Document is the format-independent, ordered page list of a report export.
type Document struct {
	ReportID int64  `json:"report_id"`
	Title    string `json:"title"`
	Pages    []Page `json:"pages"`
}

// Page is one logical section. Only the fields matching Kind are set.
type Page struct {
	Kind   PageKind `json:"kind"`
	Title  string   `json:"title"`
	Fields []Field  `json:"fields,omitempty"`
	Table  *Table   `json:"table,omitempty"`
	Text   string   `json:"text,omitempty"`
	Image  *Image   `json:"image,omitempty"`
	Notice string   `json:"notice,omitempty"`
}

// Field is a label/value line of a header page.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Table struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// TableRow is a table line. Severity is set on prediction rows only.
type TableRow struct {
	Cells    []string `json:"cells"`
	Severity Severity `json:"severity,omitempty"`
}

// Summary renders a prediction row as "Model: Category (confidence)".
func (r TableRow) Summary() string {
	if len(r.Cells) < 3 {
		return ""
	}
	return fmt.Sprintf("%s: %s (%s)", r.Cells[0], r.Cells[1], r.Cells[2])
}

// ImagePages returns the image pages of d in order.
func (d Document) ImagePages() []Page {
	var pages []Page
	for _, p := range d.Pages {
		if p.Kind == PageImage {
			pages = append(pages, p)
		}
	}
	return pages
}
