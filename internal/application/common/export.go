package common

// Table is a titled grid of values for spreadsheet export
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
}

// TableExporter renders tables to a downloadable document
type TableExporter interface {
	ExportXLSX(tables ...Table) ([]byte, error)
}

// Label is one printable tag. Code is printed as a QR code next to the text.
type Label struct {
	Code  string
	Title string
	Lines []string
}

// Field is a labelled value in a document header
type Field struct {
	Label string
	Value string
}

// Document is a printable form with header fields, a line table and signature blocks
type Document struct {
	Title      string
	Number     string
	Fields     []Field
	Table      Table
	Totals     []Field
	Signatures []string
	Footer     string
}

// DocumentRenderer renders labels and documents to PDF
type DocumentRenderer interface {
	RenderLabels(title string, labels []Label) ([]byte, error)
	RenderDocument(doc Document) ([]byte, error)
}
