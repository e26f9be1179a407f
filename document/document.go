// Package document holds the in-memory model of a word-processing document:
// sections, tables, cells, paragraphs and runs, each carrying its own style.
// The model is format-agnostic; the ooxml and writer packages turn it into a
// packaged file. Construction is append-only and single-pass: a driver builds
// the tree, hands it to a writer, and discards it.
package document

import "fmt"

// Document is the root container.
type Document struct {
	// DefaultFont and DefaultSize seed the document-wide Normal style.
	DefaultFont string
	DefaultSize float64 // points

	Sections []*Section
}

// Section defines page geometry for a contiguous range of content.
type Section struct {
	Margins    Margins
	PageWidth  float64 // inches
	PageHeight float64 // inches
	Background *Color

	Blocks []Block
}

// Block is a top-level element of a section body: *Table or *Paragraph.
type Block interface {
	isBlock()
}

// Margins in inches.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from 8-bit components.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

// Hex renders the color as the six-digit uppercase form the container
// format uses, without a leading '#'.
func (c Color) Hex() string { return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B) }

// US Letter, the page size every driver here targets.
const (
	LetterWidth  = 8.5
	LetterHeight = 11.0
)

// New returns an empty document with the conventional Calibri baseline.
func New() *Document {
	return &Document{DefaultFont: "Calibri", DefaultSize: 9.5}
}

// AddSection appends a page-level section. Negative margins are a
// construction error; a nil background means plain white.
func (d *Document) AddSection(m Margins, background *Color) (*Section, error) {
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return nil, &ConfigError{Op: "AddSection", Reason: fmt.Sprintf("negative margin: %+v", m)}
	}
	s := &Section{
		Margins:    m,
		PageWidth:  LetterWidth,
		PageHeight: LetterHeight,
		Background: background,
	}
	d.Sections = append(d.Sections, s)
	return s, nil
}

// ContentWidth is the usable width between the left and right margins.
func (s *Section) ContentWidth() float64 {
	return s.PageWidth - s.Margins.Left - s.Margins.Right
}

// AddParagraph appends an empty paragraph to the section body.
func (s *Section) AddParagraph() *Paragraph {
	p := &Paragraph{}
	s.Blocks = append(s.Blocks, p)
	return p
}

// AddTable appends a rows×cols table with fixed column widths (inches).
// Widths never resize to fit content. len(widths) must equal cols.
func (s *Section) AddTable(rows, cols int, widths []float64) (*Table, error) {
	if rows < 1 || cols < 1 {
		return nil, &DimensionError{Op: "AddTable", Reason: fmt.Sprintf("table must be at least 1x1, got %dx%d", rows, cols)}
	}
	if len(widths) != cols {
		return nil, &DimensionError{Op: "AddTable", Reason: fmt.Sprintf("%d column widths for %d columns", len(widths), cols)}
	}
	t := &Table{ColumnWidths: append([]float64(nil), widths...)}
	for i := 0; i < rows; i++ {
		row := &Row{}
		for j := 0; j < cols; j++ {
			row.Cells = append(row.Cells, &Cell{})
		}
		t.Rows = append(t.Rows, row)
	}
	s.Blocks = append(s.Blocks, t)
	return t, nil
}
