package document

// Table is an ordered grid of rows over fixed column widths. The zero value
// draws the format's default single-line borders; Borderless suppresses them
// for layout grids.
type Table struct {
	ColumnWidths []float64 // inches, fixed at creation
	Borderless   bool
	Rows         []*Row
}

func (*Table) isBlock() {}

// Cell returns the cell at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r.Cells) {
		return nil
	}
	return r.Cells[col]
}

// Row is one table row; height grows with content.
type Row struct {
	Cells []*Cell
}

// VerticalAlignment positions cell content on the vertical axis.
type VerticalAlignment int

const (
	VAlignTop VerticalAlignment = iota
	VAlignCenter
	VAlignBottom
)

// Cell owns an ordered stack of paragraphs. Insertion order is the visual
// stacking order.
type Cell struct {
	Shading *Color
	Margins *Margins // cell padding, inches
	VAlign  VerticalAlignment

	Paragraphs []*Paragraph
}

// AddParagraph appends an empty paragraph to the cell.
func (c *Cell) AddParagraph() *Paragraph {
	p := &Paragraph{}
	c.Paragraphs = append(c.Paragraphs, p)
	return p
}

// SetStyle applies shading, padding and vertical alignment in one call.
// A nil shading or margins leaves that aspect untouched.
func (c *Cell) SetStyle(shading *Color, margins *Margins, valign VerticalAlignment) {
	if shading != nil {
		c.Shading = shading
	}
	if margins != nil {
		m := *margins
		c.Margins = &m
	}
	c.VAlign = valign
}
