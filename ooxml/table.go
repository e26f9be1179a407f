package ooxml

import "encoding/xml"

// Table is w:tbl: properties, column grid, then rows.
type Table struct {
	XMLName xml.Name    `xml:"w:tbl"`
	Props   TableProps  `xml:"w:tblPr"`
	Grid    TableGrid   `xml:"w:tblGrid"`
	Rows    []*TableRow `xml:"w:tr"`
}

// TableProps is w:tblPr.
type TableProps struct {
	Width   *TableWidth   `xml:"w:tblW"`
	Borders *TableBorders `xml:"w:tblBorders"`
	Layout  *TableLayout  `xml:"w:tblLayout"`
}

// TableWidth is a measured width; Type "dxa" means W is in twips.
type TableWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

// TableLayout with Type "fixed" pins column widths against content pressure.
type TableLayout struct {
	Type string `xml:"w:type,attr"`
}

// TableBorders covers the six border positions of a table.
type TableBorders struct {
	Top     *BorderEdge `xml:"w:top"`
	Left    *BorderEdge `xml:"w:left"`
	Bottom  *BorderEdge `xml:"w:bottom"`
	Right   *BorderEdge `xml:"w:right"`
	InsideH *BorderEdge `xml:"w:insideH"`
	InsideV *BorderEdge `xml:"w:insideV"`
}

// NilBorders suppresses every border, the way the layout grids want it.
func NilBorders() *TableBorders {
	nilEdge := func() *BorderEdge {
		return &BorderEdge{Val: "nil", Sz: 0, Space: 0, Color: "FFFFFF"}
	}
	return &TableBorders{
		Top:     nilEdge(),
		Left:    nilEdge(),
		Bottom:  nilEdge(),
		Right:   nilEdge(),
		InsideH: nilEdge(),
		InsideV: nilEdge(),
	}
}

// TableGrid is w:tblGrid: one w:gridCol per column, widths in twips.
type TableGrid struct {
	Cols []GridCol `xml:"w:gridCol"`
}

type GridCol struct {
	W int `xml:"w:w,attr"`
}

// TableRow is w:tr.
type TableRow struct {
	Props *RowProps    `xml:"w:trPr"`
	Cells []*TableCell `xml:"w:tc"`
}

// RowProps is w:trPr; an auto-rule height lets the row grow with content.
type RowProps struct {
	Height *RowHeight `xml:"w:trHeight"`
}

type RowHeight struct {
	Val   int    `xml:"w:val,attr"`
	HRule string `xml:"w:hRule,attr"`
}

// TableCell is w:tc.
type TableCell struct {
	Props      *CellProps   `xml:"w:tcPr"`
	Paragraphs []*Paragraph `xml:"w:p"`
}

// CellProps is w:tcPr; field order follows the CT_TcPr sequence.
type CellProps struct {
	Width   *TableWidth  `xml:"w:tcW"`
	Shading *Shading     `xml:"w:shd"`
	Margins *CellMargins `xml:"w:tcMar"`
	VAlign  *Val         `xml:"w:vAlign"`
}

// Shading fills the cell background; Val "clear" with a Fill color is the
// plain solid fill every sidebar here uses.
type Shading struct {
	Val  string `xml:"w:val,attr,omitempty"`
	Fill string `xml:"w:fill,attr"`
}

// CellMargins is w:tcMar, each side a twips measure.
type CellMargins struct {
	Top    *TableWidth `xml:"w:top"`
	Left   *TableWidth `xml:"w:left"`
	Bottom *TableWidth `xml:"w:bottom"`
	Right  *TableWidth `xml:"w:right"`
}
