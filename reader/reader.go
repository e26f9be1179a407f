// Package reader re-parses a packaged document into an ordered block tree.
// It exists so a written package can be inspected and verified: the writer
// and this reader together form the round-trip contract that serialization
// preserves node order and style attributes.
package reader

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"wordkit/ooxml"
)

// Document is the re-parsed tree. Blocks preserves the interleaved order
// of tables and paragraphs as declared in the package.
type Document struct {
	Background string // page background hex, or ""
	PageWidth  float64
	PageHeight float64
	MarginTop, MarginBottom, MarginLeft, MarginRight float64

	Blocks []Block
}

// Block is *Table or *Paragraph.
type Block interface {
	isBlock()
}

type Table struct {
	ColumnWidths []float64 // inches
	Rows         []*Row
}

func (*Table) isBlock() {}

type Row struct {
	Cells []*Cell
}

type Cell struct {
	Shading    string // fill hex, or ""
	VAlign     string // "", "center", "bottom"
	Paragraphs []*Paragraph
}

type Paragraph struct {
	Alignment string // "", "center", "right", "both"
	Runs      []*Run
}

func (*Paragraph) isBlock() {}

type Run struct {
	Text    string
	Font    string
	Size    float64 // points; 0 when inherited
	Color   string
	Bold    bool
	Italic  bool
	NoBreak bool
	IsImage bool
	IsBreak bool
}

// Paragraphs returns every paragraph in document order, flattening tables.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range d.Blocks {
		switch blk := b.(type) {
		case *Paragraph:
			out = append(out, blk)
		case *Table:
			for _, row := range blk.Rows {
				for _, cell := range row.Cells {
					out = append(out, cell.Paragraphs...)
				}
			}
		}
	}
	return out
}

// Open reads a package from disk.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}
	return Parse(data)
}

// Parse reads a package from memory.
func Parse(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("word/document.xml not found in package")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document part: %w", err)
	}
	defer rc.Close()

	return parseDocument(rc)
}

// parseDocument walks word/document.xml with a streaming decoder, keeping
// block order intact (struct unmarshaling would split tables from
// paragraphs into separate slices).
func parseDocument(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse document part: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "background":
			doc.Background = attr(se, "color")
			skip(dec)
		case "tbl":
			tbl, err := parseTable(dec)
			if err != nil {
				return nil, err
			}
			doc.Blocks = append(doc.Blocks, tbl)
		case "p":
			par, err := parseParagraph(dec)
			if err != nil {
				return nil, err
			}
			doc.Blocks = append(doc.Blocks, par)
		case "sectPr":
			if err := parseSectPr(dec, doc); err != nil {
				return nil, err
			}
		}
	}
}

func parseTable(dec *xml.Decoder) (*Table, error) {
	tbl := &Table{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse table: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gridCol":
				if w, err := strconv.Atoi(attr(t, "w")); err == nil {
					tbl.ColumnWidths = append(tbl.ColumnWidths, ooxml.InchesFromTwips(w))
				}
				skip(dec)
			case "tr":
				row, err := parseRow(dec)
				if err != nil {
					return nil, err
				}
				tbl.Rows = append(tbl.Rows, row)
			}
		case xml.EndElement:
			if t.Name.Local == "tbl" {
				return tbl, nil
			}
		}
	}
}

func parseRow(dec *xml.Decoder) (*Row, error) {
	row := &Row{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse row: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tc" {
				cell, err := parseCell(dec)
				if err != nil {
					return nil, err
				}
				row.Cells = append(row.Cells, cell)
			}
		case xml.EndElement:
			if t.Name.Local == "tr" {
				return row, nil
			}
		}
	}
}

func parseCell(dec *xml.Decoder) (*Cell, error) {
	cell := &Cell{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse cell: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "shd":
				cell.Shading = attr(t, "fill")
				skip(dec)
			case "vAlign":
				cell.VAlign = attr(t, "val")
				skip(dec)
			case "p":
				par, err := parseParagraph(dec)
				if err != nil {
					return nil, err
				}
				cell.Paragraphs = append(cell.Paragraphs, par)
			}
		case xml.EndElement:
			if t.Name.Local == "tc" {
				return cell, nil
			}
		}
	}
}

func parseParagraph(dec *xml.Decoder) (*Paragraph, error) {
	par := &Paragraph{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse paragraph: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "jc":
				par.Alignment = attr(t, "val")
				skip(dec)
			case "r":
				run, err := parseRun(dec, &t)
				if err != nil {
					return nil, err
				}
				par.Runs = append(par.Runs, run)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return par, nil
			}
		}
	}
}

func parseRun(dec *xml.Decoder, start *xml.StartElement) (*Run, error) {
	run := &Run{NoBreak: attr(*start, "noBreak") == "1"}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse run: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rFonts":
				run.Font = attr(t, "ascii")
				skip(dec)
			case "b":
				run.Bold = true
				skip(dec)
			case "i":
				run.Italic = true
				skip(dec)
			case "color":
				run.Color = attr(t, "val")
				skip(dec)
			case "sz":
				if hp, err := strconv.Atoi(attr(t, "val")); err == nil {
					run.Size = ooxml.PointsFromHalfPoints(hp)
				}
				skip(dec)
			case "br":
				run.IsBreak = true
				skip(dec)
			case "t":
				var text struct {
					Value string `xml:",chardata"`
				}
				if err := dec.DecodeElement(&text, &t); err != nil {
					return nil, fmt.Errorf("parse run text: %w", err)
				}
				run.Text = text.Value
			case "drawing":
				run.IsImage = true
				skip(dec)
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return run, nil
			}
		}
	}
}

func parseSectPr(dec *xml.Decoder, doc *Document) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse section properties: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pgSz":
				doc.PageWidth = twipAttr(t, "w")
				doc.PageHeight = twipAttr(t, "h")
				skip(dec)
			case "pgMar":
				doc.MarginTop = twipAttr(t, "top")
				doc.MarginBottom = twipAttr(t, "bottom")
				doc.MarginLeft = twipAttr(t, "left")
				doc.MarginRight = twipAttr(t, "right")
				skip(dec)
			}
		case xml.EndElement:
			if t.Name.Local == "sectPr" {
				return nil
			}
		}
	}
}

func twipAttr(se xml.StartElement, name string) float64 {
	v, err := strconv.Atoi(attr(se, name))
	if err != nil {
		return 0
	}
	return ooxml.InchesFromTwips(v)
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func skip(dec *xml.Decoder) {
	// Element-level skip; the outer token loop surfaces malformed XML.
	_ = dec.Skip()
}
