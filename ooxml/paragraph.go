package ooxml

import "encoding/xml"

// Paragraph is w:p. Child order (pPr before runs) is fixed by the schema.
type Paragraph struct {
	XMLName xml.Name        `xml:"w:p"`
	Props   *ParagraphProps `xml:"w:pPr"`
	Runs    []*Run          `xml:"w:r"`
}

// ParagraphProps is w:pPr; field order follows the CT_PPr sequence.
type ParagraphProps struct {
	KeepLines *Empty            `xml:"w:keepLines"`
	Borders   *ParagraphBorders `xml:"w:pBdr"`
	Spacing   *Spacing          `xml:"w:spacing"`
	Indent    *Indent           `xml:"w:ind"`
	Jc        *Val              `xml:"w:jc"`
	SectPr    *SectPr           `xml:"w:sectPr"`
}

// Empty marks presence-only toggle elements such as w:b and w:keepLines.
type Empty struct{}

// ParagraphBorders is w:pBdr with the schema's fixed edge order.
type ParagraphBorders struct {
	Top    *BorderEdge `xml:"w:top"`
	Left   *BorderEdge `xml:"w:left"`
	Bottom *BorderEdge `xml:"w:bottom"`
	Right  *BorderEdge `xml:"w:right"`
}

// BorderEdge is a single-line border; Sz is in eighths of a point.
type BorderEdge struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

// Spacing carries before/after in twips and line in 240ths.
type Spacing struct {
	Before   *int   `xml:"w:before,attr"`
	After    *int   `xml:"w:after,attr"`
	Line     *int   `xml:"w:line,attr"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

// Indent values are twips; negative values pull content into the margin.
type Indent struct {
	Left      *int `xml:"w:left,attr"`
	Right     *int `xml:"w:right,attr"`
	FirstLine *int `xml:"w:firstLine,attr"`
}

// Run is w:r. The original emitter marks unbreakable runs with a w:noBreak
// attribute on the run element; we preserve that extension.
type Run struct {
	XMLName xml.Name  `xml:"w:r"`
	NoBreak string    `xml:"w:noBreak,attr,omitempty"`
	Props   *RunProps `xml:"w:rPr"`
	Break   *Empty    `xml:"w:br"`
	Text    *Text     `xml:"w:t"`
	Drawing *Drawing  `xml:"w:drawing"`
}

// RunProps is w:rPr; field order follows the CT_RPr sequence.
type RunProps struct {
	Fonts  *RunFonts `xml:"w:rFonts"`
	Bold   *Empty    `xml:"w:b"`
	Italic *Empty    `xml:"w:i"`
	Color  *Val      `xml:"w:color"`
	Size   *Val      `xml:"w:sz"`
}

type RunFonts struct {
	ASCII string `xml:"w:ascii,attr,omitempty"`
	HAnsi string `xml:"w:hAnsi,attr,omitempty"`
}

// Text is w:t; Space must be "preserve" whenever the text has significant
// leading or trailing whitespace.
type Text struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}
