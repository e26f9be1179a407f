// Package ooxml defines the WordprocessingML element types the writer
// marshals into word/document.xml, together with the unit conversions the
// schema requires. Nothing outside this package and the reader touches
// element names; the document model stays format-agnostic.
package ooxml

import "encoding/xml"

// Schema namespaces.
const (
	NSMain          = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NSRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NSDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	NSDrawingMain   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NSPicture       = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	NSPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Relationship types used inside the package.
const (
	RelTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeStyles   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeSettings = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RelTypeImage    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeCore     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeApp      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// Unit conversions. The schema measures widths and spacing in twips
// (twentieths of a point), font sizes in half-points, border widths in
// eighths of a point and drawing extents in EMU.
func TwipsFromInches(in float64) int { return int(in*1440 + 0.5) }

func TwipsFromPoints(pt float64) int { return round(pt * 20) }

func HalfPointsFromPoints(pt float64) int { return round(pt * 2) }

func EighthsFromPoints(pt float64) int { return round(pt * 8) }

func EMUFromPoints(pt float64) int64 { return int64(pt*12700 + 0.5) }

// Line spacing multipliers are expressed in 240ths with lineRule "auto".
func LineFromMultiplier(m float64) int { return round(m * 240) }

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// InchesFromTwips inverts TwipsFromInches; the reader uses it.
func InchesFromTwips(tw int) float64 { return float64(tw) / 1440 }

// PointsFromHalfPoints inverts HalfPointsFromPoints.
func PointsFromHalfPoints(hp int) float64 { return float64(hp) / 2 }

// Document is the root of word/document.xml.
type Document struct {
	XMLName    xml.Name    `xml:"w:document"`
	XmlnsW     string      `xml:"xmlns:w,attr"`
	XmlnsR     string      `xml:"xmlns:r,attr"`
	XmlnsWP    string      `xml:"xmlns:wp,attr"`
	XmlnsA     string      `xml:"xmlns:a,attr"`
	XmlnsPic   string      `xml:"xmlns:pic,attr"`
	Background *Background `xml:"w:background"`
	Body       Body        `xml:"w:body"`
}

// NewDocument returns a root element with all namespaces declared.
func NewDocument() *Document {
	return &Document{
		XmlnsW:   NSMain,
		XmlnsR:   NSRelationships,
		XmlnsWP:  NSDrawing,
		XmlnsA:   NSDrawingMain,
		XmlnsPic: NSPicture,
	}
}

// Background sets the page background color; rendering it additionally
// requires displayBackgroundShape in word/settings.xml.
type Background struct {
	Color string `xml:"w:color,attr"`
}

// Body holds the interleaved block sequence followed by the final section
// properties. Blocks carries *Table and *Paragraph values; each marshals
// under its own XMLName, preserving declaration order.
type Body struct {
	Blocks []interface{}
	SectPr *SectPr `xml:"w:sectPr"`
}

// Val is the ubiquitous single-attribute element.
type Val struct {
	Val string `xml:"w:val,attr"`
}

// SectPr carries page size and margins, both in twips.
type SectPr struct {
	PgSz  PgSz  `xml:"w:pgSz"`
	PgMar PgMar `xml:"w:pgMar"`
}

type PgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type PgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}
