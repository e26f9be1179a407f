package ooxml

import (
	"encoding/xml"
	"strconv"
)

// Types is [Content_Types].xml.
type Types struct {
	XMLName   xml.Name   `xml:"Types"`
	Xmlns     string     `xml:"xmlns,attr"`
	Defaults  []Default  `xml:"Default"`
	Overrides []Override `xml:"Override"`
}

type Default struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type Override struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Relationships is a .rels part.
type Relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Rels    []Relationship `xml:"Relationship"`
}

type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// Styles is a minimal word/styles.xml: document defaults plus the Normal
// style, enough to carry the document-wide baseline font.
type Styles struct {
	XMLName     xml.Name    `xml:"w:styles"`
	XmlnsW      string      `xml:"xmlns:w,attr"`
	DocDefaults DocDefaults `xml:"w:docDefaults"`
	Styles      []StyleDef  `xml:"w:style"`
}

type DocDefaults struct {
	RPrDefault RPrDefault `xml:"w:rPrDefault"`
}

type RPrDefault struct {
	RPr RunProps `xml:"w:rPr"`
}

type StyleDef struct {
	Type    string    `xml:"w:type,attr"`
	Default string    `xml:"w:default,attr,omitempty"`
	StyleID string    `xml:"w:styleId,attr"`
	Name    Val       `xml:"w:name"`
	RPr     *RunProps `xml:"w:rPr"`
}

// NewStyles builds the styles part for a default font and size in points.
func NewStyles(font string, sizePts float64) *Styles {
	rpr := RunProps{
		Fonts: &RunFonts{ASCII: font, HAnsi: font},
		Size:  &Val{Val: strconv.Itoa(HalfPointsFromPoints(sizePts))},
	}
	return &Styles{
		XmlnsW:      NSMain,
		DocDefaults: DocDefaults{RPrDefault: RPrDefault{RPr: rpr}},
		Styles: []StyleDef{
			{Type: "paragraph", Default: "1", StyleID: "Normal", Name: Val{Val: "Normal"}},
		},
	}
}

// Settings is word/settings.xml; it exists only to switch the page
// background shape on when a section declares a background color.
type Settings struct {
	XMLName    xml.Name `xml:"w:settings"`
	XmlnsW     string   `xml:"xmlns:w,attr"`
	Background *Empty   `xml:"w:displayBackgroundShape"`
}

// CoreProperties is docProps/core.xml.
type CoreProperties struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Description    string   `xml:"dc:description,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
}

// AppProperties is docProps/app.xml.
type AppProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
}

const (
	NSCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	NSDublinCore    = "http://purl.org/dc/elements/1.1/"
	NSExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
)

// Content types for the parts this package emits.
const (
	CTDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	CTStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	CTSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	CTCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	CTApp      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	CTRels     = "application/vnd.openxmlformats-package.relationships+xml"
	CTXML      = "application/xml"
	CTPng      = "image/png"
)
