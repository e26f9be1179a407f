package ooxml

import "fmt"

// Drawing is the inline-image chain w:drawing → wp:inline → a:graphic →
// pic:pic. The shape is fixed; only extent, the relationship id and the
// numeric id vary per image.
type Drawing struct {
	Inline Inline `xml:"wp:inline"`
}

type Inline struct {
	DistT   int     `xml:"distT,attr"`
	DistB   int     `xml:"distB,attr"`
	DistL   int     `xml:"distL,attr"`
	DistR   int     `xml:"distR,attr"`
	Extent  Extent  `xml:"wp:extent"`
	DocPr   DocPr   `xml:"wp:docPr"`
	Graphic Graphic `xml:"a:graphic"`
}

// Extent is the rendered size in EMU.
type Extent struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type DocPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type Graphic struct {
	Data GraphicData `xml:"a:graphicData"`
}

type GraphicData struct {
	URI string `xml:"uri,attr"`
	Pic Pic    `xml:"pic:pic"`
}

type Pic struct {
	NvPicPr  NvPicPr  `xml:"pic:nvPicPr"`
	BlipFill BlipFill `xml:"pic:blipFill"`
	SpPr     SpPr     `xml:"pic:spPr"`
}

type NvPicPr struct {
	CNvPr    CNvPr `xml:"pic:cNvPr"`
	CNvPicPr Empty `xml:"pic:cNvPicPr"`
}

type CNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type BlipFill struct {
	Blip    Blip    `xml:"a:blip"`
	Stretch Stretch `xml:"a:stretch"`
}

type Blip struct {
	Embed string `xml:"r:embed,attr"`
}

type Stretch struct {
	FillRect Empty `xml:"a:fillRect"`
}

type SpPr struct {
	Xfrm     Xfrm     `xml:"a:xfrm"`
	PrstGeom PrstGeom `xml:"a:prstGeom"`
}

type Xfrm struct {
	Off Offset `xml:"a:off"`
	Ext Extent `xml:"a:ext"`
}

type Offset struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type PrstGeom struct {
	Prst  string `xml:"prst,attr"`
	AvLst Empty  `xml:"a:avLst"`
}

// NewInlineImage assembles the full drawing chain for one embedded picture.
func NewInlineImage(id int, relID string, cxEMU, cyEMU int64) *Drawing {
	name := fmt.Sprintf("Picture %d", id)
	return &Drawing{
		Inline: Inline{
			Extent: Extent{Cx: cxEMU, Cy: cyEMU},
			DocPr:  DocPr{ID: id, Name: name},
			Graphic: Graphic{
				Data: GraphicData{
					URI: NSPicture,
					Pic: Pic{
						NvPicPr: NvPicPr{CNvPr: CNvPr{ID: id, Name: name}},
						BlipFill: BlipFill{
							Blip: Blip{Embed: relID},
						},
						SpPr: SpPr{
							Xfrm:     Xfrm{Ext: Extent{Cx: cxEMU, Cy: cyEMU}},
							PrstGeom: PrstGeom{Prst: "rect"},
						},
					},
				},
			},
		},
	}
}
