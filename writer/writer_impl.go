package writer

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for media validation
	_ "image/png"
	"io"
	"os"
	"strings"
	"time"

	"wordkit/document"
	"wordkit/observability"
	"wordkit/ooxml"
)

type impl struct {
	log observability.Logger
}

func (wr *impl) Write(ctx context.Context, doc *document.Document, w io.Writer, cfg Config) error {
	p := &pkg{cfg: cfg, log: wr.log}
	if err := p.build(ctx, doc); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.flush(w)
}

type mediaPart struct {
	name string
	data []byte
}

type pkg struct {
	cfg Config
	log observability.Logger

	root    *ooxml.Document
	styles  *ooxml.Styles
	rels    []ooxml.Relationship
	media   []mediaPart
	hasJPEG bool
	showBG  bool

	imageCount int
}

// Fixed relationship ids for the non-media parts; images start after them.
const (
	relStyles   = "rId1"
	relSettings = "rId2"
)

func (p *pkg) build(ctx context.Context, doc *document.Document) error {
	p.root = ooxml.NewDocument()
	p.styles = ooxml.NewStyles(doc.DefaultFont, doc.DefaultSize)
	p.rels = []ooxml.Relationship{
		{ID: relStyles, Type: ooxml.RelTypeStyles, Target: "styles.xml"},
		{ID: relSettings, Type: ooxml.RelTypeSettings, Target: "settings.xml"},
	}

	for i, s := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Background != nil {
			// The container format has one background for the whole document.
			p.root.Background = &ooxml.Background{Color: s.Background.Hex()}
			p.showBG = true
		}
		last := i == len(doc.Sections)-1
		if err := p.convertSection(s, last); err != nil {
			return err
		}
	}
	if len(doc.Sections) == 0 {
		p.root.Body.SectPr = defaultSectPr()
	}
	return nil
}

func (p *pkg) convertSection(s *document.Section, last bool) error {
	for _, b := range s.Blocks {
		switch blk := b.(type) {
		case *document.Table:
			tbl, err := p.convertTable(blk)
			if err != nil {
				return err
			}
			p.root.Body.Blocks = append(p.root.Body.Blocks, tbl)
		case *document.Paragraph:
			par, err := p.convertParagraph(blk)
			if err != nil {
				return err
			}
			p.root.Body.Blocks = append(p.root.Body.Blocks, par)
		default:
			return &SerializationError{Part: "word/document.xml", Err: fmt.Errorf("unknown block type %T", b)}
		}
	}

	sectPr := sectPrFor(s)
	if last {
		p.root.Body.SectPr = sectPr
		return nil
	}
	// Interior section boundaries ride on an empty paragraph.
	p.root.Body.Blocks = append(p.root.Body.Blocks, &ooxml.Paragraph{
		Props: &ooxml.ParagraphProps{SectPr: sectPr},
	})
	return nil
}

func sectPrFor(s *document.Section) *ooxml.SectPr {
	return &ooxml.SectPr{
		PgSz: ooxml.PgSz{
			W: ooxml.TwipsFromInches(s.PageWidth),
			H: ooxml.TwipsFromInches(s.PageHeight),
		},
		PgMar: ooxml.PgMar{
			Top:    ooxml.TwipsFromInches(s.Margins.Top),
			Right:  ooxml.TwipsFromInches(s.Margins.Right),
			Bottom: ooxml.TwipsFromInches(s.Margins.Bottom),
			Left:   ooxml.TwipsFromInches(s.Margins.Left),
			Header: 720,
			Footer: 720,
		},
	}
}

func defaultSectPr() *ooxml.SectPr {
	return &ooxml.SectPr{
		PgSz:  ooxml.PgSz{W: ooxml.TwipsFromInches(document.LetterWidth), H: ooxml.TwipsFromInches(document.LetterHeight)},
		PgMar: ooxml.PgMar{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
	}
}

func (p *pkg) convertTable(t *document.Table) (*ooxml.Table, error) {
	total := 0
	grid := ooxml.TableGrid{}
	for _, w := range t.ColumnWidths {
		tw := ooxml.TwipsFromInches(w)
		total += tw
		grid.Cols = append(grid.Cols, ooxml.GridCol{W: tw})
	}

	out := &ooxml.Table{
		Props: ooxml.TableProps{
			Width:  &ooxml.TableWidth{W: total, Type: "dxa"},
			Layout: &ooxml.TableLayout{Type: "fixed"},
		},
		Grid: grid,
	}
	if t.Borderless {
		out.Props.Borders = ooxml.NilBorders()
	}

	for _, row := range t.Rows {
		tr := &ooxml.TableRow{
			Props: &ooxml.RowProps{Height: &ooxml.RowHeight{Val: 0, HRule: "auto"}},
		}
		for j, cell := range row.Cells {
			tc, err := p.convertCell(cell, t.ColumnWidths[j])
			if err != nil {
				return nil, err
			}
			tr.Cells = append(tr.Cells, tc)
		}
		out.Rows = append(out.Rows, tr)
	}
	return out, nil
}

func (p *pkg) convertCell(c *document.Cell, width float64) (*ooxml.TableCell, error) {
	props := &ooxml.CellProps{
		Width: &ooxml.TableWidth{W: ooxml.TwipsFromInches(width), Type: "dxa"},
	}
	if c.Shading != nil {
		props.Shading = &ooxml.Shading{Val: "clear", Fill: c.Shading.Hex()}
	}
	if c.Margins != nil {
		props.Margins = &ooxml.CellMargins{
			Top:    dxa(c.Margins.Top),
			Left:   dxa(c.Margins.Left),
			Bottom: dxa(c.Margins.Bottom),
			Right:  dxa(c.Margins.Right),
		}
	}
	switch c.VAlign {
	case document.VAlignCenter:
		props.VAlign = &ooxml.Val{Val: "center"}
	case document.VAlignBottom:
		props.VAlign = &ooxml.Val{Val: "bottom"}
	}

	tc := &ooxml.TableCell{Props: props}
	for _, par := range c.Paragraphs {
		op, err := p.convertParagraph(par)
		if err != nil {
			return nil, err
		}
		tc.Paragraphs = append(tc.Paragraphs, op)
	}
	// A cell must close with at least one paragraph.
	if len(tc.Paragraphs) == 0 {
		tc.Paragraphs = append(tc.Paragraphs, &ooxml.Paragraph{})
	}
	return tc, nil
}

func dxa(inches float64) *ooxml.TableWidth {
	return &ooxml.TableWidth{W: ooxml.TwipsFromInches(inches), Type: "dxa"}
}

func (p *pkg) convertParagraph(par *document.Paragraph) (*ooxml.Paragraph, error) {
	out := &ooxml.Paragraph{Props: paragraphProps(par)}

	for _, r := range par.Runs {
		if r.Image != nil {
			or, err := p.convertImageRun(r)
			if err != nil {
				return nil, err
			}
			if or != nil {
				out.Runs = append(out.Runs, or)
			}
			continue
		}
		out.Runs = append(out.Runs, textRuns(r)...)
	}
	return out, nil
}

func paragraphProps(par *document.Paragraph) *ooxml.ParagraphProps {
	props := &ooxml.ParagraphProps{}
	used := false

	if par.KeepTogether {
		props.KeepLines = &ooxml.Empty{}
		used = true
	}
	if len(par.Borders) > 0 {
		props.Borders = &ooxml.ParagraphBorders{}
		for _, b := range par.Borders {
			edge := &ooxml.BorderEdge{
				Val:   "single",
				Sz:    ooxml.EighthsFromPoints(b.Width),
				Space: 1,
				Color: b.Color.Hex(),
			}
			switch b.Edge {
			case document.EdgeTop:
				props.Borders.Top = edge
			case document.EdgeBottom:
				props.Borders.Bottom = edge
			case document.EdgeLeft:
				props.Borders.Left = edge
			case document.EdgeRight:
				props.Borders.Right = edge
			}
		}
		used = true
	}
	if par.SpaceBefore > 0 || par.SpaceAfter > 0 || par.LineSpacing > 0 {
		sp := &ooxml.Spacing{}
		if par.SpaceBefore > 0 {
			sp.Before = intp(ooxml.TwipsFromPoints(par.SpaceBefore))
		}
		if par.SpaceAfter > 0 {
			sp.After = intp(ooxml.TwipsFromPoints(par.SpaceAfter))
		}
		if par.LineSpacing > 0 {
			sp.Line = intp(ooxml.LineFromMultiplier(par.LineSpacing))
			sp.LineRule = "auto"
		}
		props.Spacing = sp
		used = true
	}
	if par.LeftIndent != 0 || par.RightIndent != 0 || par.FirstLineIndent != 0 {
		ind := &ooxml.Indent{}
		if par.LeftIndent != 0 {
			ind.Left = intp(ooxml.TwipsFromPoints(par.LeftIndent))
		}
		if par.RightIndent != 0 {
			ind.Right = intp(ooxml.TwipsFromPoints(par.RightIndent))
		}
		if par.FirstLineIndent != 0 {
			ind.FirstLine = intp(ooxml.TwipsFromPoints(par.FirstLineIndent))
		}
		props.Indent = ind
		used = true
	}
	if jc := jcValue(par.Alignment); jc != "" {
		props.Jc = &ooxml.Val{Val: jc}
		used = true
	}

	if !used {
		return nil
	}
	return props
}

func jcValue(a document.Alignment) string {
	switch a {
	case document.AlignCenter:
		return "center"
	case document.AlignRight:
		return "right"
	case document.AlignJustify:
		return "both"
	}
	return ""
}

func intp(v int) *int { return &v }

// textRuns expands one model run into container runs, splitting embedded
// newlines into explicit line breaks.
func textRuns(r *document.Run) []*ooxml.Run {
	props := runProps(r.Style)
	noBreak := ""
	if r.Style.NoBreak {
		noBreak = "1"
	}

	segments := strings.Split(r.Text, "\n")
	out := make([]*ooxml.Run, 0, len(segments))
	for i, seg := range segments {
		or := &ooxml.Run{NoBreak: noBreak, Props: props}
		if i > 0 {
			or.Break = &ooxml.Empty{}
		}
		if seg != "" || i == 0 {
			or.Text = &ooxml.Text{Value: seg}
			if strings.TrimSpace(seg) != seg {
				or.Text.Space = "preserve"
			}
		}
		out = append(out, or)
	}
	return out
}

func runProps(st document.Style) *ooxml.RunProps {
	props := &ooxml.RunProps{}
	used := false
	if st.Font != "" {
		props.Fonts = &ooxml.RunFonts{ASCII: st.Font, HAnsi: st.Font}
		used = true
	}
	if st.Bold {
		props.Bold = &ooxml.Empty{}
		used = true
	}
	if st.Italic {
		props.Italic = &ooxml.Empty{}
		used = true
	}
	if st.Color != nil {
		props.Color = &ooxml.Val{Val: st.Color.Hex()}
		used = true
	}
	if st.Size > 0 {
		props.Size = &ooxml.Val{Val: fmt.Sprintf("%d", ooxml.HalfPointsFromPoints(st.Size))}
		used = true
	}
	if !used {
		return nil
	}
	return props
}

// convertImageRun reads the image bytes at flush time. Optional images that
// cannot be read degrade to nothing; required ones abort the build.
func (p *pkg) convertImageRun(r *document.Run) (*ooxml.Run, error) {
	img := r.Image
	data := img.Data
	if data == nil {
		b, err := os.ReadFile(img.Path)
		if err != nil {
			if img.Required {
				return nil, &SerializationError{Part: img.Path, Err: err}
			}
			p.log.Warn("optional image unreadable, skipping run",
				observability.String("path", img.Path), observability.Error("err", err))
			return nil, nil
		}
		data = b
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if img.Required {
			return nil, &SerializationError{Part: img.Path, Err: err}
		}
		p.log.Warn("optional image undecodable, skipping run",
			observability.String("path", img.Path), observability.Error("err", err))
		return nil, nil
	}

	wPts, hPts := img.Width, img.Height
	if wPts <= 0 || hPts <= 0 {
		// Fall back to the natural size at 96 DPI.
		wPts = float64(cfg.Width) * 0.75
		hPts = float64(cfg.Height) * 0.75
	}

	ext := "png"
	if format == "jpeg" {
		ext = "jpeg"
		p.hasJPEG = true
	}
	p.imageCount++
	name := fmt.Sprintf("media/image%d.%s", p.imageCount, ext)
	relID := fmt.Sprintf("rId%d", 2+p.imageCount)
	p.rels = append(p.rels, ooxml.Relationship{ID: relID, Type: ooxml.RelTypeImage, Target: name})
	p.media = append(p.media, mediaPart{name: "word/" + name, data: data})

	return &ooxml.Run{
		Props:   runProps(r.Style),
		Drawing: ooxml.NewInlineImage(p.imageCount, relID, ooxml.EMUFromPoints(wPts), ooxml.EMUFromPoints(hPts)),
	}, nil
}

func (p *pkg) flush(w io.Writer) error {
	parts, err := p.assemble()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	mod := time.Now()
	if p.cfg.Deterministic {
		mod = time.Time{}
	}
	for _, part := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: mod,
		})
		if err != nil {
			return &SerializationError{Part: part.name, Err: err}
		}
		if _, err := f.Write(part.data); err != nil {
			return &SerializationError{Part: part.name, Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &SerializationError{Part: "package", Err: err}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return &SerializationError{Part: "package", Err: err}
	}
	return nil
}

func (p *pkg) assemble() ([]mediaPart, error) {
	types := &ooxml.Types{
		Xmlns: ooxml.NSContentTypes,
		Defaults: []ooxml.Default{
			{Extension: "rels", ContentType: ooxml.CTRels},
			{Extension: "xml", ContentType: ooxml.CTXML},
			{Extension: "png", ContentType: ooxml.CTPng},
		},
		Overrides: []ooxml.Override{
			{PartName: "/word/document.xml", ContentType: ooxml.CTDocument},
			{PartName: "/word/styles.xml", ContentType: ooxml.CTStyles},
			{PartName: "/word/settings.xml", ContentType: ooxml.CTSettings},
			{PartName: "/docProps/core.xml", ContentType: ooxml.CTCore},
			{PartName: "/docProps/app.xml", ContentType: ooxml.CTApp},
		},
	}
	if p.hasJPEG {
		types.Defaults = append(types.Defaults, ooxml.Default{Extension: "jpeg", ContentType: "image/jpeg"})
	}

	rootRels := &ooxml.Relationships{
		Xmlns: ooxml.NSPackageRels,
		Rels: []ooxml.Relationship{
			{ID: "rId1", Type: ooxml.RelTypeDocument, Target: "word/document.xml"},
			{ID: "rId2", Type: ooxml.RelTypeCore, Target: "docProps/core.xml"},
			{ID: "rId3", Type: ooxml.RelTypeApp, Target: "docProps/app.xml"},
		},
	}
	docRels := &ooxml.Relationships{Xmlns: ooxml.NSPackageRels, Rels: p.rels}

	settings := &ooxml.Settings{XmlnsW: ooxml.NSMain}
	if p.showBG {
		settings.Background = &ooxml.Empty{}
	}
	core := &ooxml.CoreProperties{
		XmlnsCP: ooxml.NSCoreProps,
		XmlnsDC: ooxml.NSDublinCore,
		Title:   p.cfg.Title,
		Creator: p.cfg.Creator,
	}
	app := &ooxml.AppProperties{Xmlns: ooxml.NSExtendedProps, Application: "wordkit"}

	parts := make([]mediaPart, 0, 8+len(p.media))
	add := func(name string, v interface{}) error {
		data, err := marshalPart(v)
		if err != nil {
			return &SerializationError{Part: name, Err: err}
		}
		parts = append(parts, mediaPart{name: name, data: data})
		return nil
	}

	if err := add("[Content_Types].xml", types); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", rootRels); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", core); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", app); err != nil {
		return nil, err
	}
	if err := add("word/document.xml", p.root); err != nil {
		return nil, err
	}
	if err := add("word/_rels/document.xml.rels", docRels); err != nil {
		return nil, err
	}
	if err := add("word/styles.xml", p.styles); err != nil {
		return nil, err
	}
	if err := add("word/settings.xml", settings); err != nil {
		return nil, err
	}
	parts = append(parts, p.media...)
	return parts, nil
}

func marshalPart(v interface{}) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	out = append(out, body...)
	return out, nil
}
