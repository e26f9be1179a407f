package writer_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wordkit/document"
	"wordkit/reader"
	"wordkit/writer"
)

func buildSample(t *testing.T) *document.Document {
	t.Helper()
	doc := document.New()
	s, err := doc.AddSection(document.Margins{Top: 0.2, Bottom: 0.3, Left: 0.3, Right: 0.15}, nil)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	tbl, err := s.AddTable(1, 2, []float64{2.2, 5.3})
	if err != nil {
		t.Fatalf("add table: %v", err)
	}
	tbl.Borderless = true

	blue := document.RGB(0x00, 0x33, 0x66)
	white := document.RGB(0xFF, 0xFF, 0xFF)
	sidebar := tbl.Cell(0, 0)
	sidebar.SetStyle(&blue, &document.Margins{Top: 0, Bottom: 0.1, Left: 0.15, Right: 0.1}, document.VAlignTop)

	name := sidebar.AddParagraph()
	name.Alignment = document.AlignCenter
	name.SpaceAfter = 2
	name.AddRun("PRABHAT KUMAR", document.Style{Font: "Calibri", Size: 16, Bold: true, Color: &white})

	main := tbl.Cell(0, 1)
	item := main.AddParagraph()
	item.AddRun("Built ", document.Style{Font: "Calibri", Size: 9})
	item.AddRun("React", document.Style{Font: "Calibri", Size: 9, Bold: true})
	item.AddRun(" apps", document.Style{Font: "Calibri", Size: 9})

	footer := s.AddParagraph()
	footer.Alignment = document.AlignCenter
	footer.AddRun("References available on request", document.Style{Font: "Calibri", Size: 8, Italic: true})

	return doc
}

func writePackage(t *testing.T, doc *document.Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := (&writer.WriterBuilder{}).Build()
	if err := w.Write(context.Background(), doc, &buf, writer.Config{Deterministic: true}); err != nil {
		t.Fatalf("write package: %v", err)
	}
	return buf.Bytes()
}

func TestRoundTripPreservesOrderAndStyles(t *testing.T) {
	data := writePackage(t, buildSample(t))

	got, err := reader.Parse(data)
	if err != nil {
		t.Fatalf("re-parse package: %v", err)
	}

	want := &reader.Document{
		PageWidth:    8.5,
		PageHeight:   11,
		MarginTop:    0.2,
		MarginBottom: 0.3,
		MarginLeft:   0.3,
		MarginRight:  0.15,
		Blocks: []reader.Block{
			&reader.Table{
				ColumnWidths: []float64{2.2, 5.3},
				Rows: []*reader.Row{{
					Cells: []*reader.Cell{
						{
							Shading: "003366",
							Paragraphs: []*reader.Paragraph{{
								Alignment: "center",
								Runs: []*reader.Run{
									{Text: "PRABHAT KUMAR", Font: "Calibri", Size: 16, Bold: true, Color: "FFFFFF"},
								},
							}},
						},
						{
							Paragraphs: []*reader.Paragraph{{
								Runs: []*reader.Run{
									{Text: "Built ", Font: "Calibri", Size: 9},
									{Text: "React", Font: "Calibri", Size: 9, Bold: true},
									{Text: " apps", Font: "Calibri", Size: 9},
								},
							}},
						},
					},
				}},
			},
			&reader.Paragraph{
				Alignment: "center",
				Runs: []*reader.Run{
					{Text: "References available on request", Font: "Calibri", Size: 8, Italic: true},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGridFitsContentWidth(t *testing.T) {
	doc := buildSample(t)
	s := doc.Sections[0]
	tbl := s.Blocks[0].(*document.Table)

	total := 0.0
	for _, w := range tbl.ColumnWidths {
		total += w
	}
	if total > s.ContentWidth() {
		t.Fatalf("columns (%g in) overflow content width (%g in)", total, s.ContentWidth())
	}
}

func TestDeterministicOutputIsStable(t *testing.T) {
	doc := buildSample(t)
	a := writePackage(t, doc)
	b := writePackage(t, doc)
	if !bytes.Equal(a, b) {
		t.Fatal("deterministic writes produced different bytes")
	}
}

func testPNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	img.Set(0, 0, color.NRGBA{R: 0x00, G: 0x33, B: 0x66, A: 0xFF})

	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestEmbeddedImageRoundTrip(t *testing.T) {
	doc := document.New()
	s, _ := doc.AddSection(document.Margins{Top: 1, Bottom: 1, Left: 1, Right: 1}, nil)
	p := s.AddParagraph()
	p.AddImageRun(document.Image{Path: testPNG(t), Width: 10, Height: 10}, document.Style{})
	p.AddRun(" prabhatkumar944@gmail.com", document.Style{Font: "Calibri", Size: 8, NoBreak: true})

	got, err := reader.Parse(writePackage(t, doc))
	if err != nil {
		t.Fatalf("re-parse package: %v", err)
	}

	paras := got.Paragraphs()
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
	runs := paras[0].Runs
	if len(runs) != 2 {
		t.Fatalf("expected image run + text run, got %d runs", len(runs))
	}
	if !runs[0].IsImage {
		t.Fatal("first run must be the inline image")
	}
	if !runs[1].NoBreak {
		t.Fatal("email run must carry the no-break mark")
	}
}

func TestRequiredImageFailureLeavesNoOutput(t *testing.T) {
	doc := document.New()
	s, _ := doc.AddSection(document.Margins{Top: 1, Bottom: 1, Left: 1, Right: 1}, nil)
	p := s.AddParagraph()
	p.AddImageRun(document.Image{Path: "/definitely/missing.png", Required: true}, document.Style{})

	var buf bytes.Buffer
	w := (&writer.WriterBuilder{}).Build()
	err := w.Write(context.Background(), doc, &buf, writer.Config{Deterministic: true})
	if err == nil {
		t.Fatal("expected SerializationError for unreadable required image")
	}
	var se *writer.SerializationError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SerializationError, got %T: %v", err, err)
	}
	if buf.Len() != 0 {
		t.Fatalf("failed build must not flush partial output, wrote %d bytes", buf.Len())
	}
}

func TestOptionalImageFailureDegradesToText(t *testing.T) {
	doc := document.New()
	s, _ := doc.AddSection(document.Margins{Top: 1, Bottom: 1, Left: 1, Right: 1}, nil)
	p := s.AddParagraph()
	p.AddImageRun(document.Image{Path: "/definitely/missing.png"}, document.Style{})
	p.AddRun("Gurugram, Haryana", document.Style{Font: "Calibri", Size: 8.5})

	got, err := reader.Parse(writePackage(t, doc))
	if err != nil {
		t.Fatalf("re-parse package: %v", err)
	}
	runs := got.Paragraphs()[0].Runs
	if len(runs) != 1 || runs[0].IsImage || runs[0].Text != "Gurugram, Haryana" {
		t.Fatalf("expected lone text run, got %+v", runs)
	}
}

func TestContextCancellationAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	w := (&writer.WriterBuilder{}).Build()
	err := w.Write(ctx, buildSample(t), &buf, writer.Config{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("cancelled write must not flush output")
	}
}
