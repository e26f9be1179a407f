package compose

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"wordkit/document"
	"wordkit/observability"
)

type recordLogger struct{ warns []string }

func (r *recordLogger) Debug(string, ...observability.Field) {}
func (r *recordLogger) Info(string, ...observability.Field)  {}
func (r *recordLogger) Error(string, ...observability.Field) {}
func (r *recordLogger) Warn(msg string, _ ...observability.Field) {
	r.warns = append(r.warns, msg)
}
func (r *recordLogger) With(...observability.Field) observability.Logger { return r }

func testCell(t *testing.T) *document.Cell {
	t.Helper()
	doc := document.New()
	s, err := doc.AddSection(document.Margins{Top: 0.5, Bottom: 0.5, Left: 0.5, Right: 0.5}, nil)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	tbl, err := s.AddTable(1, 1, []float64{5})
	if err != nil {
		t.Fatalf("add table: %v", err)
	}
	return tbl.Cell(0, 0)
}

func writeIconDir(t *testing.T, keys ...string) string {
	t.Helper()
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for _, key := range keys {
		f, err := os.Create(filepath.Join(dir, key+".png"))
		if err != nil {
			t.Fatalf("create icon: %v", err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatalf("encode icon: %v", err)
		}
		f.Close()
	}
	return dir
}

func TestSectionHeaderMainColumn(t *testing.T) {
	cell := testCell(t)
	c := New()

	p, err := c.SectionHeader(cell, "Work Experience", "", Main)
	if err != nil {
		t.Fatalf("section header: %v", err)
	}
	if len(p.Runs) != 1 {
		t.Fatalf("expected single title run, got %d", len(p.Runs))
	}
	title := p.Runs[0]
	if title.Text != "WORK EXPERIENCE" {
		t.Fatalf("title = %q, want uppercased", title.Text)
	}
	if !title.Style.Bold || title.Style.Color.Hex() != "003366" {
		t.Fatalf("title style = %+v, want bold accent", title.Style)
	}
	if title.Style.Size != 10.5 {
		t.Fatalf("title size = %g, want 10.5", title.Style.Size)
	}

	// The accent rule follows the header as its own bordered paragraph.
	if len(cell.Paragraphs) != 2 {
		t.Fatalf("expected header + rule, got %d paragraphs", len(cell.Paragraphs))
	}
	rule := cell.Paragraphs[1]
	if len(rule.Borders) != 1 || rule.Borders[0].Edge != document.EdgeBottom {
		t.Fatalf("rule borders = %+v, want single bottom border", rule.Borders)
	}
	if rule.Borders[0].Width != 1.5 {
		t.Fatalf("rule width = %g, want 1.5", rule.Borders[0].Width)
	}
	if rule.RightIndent != 72 {
		t.Fatalf("main-column rule indent = %g, want 72", rule.RightIndent)
	}
}

func TestSectionHeaderSidebarPolicy(t *testing.T) {
	cell := testCell(t)
	c := New()

	p, err := c.SectionHeader(cell, "Skills", "", Sidebar)
	if err != nil {
		t.Fatalf("section header: %v", err)
	}
	title := p.Runs[0]
	if title.Style.Color.Hex() != "FFFFFF" {
		t.Fatalf("sidebar title color = %s, want white", title.Style.Color.Hex())
	}
	if title.Style.Size != 10 {
		t.Fatalf("sidebar title size = %g, want 10", title.Style.Size)
	}
	rule := cell.Paragraphs[1]
	if rule.RightIndent != 36 {
		t.Fatalf("sidebar rule indent = %g, want 36", rule.RightIndent)
	}
}

func TestSectionHeaderMissingIconDegrades(t *testing.T) {
	cell := testCell(t)
	log := &recordLogger{}
	c := New(WithLogger(log), WithIconDir(t.TempDir()))

	p, err := c.SectionHeader(cell, "Profile", "profile", Main)
	if err != nil {
		t.Fatalf("section header: %v", err)
	}
	for _, r := range p.Runs {
		if r.Image != nil {
			t.Fatal("missing icon must not produce an image run")
		}
	}
	if p.LeftIndent != 0 {
		t.Fatalf("hanging pull applied without an icon: %g", p.LeftIndent)
	}
	if len(log.warns) != 1 {
		t.Fatalf("expected exactly one warning, got %v", log.warns)
	}
}

func TestSectionHeaderWithIcon(t *testing.T) {
	cell := testCell(t)
	c := New(WithIconDir(writeIconDir(t, "work")))

	p, err := c.SectionHeader(cell, "Work", "work", Main)
	if err != nil {
		t.Fatalf("section header: %v", err)
	}
	if len(p.Runs) < 2 || p.Runs[0].Image == nil {
		t.Fatalf("expected leading image run, got %+v", p.Runs)
	}
	if p.LeftIndent != -7.2 {
		t.Fatalf("icon header pull = %g, want -7.2", p.LeftIndent)
	}
}

func TestIconRowHardensEmailAddresses(t *testing.T) {
	cell := testCell(t)
	c := New() // no icon dir: text-only row

	p := c.IconRow(cell, "email", "reach me@example.com")
	if len(p.Runs) != 1 {
		t.Fatalf("expected lone text run, got %d", len(p.Runs))
	}
	run := p.Runs[0]
	if !run.Style.NoBreak {
		t.Fatal("email run must be marked unbreakable")
	}
	if run.Text != "reach\u00a0me@example.com" {
		t.Fatalf("spaces not hardened: %q", run.Text)
	}
	if !p.KeepTogether {
		t.Fatal("contact rows keep their lines together")
	}
}

func TestIconRowPlainTextStaysBreakable(t *testing.T) {
	cell := testCell(t)
	c := New()

	p := c.IconRow(cell, "location", "Gurugram, Haryana, India")
	if p.Runs[0].Style.NoBreak {
		t.Fatal("non-email text must stay breakable")
	}
	if p.Runs[0].Text != "Gurugram, Haryana, India" {
		t.Fatalf("text rewritten: %q", p.Runs[0].Text)
	}
}

func TestTwoColumnGrid(t *testing.T) {
	doc := document.New()
	s, _ := doc.AddSection(document.Margins{Top: 0.2, Bottom: 0.3, Left: 0.3, Right: 0.15}, nil)
	c := New()

	sidebar, main, err := c.TwoColumnGrid(s, 2.2, 5.3)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	tbl := s.Blocks[0].(*document.Table)
	if !tbl.Borderless {
		t.Fatal("page grid must be borderless")
	}
	if tbl.ColumnWidths[0] != 2.2 || tbl.ColumnWidths[1] != 5.3 {
		t.Fatalf("widths = %v", tbl.ColumnWidths)
	}
	if sidebar.Shading == nil || sidebar.Shading.Hex() != "003366" {
		t.Fatalf("sidebar shading = %v, want 003366", sidebar.Shading)
	}
	if main.Shading != nil {
		t.Fatal("main cell must stay unshaded")
	}
}

func TestBulletRendersInlineMarkup(t *testing.T) {
	cell := testCell(t)
	c := New()

	p := c.Bullet(cell, "Built **React** apps")
	want := []struct {
		text string
		bold bool
	}{
		{"• ", true},
		{"Built ", false},
		{"React", true},
		{" apps", false},
	}
	if len(p.Runs) != len(want) {
		t.Fatalf("got %d runs, want %d", len(p.Runs), len(want))
	}
	for i, w := range want {
		if p.Runs[i].Text != w.text || p.Runs[i].Style.Bold != w.bold {
			t.Fatalf("run %d = {%q bold=%v}, want {%q bold=%v}",
				i, p.Runs[i].Text, p.Runs[i].Style.Bold, w.text, w.bold)
		}
	}
	if p.LeftIndent != 14.4 {
		t.Fatalf("bullet indent = %g, want 14.4", p.LeftIndent)
	}
}

func TestShrinkIconDownsamplesOversizedArt(t *testing.T) {
	dir := t.TempDir()
	big := image.NewNRGBA(image.Rect(0, 0, 512, 256))
	f, err := os.Create(filepath.Join(dir, "big.png"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, big); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	c := New(WithIconDir(dir))
	icon, ok := c.icon("big", 6.5)
	if !ok {
		t.Fatal("icon lookup failed")
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(icon.Data))
	if err != nil {
		t.Fatalf("decode shrunk icon: %v", err)
	}
	if cfg.Width > c.maxIconPx || cfg.Height > c.maxIconPx {
		t.Fatalf("icon still %dx%d, limit %d", cfg.Width, cfg.Height, c.maxIconPx)
	}
	if cfg.Width != 128 || cfg.Height != 64 {
		t.Fatalf("aspect ratio lost: %dx%d", cfg.Width, cfg.Height)
	}
}
