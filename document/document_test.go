package document

import (
	"errors"
	"testing"
)

func TestAddSectionRejectsNegativeMargins(t *testing.T) {
	d := New()
	if _, err := d.AddSection(Margins{Top: -0.1, Bottom: 0.3, Left: 0.3, Right: 0.15}, nil); err == nil {
		t.Fatal("expected ConfigError for negative margin")
	} else {
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("expected *ConfigError, got %T", err)
		}
	}
	if len(d.Sections) != 0 {
		t.Fatalf("failed AddSection must not append, got %d sections", len(d.Sections))
	}
}

func TestAddTableValidatesShape(t *testing.T) {
	d := New()
	s, err := d.AddSection(Margins{Top: 0.2, Bottom: 0.3, Left: 0.3, Right: 0.15}, nil)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	if _, err := s.AddTable(1, 2, []float64{2.2}); err == nil {
		t.Fatal("expected DimensionError for mismatched widths")
	} else {
		var de *DimensionError
		if !errors.As(err, &de) {
			t.Fatalf("expected *DimensionError, got %T", err)
		}
	}
	if _, err := s.AddTable(0, 2, []float64{2.2, 5.3}); err == nil {
		t.Fatal("expected DimensionError for zero rows")
	}

	tbl, err := s.AddTable(2, 2, []float64{2.2, 5.3})
	if err != nil {
		t.Fatalf("add table: %v", err)
	}
	if len(tbl.Rows) != 2 || len(tbl.Rows[0].Cells) != 2 {
		t.Fatalf("unexpected table shape: %d rows, %d cells", len(tbl.Rows), len(tbl.Rows[0].Cells))
	}
	if tbl.Cell(1, 1) == nil || tbl.Cell(2, 0) != nil || tbl.Cell(0, 2) != nil {
		t.Fatal("Cell accessor bounds are wrong")
	}
}

func TestColumnWidthsAreCopied(t *testing.T) {
	d := New()
	s, _ := d.AddSection(Margins{Top: 0.2, Bottom: 0.3, Left: 0.3, Right: 0.15}, nil)
	widths := []float64{2.2, 5.3}
	tbl, err := s.AddTable(1, 2, widths)
	if err != nil {
		t.Fatalf("add table: %v", err)
	}
	widths[0] = 99
	if tbl.ColumnWidths[0] != 2.2 {
		t.Fatal("table must copy column widths at creation")
	}
}

func TestContentWidth(t *testing.T) {
	d := New()
	s, _ := d.AddSection(Margins{Top: 0.2, Bottom: 0.3, Left: 0.3, Right: 0.15}, nil)
	got := s.ContentWidth()
	want := 8.5 - 0.3 - 0.15
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("content width = %g, want %g", got, want)
	}
}

func TestSetBorderRejectsDuplicateEdge(t *testing.T) {
	p := &Paragraph{}
	if err := p.SetBorder(EdgeBottom, 1.5, RGB(0x00, 0x33, 0x66)); err != nil {
		t.Fatalf("first border: %v", err)
	}
	if err := p.SetBorder(EdgeBottom, 0.75, RGB(0, 0, 0)); err == nil {
		t.Fatal("expected ConfigError for duplicate bottom border")
	}
	if err := p.SetBorder(EdgeTop, 0, RGB(0, 0, 0)); err == nil {
		t.Fatal("expected ConfigError for zero-width border")
	}
	if len(p.Borders) != 1 {
		t.Fatalf("expected 1 border, got %d", len(p.Borders))
	}
}

func TestRunStyleIsCopied(t *testing.T) {
	p := &Paragraph{}
	blue := RGB(0, 51, 102)
	st := Style{Font: "Calibri", Size: 9, Bold: true, Color: &blue}
	r := p.AddRun("hello", st)
	st.Bold = false
	st.Size = 20
	if !r.Style.Bold || r.Style.Size != 9 {
		t.Fatal("run style must be copied on append")
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0, 51, 102).Hex(); got != "003366" {
		t.Fatalf("hex = %q, want 003366", got)
	}
	if got := RGB(255, 255, 255).Hex(); got != "FFFFFF" {
		t.Fatalf("hex = %q, want FFFFFF", got)
	}
}
