package document

import "fmt"

// Alignment is horizontal paragraph justification.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Edge names a paragraph border edge.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

// Border is a single-line paragraph border rule.
type Border struct {
	Edge  Edge
	Width float64 // points
	Color Color
}

// Paragraph owns an ordered sequence of runs plus paragraph-level formatting.
// Spacing values are points; indents may be negative (icon pull-left).
type Paragraph struct {
	Alignment       Alignment
	SpaceBefore     float64
	SpaceAfter      float64
	LineSpacing     float64 // multiplier; 0 means the format default
	LeftIndent      float64
	RightIndent     float64
	FirstLineIndent float64
	KeepTogether    bool

	Borders []Border
	Runs    []*Run
}

func (*Paragraph) isBlock() {}

// SetBorder attaches a single-line border to one edge. Attaching a second
// border to the same edge is a construction-time error: duplicate border
// fragments are undefined behavior in the container format, so the model
// refuses them instead of silently emitting both.
func (p *Paragraph) SetBorder(edge Edge, width float64, color Color) error {
	if width <= 0 {
		return &ConfigError{Op: "SetBorder", Reason: fmt.Sprintf("border width must be positive, got %g", width)}
	}
	for _, b := range p.Borders {
		if b.Edge == edge {
			return &ConfigError{Op: "SetBorder", Reason: fmt.Sprintf("duplicate %s border", edge)}
		}
	}
	p.Borders = append(p.Borders, Border{Edge: edge, Width: width, Color: color})
	return nil
}

// Style is the run-level appearance. It is copied on AddRun; a run's style
// is immutable once appended; append a new run to change appearance.
type Style struct {
	Font    string
	Size    float64 // points; 0 inherits the document default
	Bold    bool
	Italic  bool
	Color   *Color
	NoBreak bool
}

// Run is the atomic styled unit: text, or an inline image when Image is set.
type Run struct {
	Text  string
	Image *Image
	Style Style
}

// Image is an external file reference plus its rendered size. The writer
// reads the bytes at flush time; when Data is set it is used as-is (already
// encoded PNG). Optional images that fail to read are skipped, required
// ones abort serialization.
type Image struct {
	Path     string
	Data     []byte
	Width    float64 // points
	Height   float64 // points
	Required bool
}

// AddRun appends a styled text run and returns it.
func (p *Paragraph) AddRun(text string, style Style) *Run {
	r := &Run{Text: text, Style: style}
	p.Runs = append(p.Runs, r)
	return r
}

// AddImageRun appends an inline image run.
func (p *Paragraph) AddImageRun(img Image, style Style) *Run {
	r := &Run{Image: &img, Style: style}
	p.Runs = append(p.Runs, r)
	return r
}
