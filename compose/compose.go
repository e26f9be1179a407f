// Package compose builds reusable content blocks on top of the document
// model: section headers with accent rules, body text, markup-aware
// bullets, icon rows and the two-column page grid. Every builder appends
// to the tree and returns the appended node; styling comes from a Theme
// instead of scattered literals.
package compose

import (
	"strings"

	"wordkit/document"
	"wordkit/observability"
)

// Column tells a block which side of the page grid it lives on; a few
// formatting policies (rule length, icon offset, header color) differ
// between the shaded sidebar and the main column.
type Column int

const (
	Sidebar Column = iota
	Main
)

// Theme is the single style-token configuration for all blocks.
type Theme struct {
	BaseFont string
	BaseSize float64 // points

	HeaderSize        float64
	SidebarHeaderSize float64
	HeaderUppercase   bool

	AccentColor   document.Color // header text in the main column, accent rules
	SidebarFill   document.Color
	SidebarText   document.Color
	SidebarAccent document.Color // secondary sidebar text (titles, labels)

	RuleWidth        float64 // accent rule thickness, points
	RuleIndentSide   float64 // rule right-indent in the sidebar, points
	RuleIndentMain   float64 // rule right-indent in the main column, points
	IconHangingPull  float64 // negative left indent applied to icon headers, points
	BulletIndent     float64 // points
	LineSpacing      float64
	IconSize         float64 // square icon edge, points
	HeaderIconSize   float64
	CellPadding      document.Margins // inches
}

// DefaultTheme matches the two-column résumé drivers: dark blue sidebar,
// white sidebar text, Calibri baseline.
func DefaultTheme() Theme {
	return Theme{
		BaseFont:          "Calibri",
		BaseSize:          9,
		HeaderSize:        10.5,
		SidebarHeaderSize: 10,
		HeaderUppercase:   true,
		AccentColor:       document.RGB(0x00, 0x33, 0x66),
		SidebarFill:       document.RGB(0x00, 0x33, 0x66),
		SidebarText:       document.RGB(0xFF, 0xFF, 0xFF),
		SidebarAccent:     document.RGB(0xC8, 0xDC, 0xFF),
		RuleWidth:         1.5,
		RuleIndentSide:    36,
		RuleIndentMain:    72,
		IconHangingPull:   -7.2,
		BulletIndent:      14.4,
		LineSpacing:       1.05,
		IconSize:          6.5,
		HeaderIconSize:    10,
		CellPadding:       document.Margins{Top: 0, Bottom: 0.1, Left: 0.15, Right: 0.1},
	}
}

// Composer appends themed blocks to a document tree.
type Composer struct {
	theme     Theme
	log       observability.Logger
	iconDir   string
	maxIconPx int
}

// Option configures a Composer.
type Option func(*Composer)

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(c *Composer) { c.theme = t }
}

// WithLogger attaches a logger for degraded-block warnings.
func WithLogger(l observability.Logger) Option {
	return func(c *Composer) { c.log = l }
}

// WithIconDir points icon lookup at a directory of <key>.png assets.
func WithIconDir(dir string) Option {
	return func(c *Composer) { c.iconDir = dir }
}

// New returns a Composer with the default theme and a no-op logger.
func New(opts ...Option) *Composer {
	c := &Composer{
		theme:     DefaultTheme(),
		log:       observability.NopLogger{},
		maxIconPx: 128,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Theme exposes the active theme to drivers that need one-off styles.
func (c *Composer) Theme() Theme { return c.theme }

// TwoColumnGrid appends the borderless page-skeleton table: a shaded
// sidebar cell and a plain main cell with fixed widths in inches.
func (c *Composer) TwoColumnGrid(s *document.Section, leftWidth, rightWidth float64) (sidebar, main *document.Cell, err error) {
	tbl, err := s.AddTable(1, 2, []float64{leftWidth, rightWidth})
	if err != nil {
		return nil, nil, err
	}
	tbl.Borderless = true

	pad := c.theme.CellPadding
	fill := c.theme.SidebarFill
	sidebar = tbl.Cell(0, 0)
	main = tbl.Cell(0, 1)
	sidebar.SetStyle(&fill, &pad, document.VAlignTop)
	main.SetStyle(nil, &pad, document.VAlignTop)
	return sidebar, main, nil
}

// SectionHeader appends an optional icon, the bold upper-cased title, and
// the thin accent rule beneath it. Rule length and icon offset are column
// policy: the sidebar gets the longer rule and both columns pull an icon
// header slightly left so the glyphs line up with the text margin.
func (c *Composer) SectionHeader(cell *document.Cell, title, iconKey string, col Column) (*document.Paragraph, error) {
	t := c.theme
	if t.HeaderUppercase {
		title = strings.ToUpper(title)
	}

	p := cell.AddParagraph()
	p.SpaceBefore = 5
	p.SpaceAfter = 0
	p.LineSpacing = 1.0

	if iconKey != "" {
		if icon, ok := c.icon(iconKey, t.HeaderIconSize); ok {
			p.LeftIndent = t.IconHangingPull
			p.AddImageRun(icon, document.Style{})
			p.AddRun(" ", document.Style{Font: t.BaseFont, Size: 3})
		}
	}

	headerColor := t.AccentColor
	headerSize := t.HeaderSize
	if col == Sidebar {
		headerColor = t.SidebarText
		headerSize = t.SidebarHeaderSize
	}
	p.AddRun(title, document.Style{
		Font:  t.BaseFont,
		Size:  headerSize,
		Bold:  true,
		Color: &headerColor,
	})

	if err := c.accentRule(cell, col); err != nil {
		return nil, err
	}
	return p, nil
}

// accentRule draws the decorative line as a bottom border on a paragraph
// whose only content is a tiny non-breaking space (the border needs a
// paragraph with width to render).
func (c *Composer) accentRule(cell *document.Cell, col Column) error {
	t := c.theme
	rule := cell.AddParagraph()
	rule.SpaceBefore = 0
	rule.SpaceAfter = 2
	rule.LineSpacing = 1.0
	rule.RightIndent = t.RuleIndentMain
	if col == Sidebar {
		rule.RightIndent = t.RuleIndentSide
	}
	rule.AddRun(" ", document.Style{Font: t.BaseFont, Size: 1})
	return rule.SetBorder(document.EdgeBottom, t.RuleWidth, t.AccentColor)
}

// BodyText appends a plain baseline paragraph.
func (c *Composer) BodyText(cell *document.Cell, text string) *document.Paragraph {
	t := c.theme
	p := cell.AddParagraph()
	p.SpaceAfter = 2
	p.LineSpacing = t.LineSpacing
	p.AddRun(text, document.Style{Font: t.BaseFont, Size: t.BaseSize})
	return p
}

// SidebarText appends a sidebar paragraph in the sidebar text color; accent
// switches to the secondary sidebar color used for labels and titles.
func (c *Composer) SidebarText(cell *document.Cell, text string, accent bool) *document.Paragraph {
	t := c.theme
	color := t.SidebarText
	if accent {
		color = t.SidebarAccent
	}
	p := cell.AddParagraph()
	p.SpaceAfter = 2
	p.LineSpacing = 1.1
	p.AddRun(text, document.Style{Font: t.BaseFont, Size: t.BaseSize - 0.5, Color: &color})
	return p
}

// Bullet appends a bulleted item. The text may carry the two-character
// emphasis delimiter; alternating segments render bold.
func (c *Composer) Bullet(cell *document.Cell, text string) *document.Paragraph {
	t := c.theme
	p := cell.AddParagraph()
	p.SpaceAfter = 1.5
	p.LineSpacing = t.LineSpacing
	p.LeftIndent = t.BulletIndent

	p.AddRun("• ", document.Style{Font: t.BaseFont, Size: t.BaseSize, Bold: true})
	for _, seg := range ParseInlineMarkup(text) {
		p.AddRun(seg.Text, document.Style{Font: t.BaseFont, Size: t.BaseSize, Bold: seg.Bold})
	}
	return p
}

// SidebarBullet appends a bulleted sidebar item in the sidebar text color.
func (c *Composer) SidebarBullet(cell *document.Cell, text string) *document.Paragraph {
	t := c.theme
	p := cell.AddParagraph()
	p.SpaceAfter = 1.5
	p.LineSpacing = t.LineSpacing
	p.LeftIndent = t.BulletIndent

	p.AddRun("• ", document.Style{Font: t.BaseFont, Size: t.BaseSize, Bold: true, Color: &t.SidebarText})
	p.AddRun(text, document.Style{Font: t.BaseFont, Size: t.BaseSize - 0.5, Color: &t.SidebarText})
	return p
}

// IconRow appends a small icon immediately followed by text, used for the
// sidebar contact lines. Email addresses (any text containing '@') get
// their interior spaces hardened to non-breaking spaces and the run marked
// unbreakable so renderers never wrap the address mid-string. A missing
// icon degrades to the text run alone.
func (c *Composer) IconRow(cell *document.Cell, iconKey, text string) *document.Paragraph {
	t := c.theme
	p := cell.AddParagraph()
	p.Alignment = document.AlignLeft
	p.KeepTogether = true
	p.SpaceAfter = 2
	p.LineSpacing = 1.0

	if icon, ok := c.icon(iconKey, t.IconSize); ok {
		p.AddImageRun(icon, document.Style{})
		p.AddRun(" ", document.Style{Font: t.BaseFont, Size: 3})
	}

	style := document.Style{Font: t.BaseFont, Size: t.BaseSize - 0.5, Color: &t.SidebarText}
	if strings.ContainsRune(text, '@') {
		text = strings.ReplaceAll(text, " ", "\u00A0")
		style.NoBreak = true
	}
	p.AddRun(text, style)
	return p
}

// ContactItem is one icon+text pair of a contact banner.
type ContactItem struct {
	IconKey string
	Text    string
}

// ContactBanner appends a single centered paragraph carrying every contact
// item, the banner-header variant of IconRow.
func (c *Composer) ContactBanner(cell *document.Cell, items []ContactItem) *document.Paragraph {
	t := c.theme
	p := cell.AddParagraph()
	p.Alignment = document.AlignCenter
	p.SpaceAfter = 4
	p.LineSpacing = 1.0

	for i, item := range items {
		if i > 0 {
			p.AddRun("   ", document.Style{Font: t.BaseFont, Size: t.BaseSize})
		}
		if icon, ok := c.icon(item.IconKey, t.IconSize+2.5); ok {
			p.AddImageRun(icon, document.Style{})
			p.AddRun(" ", document.Style{Font: t.BaseFont, Size: 3})
		}
		text := item.Text
		style := document.Style{Font: t.BaseFont, Size: t.BaseSize}
		if strings.ContainsRune(text, '@') {
			text = strings.ReplaceAll(text, " ", "\u00A0")
			style.NoBreak = true
		}
		p.AddRun(text, style)
	}
	return p
}
