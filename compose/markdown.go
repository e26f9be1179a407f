package compose

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"wordkit/document"
)

// RenderMarkdown parses a markdown string with goldmark and appends the
// result to a cell: headings become section headers, list items bullets,
// everything else body paragraphs. Strong emphasis maps to bold runs,
// plain emphasis to italic.
func (c *Composer) RenderMarkdown(cell *document.Cell, source string) error {
	md := goldmark.New()
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	return c.walkMarkdown(cell, doc, src)
}

func (c *Composer) walkMarkdown(cell *document.Cell, node ast.Node, source []byte) error {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			if _, err := c.SectionHeader(cell, string(n.Text(source)), "", Main); err != nil {
				return err
			}
		case *ast.Paragraph:
			c.renderMarkdownParagraph(cell, n, source)
		case *ast.List:
			if err := c.walkMarkdown(cell, n, source); err != nil {
				return err
			}
		case *ast.ListItem:
			c.renderMarkdownListItem(cell, n, source)
		}
	}
	return nil
}

func (c *Composer) renderMarkdownParagraph(cell *document.Cell, n *ast.Paragraph, source []byte) {
	t := c.theme
	p := cell.AddParagraph()
	p.SpaceAfter = 2
	p.LineSpacing = t.LineSpacing
	c.appendInline(p, n, source, document.Style{Font: t.BaseFont, Size: t.BaseSize})
}

func (c *Composer) renderMarkdownListItem(cell *document.Cell, n *ast.ListItem, source []byte) {
	t := c.theme
	p := cell.AddParagraph()
	p.SpaceAfter = 1.5
	p.LineSpacing = t.LineSpacing
	p.LeftIndent = t.BulletIndent
	p.AddRun("• ", document.Style{Font: t.BaseFont, Size: t.BaseSize, Bold: true})

	// List items wrap their text in a paragraph (or text block) child.
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.appendInline(p, child, source, document.Style{Font: t.BaseFont, Size: t.BaseSize})
	}
}

// appendInline flattens an inline subtree into styled runs, carrying bold
// and italic through nested emphasis nodes.
func (c *Composer) appendInline(p *document.Paragraph, node ast.Node, source []byte, style document.Style) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			p.AddRun(string(n.Segment.Value(source)), style)
			if n.SoftLineBreak() || n.HardLineBreak() {
				p.AddRun(" ", style)
			}
		case *ast.Emphasis:
			st := style
			if n.Level >= 2 {
				st.Bold = true
			} else {
				st.Italic = true
			}
			c.appendInline(p, n, source, st)
		case *ast.CodeSpan:
			p.AddRun(string(n.Text(source)), style)
		default:
			c.appendInline(p, child, source, style)
		}
	}
}
