package compose

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wordkit/document"
)

// RenderHTML appends a simple HTML fragment to a cell: h1–h6 become
// section headers, li bullets, p body paragraphs; b/strong and i/em map
// to bold and italic runs.
func (c *Composer) RenderHTML(cell *document.Cell, source string) error {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return err
	}
	return c.walkHTML(cell, doc)
}

func (c *Composer) walkHTML(cell *document.Cell, n *html.Node) error {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			_, err := c.SectionHeader(cell, extractText(n), "", Main)
			return err
		case atom.P:
			t := c.theme
			p := cell.AddParagraph()
			p.SpaceAfter = 2
			p.LineSpacing = t.LineSpacing
			c.appendHTMLInline(p, n, document.Style{Font: t.BaseFont, Size: t.BaseSize})
			return nil
		case atom.Li:
			t := c.theme
			p := cell.AddParagraph()
			p.SpaceAfter = 1.5
			p.LineSpacing = t.LineSpacing
			p.LeftIndent = t.BulletIndent
			p.AddRun("• ", document.Style{Font: t.BaseFont, Size: t.BaseSize, Bold: true})
			c.appendHTMLInline(p, n, document.Style{Font: t.BaseFont, Size: t.BaseSize})
			return nil
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := c.walkHTML(cell, child); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composer) appendHTMLInline(p *document.Paragraph, n *html.Node, style document.Style) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode:
			if text := collapseSpace(child.Data); text != "" {
				p.AddRun(text, style)
			}
		case child.Type == html.ElementNode:
			st := style
			switch child.DataAtom {
			case atom.B, atom.Strong:
				st.Bold = true
			case atom.I, atom.Em:
				st.Italic = true
			}
			c.appendHTMLInline(p, child, st)
		}
	}
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// collapseSpace folds runs of whitespace to single spaces while keeping a
// word-separating space at either edge.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
