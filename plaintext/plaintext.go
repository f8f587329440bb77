// Package plaintext derives the plain-text rendition of an HTML fragment,
// using golang.org/x/net/html as the underlying parser. It is used to
// sanitize the text/html flavor of a clipboard payload down to the text that
// a plain-text paste should insert.
package plaintext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML parses markup and returns its rendered text: element markup is
// discarded, <br> and block-element boundaries become newlines, and
// script/style content is skipped. A newline owed only to the fragment's
// closing block edge is dropped; explicit trailing <br> breaks are kept.
// Parse failures yield the empty string.
func FromHTML(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	var c collector
	c.walk(doc)
	return c.result()
}

// collector accumulates rendered text while walking the parsed tree.
type collector struct {
	sb strings.Builder
	// atBoundary records that the trailing newline came from a block edge
	// rather than a <br>, so result can drop it.
	atBoundary bool
}

func (c *collector) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if n.Data != "" {
			c.sb.WriteString(n.Data)
			c.atBoundary = false
		}
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return
		case atom.Br:
			c.sb.WriteByte('\n')
			c.atBoundary = false
			return
		}
		if isBlock(n.DataAtom) {
			c.boundary()
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child)
	}

	if n.Type == html.ElementNode && isBlock(n.DataAtom) {
		c.boundary()
	}
}

// boundary appends one newline unless the output already ends on one, so
// adjacent and nested block edges don't stack.
func (c *collector) boundary() {
	if s := c.sb.String(); len(s) > 0 && !strings.HasSuffix(s, "\n") {
		c.sb.WriteByte('\n')
		c.atBoundary = true
	}
}

func (c *collector) result() string {
	s := c.sb.String()
	if c.atBoundary {
		s = strings.TrimSuffix(s, "\n")
	}
	return s
}

// isBlock reports whether the element establishes a line boundary when
// rendered, per the subset of block-level elements clipboards produce.
func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Blockquote,
		atom.Pre, atom.Li, atom.Ul, atom.Ol, atom.Tr, atom.Table,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}
