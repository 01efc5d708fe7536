// ABOUTME: Readable-text extraction from HTML using golang.org/x/net/html
// ABOUTME: Drops script/style chrome; block elements become paragraph breaks

package source

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

func htmlToText(raw string) (string, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	var b strings.Builder
	extractReadable(doc, &b, false)
	return tidy(b.String()), nil
}

// extractReadable walks the tree writing text; inPre keeps whitespace verbatim.
func extractReadable(n *html.Node, b *strings.Builder, inPre bool) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "nav", "footer", "header", "iframe", "noscript", "head":
			return
		case "p", "div", "section", "article", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "ul", "ol":
			b.WriteString("\n\n")
		case "br":
			b.WriteString("\n")
		case "li":
			b.WriteString("\n- ")
		case "pre":
			b.WriteString("\n\n")
			inPre = true
		}
	}

	if n.Type == html.TextNode {
		text := n.Data
		if !inPre {
			text = collapseSpaces(text)
		}
		b.WriteString(text)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractReadable(c, b, inPre)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "section", "article", "pre", "blockquote", "ul", "ol",
			"h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n\n")
		}
	}
}

// collapseSpaces folds runs of whitespace to one space, keeping a single
// leading or trailing space so adjacent inline nodes stay separated.
func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if isSpaceByte(s[0]) {
		out = " " + out
	}
	if isSpaceByte(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// tidy trims each line and squeezes blank-line runs to one.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, l)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
