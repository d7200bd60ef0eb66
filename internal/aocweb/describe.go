package aocweb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/net/html"
)

const wrapWidth = 80

var reHeader = regexp.MustCompile(`^--- (.*) ---`)

// Description fetches the puzzle page for the given day and renders every
// <article> on it as plain text lines: "--- Title ---" headers become the
// bare title underlined with "=", paragraphs are word-wrapped at 80 columns,
// list items become "- " bullets, <pre> blocks become fenced code blocks and
// inline <code> is backtick-quoted.
func (c *Client) Description(ctx context.Context, year, day int) ([]string, error) {
	b, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d/day/%d", year, day), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch description for %d day %d: %w", year, day, err)
	}
	doc, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parse puzzle page: %w", err)
	}

	var out []string
	for _, article := range findElements(doc, "article") {
		out = append(out, formatArticle(article)...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no puzzle description found for %d day %d", year, day)
	}
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out, nil
}

func formatArticle(article *html.Node) []string {
	var out []string
	for elem := article.FirstChild; elem != nil; elem = elem.NextSibling {
		if elem.Type != html.ElementNode {
			continue
		}
		switch elem.Data {
		case "h2":
			out = append(out, formatHeader(nodeText(elem))...)
		case "p":
			out = append(out, wrapLines(formatText(elem), "")...)
			out = append(out, "")
		case "ul":
			for _, li := range findElements(elem, "li") {
				out = append(out, wrapLines(formatText(li), "    ")...)
			}
			out = append(out, "")
		case "pre":
			text := strings.TrimSuffix(nodeText(elem), "\n")
			out = append(out, "```")
			out = append(out, strings.Split(text, "\n")...)
			out = append(out, "```")
		}
	}
	return out
}

// formatHeader turns "--- Day 1: Title ---" into the title underlined with
// "=" and a blank separator line. Anything else passes through unchanged.
func formatHeader(text string) []string {
	if m := reHeader.FindStringSubmatch(text); m != nil {
		title := m[1]
		return []string{title, strings.Repeat("=", len(title)), ""}
	}
	return []string{text}
}

// formatText flattens an element to text, backtick-quoting <code> children.
func formatText(elem *html.Node) string {
	var sb strings.Builder
	if elem.Data == "li" {
		sb.WriteString("- ")
	}
	for child := elem.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "code" {
			sb.WriteString("`" + nodeText(child) + "`")
			continue
		}
		sb.WriteString(nodeText(child))
	}
	return sb.String()
}

// wrapLines word-wraps s at 80 columns; continuation lines get the given
// indent prefix.
func wrapLines(s, subsequentIndent string) []string {
	lines := strings.Split(wordwrap.WrapString(s, wrapWidth-uint(len(subsequentIndent))), "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = subsequentIndent + lines[i]
	}
	return lines
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// findElements collects elements named name in document order, without
// descending into matches.
func findElements(n *html.Node, name string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == name {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// articleText returns the first <article>'s text with whitespace collapsed.
// Submission responses carry their verdict in a single article.
func articleText(b []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	articles := findElements(doc, "article")
	if len(articles) == 0 {
		return "", errors.New("no <article> in response")
	}
	return strings.Join(strings.Fields(nodeText(articles[0])), " "), nil
}
