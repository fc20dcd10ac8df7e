package httpapi

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"fileboard-client/internal/domain"
)

// ParseListing extracts the <li> entries of a directory page. The entry name is
// the item text; Link is the href of its first anchor, if any.
func ParseListing(body string) ([]domain.Entry, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}

	var entries []domain.Entry
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			name := strings.TrimSpace(textContent(n))
			if name != "" {
				entries = append(entries, domain.Entry{Name: name, Link: firstHref(n)})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return entries, nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func firstHref(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "a" {
		for _, attr := range n.Attr {
			if attr.Key == "href" {
				return attr.Val
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href := firstHref(c); href != "" {
			return href
		}
	}
	return ""
}
