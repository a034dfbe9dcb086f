package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/runoshun/tasktracker/internal/domain"
)

// Ensure Scraper implements domain.PageScraper.
var _ domain.PageScraper = (*Scraper)(nil)

// Scraper extracts the text of <li> elements from a page.
type Scraper struct {
	client *http.Client
}

// NewScraper creates a Scraper. A nil client means http.DefaultClient.
func NewScraper(client *http.Client) *Scraper {
	if client == nil {
		client = http.DefaultClient
	}
	return &Scraper{client: client}
}

// Scrape fetches url and returns the stripped text of each <li> in document order.
// Non-2xx responses are errors; a page without list items yields an empty slice.
func (s *Scraper) Scrape(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch page: unexpected status %d", resp.StatusCode)
	}

	return ListItems(io.LimitReader(resp.Body, maxBodySize))
}

// ListItems parses HTML from r and returns the text of every <li> element.
// Nested items are reported separately, and the parent's text includes them.
func ListItems(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	items := []string{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Li {
			items = append(items, nodeText(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return items, nil
}

// nodeText concatenates the stripped text nodes under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
