package ingest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Page is the cleaned-up text of one fetched URL.
type Page struct {
	URL         string
	Title       string
	Description string
	Text        string
}

// Scraper fetches site pages and strips them down to plain text.
type Scraper struct {
	client *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *Scraper) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	// Boilerplate carries no answerable content.
	doc.Find("script, style, nav, header, footer").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = url
	}
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")

	return &Page{
		URL:         url,
		Title:       title,
		Description: strings.TrimSpace(desc),
		Text:        cleanText(doc.Find("body").Text()),
	}, nil
}

// cleanText collapses runs of whitespace and drops empty lines.
func cleanText(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// SourceURLs returns the page set to ingest: SCRAPE_URLS (comma-separated)
// or the built-in site map.
func SourceURLs() []string {
	if v := os.Getenv("SCRAPE_URLS"); v != "" {
		var urls []string
		for _, u := range strings.Split(v, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
		if len(urls) > 0 {
			return urls
		}
	}

	base := os.Getenv("SCRAPE_BASE_URL")
	if base == "" {
		base = "https://www.e2msolutions.com"
	}
	base = strings.TrimRight(base, "/")

	return []string{
		base + "/",
		base + "/services",
		base + "/white-label",
		base + "/hire-remote-team",
		base + "/work",
		base + "/company",
		base + "/contact-us",
	}
}
