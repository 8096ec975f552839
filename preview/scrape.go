package preview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/familykitchen/recipeshelf/internal/types"
)

// Deployments without a preview endpoint scrape the target page directly.
// Limits match the remote extractor's caps.
const (
	maxScrapeBody  = 50_000
	maxTitleLen    = 200
	maxDescLen     = 300
	maxImageLen    = 500
	maxSnippetLen  = 400
	defaultScrapUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Scraper is a Source that extracts open-graph metadata from the linked
// page itself.
type Scraper struct {
	http      *http.Client
	userAgent string
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithScraperHTTPClient overrides the HTTP client used for page fetches.
func WithScraperHTTPClient(hc *http.Client) ScraperOption {
	return func(s *Scraper) { s.http = hc }
}

// NewScraper builds a scraping preview source. The default client follows
// redirects and gives up after 8 seconds.
func NewScraper(opts ...ScraperOption) *Scraper {
	s := &Scraper{
		http:      &http.Client{Timeout: 8 * time.Second},
		userAgent: defaultScrapUA,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchPreview implements Source. Non-HTML targets yield metadata holding
// only the site host.
func (s *Scraper) FetchPreview(ctx context.Context, rawURL string) (*types.PreviewMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("scrape preview: status %d", resp.StatusCode)
	}

	final := resp.Request.URL
	if !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return &types.PreviewMetadata{Site: final.Host}, nil
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxScrapeBody))
	if err != nil {
		return nil, err
	}

	meta := extractMeta(doc, final)
	meta.Site = final.Host
	return meta, nil
}

func extractMeta(doc *goquery.Document, base *url.URL) *types.PreviewMetadata {
	meta := &types.PreviewMetadata{}

	meta.Title = truncate(strings.TrimSpace(doc.Find("title").First().Text()), maxTitleLen)

	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(content) != "" {
			meta.Description = truncate(strings.ReplaceAll(strings.TrimSpace(content), "\n", " "), maxDescLen)
			break
		}
	}

	for _, sel := range []string{`meta[property="og:image"]`, `meta[name="twitter:image"]`} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(content) != "" {
			meta.Image = strings.TrimSpace(content)
			break
		}
	}
	if meta.Image == "" {
		doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			for _, attr := range []string{"data-original", "data-src", "src"} {
				if v, ok := img.Attr(attr); ok && strings.TrimSpace(v) != "" {
					meta.Image = strings.TrimSpace(v)
					return false
				}
			}
			return true
		})
	}
	meta.Image = truncate(resolveImage(meta.Image, base), maxImageLen)

	if p := doc.Find("p").First(); p.Length() > 0 {
		meta.Snippet = truncate(strings.TrimSpace(p.Text()), maxSnippetLen)
	}

	return meta
}

// resolveImage turns protocol-relative and page-relative image references
// into absolute URLs.
func resolveImage(src string, base *url.URL) string {
	switch {
	case src == "":
		return ""
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "http"):
		return src
	case base != nil:
		ref, err := url.Parse(src)
		if err != nil {
			return ""
		}
		return base.ResolveReference(ref).String()
	default:
		return src
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
