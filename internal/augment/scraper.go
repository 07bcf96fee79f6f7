package augment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"regexp"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Source describes one live-data site: where to fetch, which query keywords
// select it, and how to filter what was extracted.
type Source struct {
	Key          string
	Name         string
	CanonicalURL string
	FetchURL     string
	Triggers     []string // query keywords that select this source
	Label        string   // section header for extracted items
	ItemFilters  []string // keep extracted items containing any of these; empty = keep long items
}

// Fetcher retrieves structured text for one live source. Implementations are
// best-effort: parsing heuristics may vary, failure just means no content.
type Fetcher interface {
	Fetch(ctx context.Context, src Source) (string, error)
}

// Verify interface compliance
var _ Fetcher = (*HTTPFetcher)(nil)

var (
	reSpaces  = regexp.MustCompile(`\s+`)
	reSpecial = regexp.MustCompile(`[^\w\s.,;:!?()-]`)
)

// newsSelectors are class fragments that mark announcement blocks on
// government portals.
var newsSelectors = []string{"news-ticker", "marquee", "latest-news", "announcements", "news-item"}

var headingTags = map[string]bool{"h2": true, "h3": true, "h4": true}

// HTTPFetcher performs a single bounded plain GET per call with browser-like
// identification headers. No retries: the budget belongs to the caller.
type HTTPFetcher struct {
	client   *http.Client
	maxItems int
}

// NewHTTPFetcher creates a fetcher with the given per-request timeout.
func NewHTTPFetcher(timeout time.Duration, maxItems int) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxItems <= 0 {
		maxItems = 5
	}
	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		maxItems: maxItems,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, src Source) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.FetchURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s returned status %d", src.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return "", err
	}

	items := f.extractItems(body, src.ItemFilters)
	if len(items) > 0 {
		return src.Label + "\n- " + strings.Join(items, "\n- "), nil
	}

	// heading/selector heuristics found nothing; take a readability excerpt
	article, err := readability.FromReader(strings.NewReader(string(body)), mustParseURL(src.FetchURL))
	if err == nil {
		if excerpt := cleanText(article.TextContent); excerpt != "" {
			if len(excerpt) > 300 {
				excerpt = excerpt[:300]
			}
			return src.Label + "\n" + excerpt, nil
		}
	}
	return "", errors.New("no extractable content")
}

// extractItems walks the document for heading elements and known
// announcement blocks, keeping cleaned texts that pass the source filter.
func (f *HTTPFetcher) extractItems(body []byte, filters []string) []string {
	root, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil
	}
	var items []string
	seen := make(map[string]bool)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(items) >= f.maxItems {
			return
		}
		if n.Type == html.ElementNode && (headingTags[n.Data] || hasNewsClass(n)) {
			text := cleanText(nodeText(n))
			if keepItem(text, filters) && !seen[text] {
				seen[text] = true
				items = append(items, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return items
}

func keepItem(text string, filters []string) bool {
	if text == "" {
		return false
	}
	if len(filters) == 0 {
		return len(text) > 20
	}
	lower := strings.ToLower(text)
	for _, f := range filters {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

func hasNewsClass(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		class := strings.ToLower(attr.Val)
		for _, sel := range newsSelectors {
			if strings.Contains(class, sel) {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
		sb.WriteString(" ")
	}
	return sb.String()
}

func cleanText(s string) string {
	s = reSpecial.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func mustParseURL(raw string) *nurl.URL {
	u, err := nurl.Parse(raw)
	if err != nil {
		return &nurl.URL{}
	}
	return u
}
