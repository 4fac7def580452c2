package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperror "chat-agent-service/internal/error"

	"github.com/PuerkitoBio/goquery"
)

// Result represents a single web search result
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Client interface for web search operations
type Client interface {
	Search(ctx context.Context, query string, count int) ([]Result, error)
}

// DefaultResultCount is used when a request does not say how many
// results it wants
const DefaultResultCount = 5

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DuckDuckGoClient scrapes the DuckDuckGo HTML endpoint. The endpoint
// serves a static page so no JS rendering is needed.
type DuckDuckGoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDuckDuckGoClient creates a new search client. baseURL is the HTML
// search endpoint, e.g. https://html.duckduckgo.com/html
func NewDuckDuckGoClient(baseURL string) *DuckDuckGoClient {
	return &DuckDuckGoClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search fetches up to count results for query
func (c *DuckDuckGoClient) Search(ctx context.Context, query string, count int) ([]Result, error) {
	if count <= 0 {
		count = DefaultResultCount
	}

	searchURL := fmt.Sprintf("%s/?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, apperror.NewInternalError("failed to create search request", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewSearchError("failed to reach search provider", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NewSearchError(
			fmt.Sprintf("search provider returned status %d", resp.StatusCode),
			nil,
		)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, apperror.NewSearchError("failed to parse search results page", err)
	}

	return parseResults(doc, count), nil
}

// parseResults extracts results from a DuckDuckGo HTML results page.
// Results without a URL are skipped.
func parseResults(doc *goquery.Document, count int) []Result {
	results := make([]Result, 0, count)

	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := s.Find(".result__title a").First()
		snippet := s.Find(".result__snippet").First()

		href, _ := title.Attr("href")
		if href == "" {
			return true
		}

		results = append(results, Result{
			Title:   strings.TrimSpace(title.Text()),
			Content: strings.TrimSpace(snippet.Text()),
			URL:     href,
		})

		return len(results) < count
	})

	return results
}
