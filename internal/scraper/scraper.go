package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultUserAgent is a desktop Chrome string; some shops block Go's default one.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Extractor fetches a product page and reads its price.
type Extractor struct {
	client     *http.Client
	userAgent  string
	strategies []Strategy
}

type Option func(*Extractor)

// WithClient replaces the HTTP client. Tests use it with httptest servers.
// A nil client keeps the default one.
func WithClient(c *http.Client) Option {
	return func(e *Extractor) {
		if c != nil {
			e.client = c
		}
	}
}

// WithTimeout sets a whole-request timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		var c http.Client
		if e.client != nil {
			c = *e.client
		}
		c.Timeout = d
		e.client = &c
	}
}

func WithUserAgent(ua string) Option {
	return func(e *Extractor) {
		if ua != "" {
			e.userAgent = ua
		}
	}
}

func WithStrategies(s ...Strategy) Option {
	return func(e *Extractor) { e.strategies = s }
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		client:     &http.Client{},
		userAgent:  DefaultUserAgent,
		strategies: DefaultStrategies,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractPrice does a single GET of url and returns the first price the
// selector chain finds. There are no retries. Every failure is an *ExtractError.
func (e *Extractor) ExtractPrice(ctx context.Context, url string) (float64, error) {
	price, err := e.extract(ctx, url)
	if err != nil {
		log.Printf("scraper: %v", err)
		return 0, err
	}
	return price, nil
}

func (e *Extractor) extract(ctx context.Context, url string) (float64, error) {
	fail := func(kind Kind, err error) (float64, error) {
		return 0, &ExtractError{Kind: kind, URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fail(KindFetch, err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return fail(KindFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(KindFetch, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fail(KindFetch, fmt.Errorf("read body: %w", err))
	}

	text := findPriceText(doc, e.strategies)
	if text == "" {
		return fail(KindNotFound, nil)
	}

	price, err := ParsePrice(text)
	if err != nil {
		return fail(KindParse, err)
	}
	return price, nil
}
