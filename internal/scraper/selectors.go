package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy pulls candidate price text out of a parsed page.
// It must not modify the document.
type Strategy struct {
	Name     string
	Selector string
}

// Find returns the trimmed text of the first element matching the selector.
func (s Strategy) Find(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(s.Selector).First().Text())
}

// DefaultStrategies are tried in order; the first non-empty text wins.
var DefaultStrategies = []Strategy{
	// flipkart product page
	{Name: "flipkart", Selector: "._30jeq3._16Jk6d"},
	{Name: "generic", Selector: "span.price"},
}

func findPriceText(doc *goquery.Document, strategies []Strategy) string {
	for _, s := range strategies {
		if text := s.Find(doc); text != "" {
			return text
		}
	}
	return ""
}
