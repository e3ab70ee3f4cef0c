package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	priceCleaner = strings.NewReplacer("₹", "", ",", "")
	// ведущее число; хвост вроде " onwards" отбрасывается
	leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// ParsePrice strips the rupee sign and thousands separators and reads the
// leading decimal number of what is left.
func ParsePrice(text string) (float64, error) {
	cleaned := strings.TrimSpace(priceCleaner.Replace(text))
	num := leadingNumber.FindString(cleaned)
	if num == "" {
		return 0, fmt.Errorf("%q has no leading number", text)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
