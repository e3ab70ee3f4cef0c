package scraper

import (
	"errors"
	"fmt"
)

// Kind says which stage of extraction failed.
type Kind int

const (
	// KindFetch covers transport errors, non-2xx responses and unreadable bodies.
	KindFetch Kind = iota + 1
	// KindNotFound means no selector matched non-empty text.
	KindNotFound
	// KindParse means text was found but holds no number.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindNotFound:
		return "not_found"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

var (
	ErrFetch    = errors.New("fetch failed")
	ErrNotFound = errors.New("price not found")
	ErrParse    = errors.New("price not numeric")
)

// ExtractError is returned by ExtractPrice for every failure.
type ExtractError struct {
	Kind Kind
	URL  string
	Err  error
}

func (e *ExtractError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("extract %s: %s", e.URL, e.Kind)
	}
	return fmt.Sprintf("extract %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) and friends match on Kind.
func (e *ExtractError) Is(target error) bool {
	switch target {
	case ErrFetch:
		return e.Kind == KindFetch
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

// KindOf reports the extraction stage of err, or 0 if err is not an *ExtractError.
func KindOf(err error) Kind {
	var ee *ExtractError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return 0
}
