package tracks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/valeevte/PriceTracker/internal/scraper"
)

var (
	// ErrInvalidInput — не передан url или email
	ErrInvalidInput = errors.New("url and email are required")
	// ErrEmailRequired — пустой email в запросе списка
	ErrEmailRequired = errors.New("email is required")
)

// PriceExtractor is the part of scraper.Extractor the service needs.
type PriceExtractor interface {
	ExtractPrice(ctx context.Context, url string) (float64, error)
}

// Service связывает извлечение цены и хранилище
type Service struct {
	extractor PriceExtractor
	store     Store
}

func NewService(extractor PriceExtractor, store Store) *Service {
	return &Service{extractor: extractor, store: store}
}

// Submit extracts the current price of url and records a tracking request.
// Nothing is stored when extraction fails or yields a non-positive price.
func (s *Service) Submit(ctx context.Context, url, email string) (TrackRequest, error) {
	url = strings.TrimSpace(url)
	email = strings.TrimSpace(email)
	if url == "" || email == "" {
		return TrackRequest{}, ErrInvalidInput
	}

	price, err := s.extractor.ExtractPrice(ctx, url)
	if err != nil {
		return TrackRequest{}, err
	}
	if price <= 0 {
		log.Printf("tracks: rejecting price %v from %s", price, url)
		return TrackRequest{}, &scraper.ExtractError{
			Kind: scraper.KindParse,
			URL:  url,
			Err:  fmt.Errorf("non-positive price %v", price),
		}
	}

	t, err := s.store.Create(ctx, url, email, price)
	if err != nil {
		return TrackRequest{}, fmt.Errorf("create track request: %w", err)
	}
	return t, nil
}

// ListByEmail returns every request submitted with email, oldest first.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]TrackRequest, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	return s.store.ListByEmail(ctx, email)
}
