package tracks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store — хранилище заявок. Только вставка и выборка по email.
type Store interface {
	Create(ctx context.Context, url, email string, price float64) (TrackRequest, error)
	ListByEmail(ctx context.Context, email string) ([]TrackRequest, error)
	Close() error
}

// newTrack заполняет id и время проверки для новой заявки.
// Время округлено до микросекунд, как его хранит timestamptz.
func newTrack(url, email string, price float64) TrackRequest {
	return TrackRequest{
		ID:          uuid.NewString(),
		URL:         url,
		Email:       email,
		Price:       price,
		LastChecked: time.Now().UTC().Truncate(time.Microsecond),
	}
}
