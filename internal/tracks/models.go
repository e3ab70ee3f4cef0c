package tracks

import "time"

// TrackRequest — заявка на отслеживание цены одного товара.
// Создаётся один раз и больше не меняется.
type TrackRequest struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Email       string    `json:"email"`
	Price       float64   `json:"price"`
	LastChecked time.Time `json:"lastChecked"`
	AlertSent   bool      `json:"alertSent"`
}
