package tracks

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository — Store поверх Postgres (pgx)
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, url, email string, price float64) (TrackRequest, error) {
	t := newTrack(url, email, price)
	_, err := r.db.Exec(ctx,
		`INSERT INTO track_requests (id, url, email, price, last_checked, alert_sent) VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.URL, t.Email, t.Price, t.LastChecked, t.AlertSent)
	if err != nil {
		return TrackRequest{}, err
	}
	return t, nil
}

func (r *Repository) ListByEmail(ctx context.Context, email string) ([]TrackRequest, error) {
	// порядок вставки через created_seq
	rows, err := r.db.Query(ctx, `
SELECT id::text, url, email, price, last_checked, alert_sent
FROM track_requests
WHERE email = $1
ORDER BY created_seq
`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TrackRequest{}
	for rows.Next() {
		var t TrackRequest
		if err := rows.Scan(&t.ID, &t.URL, &t.Email, &t.Price, &t.LastChecked, &t.AlertSent); err != nil {
			return nil, err
		}
		t.LastChecked = t.LastChecked.UTC()
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Close закрывает пул (блокирует, пока соединения не вернутся)
func (r *Repository) Close() error {
	r.db.Close()
	return nil
}
