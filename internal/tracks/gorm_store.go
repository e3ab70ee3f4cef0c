package tracks

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TrackRequestModel is the gorm row for a tracking request.
type TrackRequestModel struct {
	Seq         uint      `gorm:"primaryKey;autoIncrement"`
	ID          string    `gorm:"uniqueIndex;size:36;not null"`
	URL         string    `gorm:"not null"`
	Email       string    `gorm:"index;not null"`
	Price       float64   `gorm:"not null"`
	LastChecked time.Time `gorm:"not null"`
	AlertSent   bool      `gorm:"not null;default:false"`
}

func (TrackRequestModel) TableName() string { return "track_requests" }

// GormStore implements Store with gorm + sqlite.
type GormStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the sqlite file at path and migrates it.
// ":memory:" gives a throwaway database.
func OpenSQLite(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite пишет в один поток; для ":memory:" ещё и одна общая база
	sqlDB.SetMaxOpenConns(1)
	return NewGormStore(db)
}

// NewGormStore runs auto-migrations on an already opened db.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&TrackRequestModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Create(ctx context.Context, url, email string, price float64) (TrackRequest, error) {
	t := newTrack(url, email, price)
	model := trackToModel(t)
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return TrackRequest{}, err
	}
	return t, nil
}

func (s *GormStore) ListByEmail(ctx context.Context, email string) ([]TrackRequest, error) {
	var models []TrackRequestModel
	if err := s.db.WithContext(ctx).Where("email = ?", email).Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]TrackRequest, 0, len(models))
	for _, m := range models {
		res = append(res, trackFromModel(m))
	}
	return res, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func trackToModel(t TrackRequest) TrackRequestModel {
	return TrackRequestModel{
		ID:          t.ID,
		URL:         t.URL,
		Email:       t.Email,
		Price:       t.Price,
		LastChecked: t.LastChecked,
		AlertSent:   t.AlertSent,
	}
}

func trackFromModel(m TrackRequestModel) TrackRequest {
	return TrackRequest{
		ID:          m.ID,
		URL:         m.URL,
		Email:       m.Email,
		Price:       m.Price,
		LastChecked: m.LastChecked.UTC(),
		AlertSent:   m.AlertSent,
	}
}
