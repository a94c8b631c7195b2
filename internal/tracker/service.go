// Package tracker implements the habit tracker operations. Each exported
// operation runs as one transaction against the store and takes the caller's
// identity explicitly.
package tracker

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"habit-tracker-go/internal/models"
)

type Service struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

type Option func(*Service)

// WithLocation sets the time zone that decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{db: db, loc: time.UTC, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// unit runs fn in a transaction bound to ctx. The transaction is committed
// when fn returns nil and rolled back otherwise, including on panic.
func (s *Service) unit(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}

// DefaultUser resolves the account every request acts as.
func (s *Service) DefaultUser(ctx context.Context) (*models.User, error) {
	var user models.User
	err := s.unit(ctx, func(tx *gorm.DB) error {
		return tx.Where("username = ?", models.DefaultUsername).First(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal("Default user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// User loads a user by id.
func (s *Service) User(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := s.unit(ctx, func(tx *gorm.DB) error {
		return tx.First(&user, userID).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
