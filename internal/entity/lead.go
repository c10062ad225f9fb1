package entity

import (
	"context"
	"errors"
	"net/mail"
	"time"
)

type Lead struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // unique no banco
	LeadMagnetID int64     `json:"lead_magnet_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLead(name, email string, leadMagnetID int64) (*Lead, error) {
	l := &Lead{
		Name:         name,
		Email:        email,
		LeadMagnetID: leadMagnetID,
		CreatedAt:    time.Now(),
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(l.Email); err != nil {
		return errors.New("email is invalid")
	}
	if l.LeadMagnetID <= 0 {
		return errors.New("lead_magnet_id is required")
	}
	return nil
}

type LeadRepository interface {
	Create(ctx context.Context, l *Lead) error
	FindByID(ctx context.Context, id int64) (*Lead, error)
	FindByEmail(ctx context.Context, email string) (*Lead, error)
	List(ctx context.Context, offset, limit int) ([]*Lead, error)
	ListByLeadMagnet(ctx context.Context, leadMagnetID int64, offset, limit int) ([]*Lead, error)
	Update(ctx context.Context, l *Lead) error
	Delete(ctx context.Context, id int64) error
}
