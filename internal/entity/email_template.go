package entity

import (
	"context"
	"errors"
	"time"
)

type EmailTemplate struct {
	ID             int64     `json:"id"`
	LeadMagnetID   int64     `json:"lead_magnet_id"`
	SequenceNumber int       `json:"sequence_number"` // posição na sequência, único por magnet
	Subject        string    `json:"subject"`
	Body           string    `json:"body"` // pode conter o placeholder {name}
	CreatedAt      time.Time `json:"created_at"`
}

func (t *EmailTemplate) Validate() error {
	if t.LeadMagnetID <= 0 {
		return errors.New("lead_magnet_id is required")
	}
	if t.SequenceNumber < 1 {
		return errors.New("sequence_number must be positive")
	}
	if t.Subject == "" {
		return errors.New("subject is required")
	}
	if t.Body == "" {
		return errors.New("body is required")
	}
	return nil
}

type EmailTemplateRepository interface {
	Create(ctx context.Context, t *EmailTemplate) error
	FindByID(ctx context.Context, id int64) (*EmailTemplate, error)
	List(ctx context.Context, offset, limit int) ([]*EmailTemplate, error)
	ListByLeadMagnet(ctx context.Context, leadMagnetID int64) ([]*EmailTemplate, error)
	Update(ctx context.Context, t *EmailTemplate) error
	Delete(ctx context.Context, id int64) error
}
