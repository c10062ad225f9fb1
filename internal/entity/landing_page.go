package entity

import (
	"context"
	"errors"
	"time"
)

type LandingPage struct {
	ID           int64     `json:"id"`
	LeadMagnetID int64     `json:"lead_magnet_id"`
	Headline     string    `json:"headline"`
	Value        string    `json:"value,omitempty"` // subheadline / texto de apoio
	CTA          string    `json:"cta"`
	FormFields   []string  `json:"form_fields,omitempty"`
	ThankYouPage string    `json:"thank_you_page,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *LandingPage) Validate() error {
	if p.LeadMagnetID <= 0 {
		return errors.New("lead_magnet_id is required")
	}
	if p.Headline == "" {
		return errors.New("headline is required")
	}
	if p.CTA == "" {
		return errors.New("cta is required")
	}
	return nil
}

type LandingPageRepository interface {
	Create(ctx context.Context, p *LandingPage) error
	FindByID(ctx context.Context, id int64) (*LandingPage, error)
	FindByLeadMagnet(ctx context.Context, leadMagnetID int64) (*LandingPage, error)
	List(ctx context.Context, offset, limit int) ([]*LandingPage, error)
	Update(ctx context.Context, p *LandingPage) error
	Delete(ctx context.Context, id int64) error
}
