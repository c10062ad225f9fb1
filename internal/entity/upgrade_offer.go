package entity

import (
	"context"
	"errors"
	"time"
)

type UpgradeOffer struct {
	ID           int64     `json:"id"`
	LeadMagnetID int64     `json:"lead_magnet_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Link         string    `json:"link"`
	CreatedAt    time.Time `json:"created_at"`
}

func (o *UpgradeOffer) Validate() error {
	if o.LeadMagnetID <= 0 {
		return errors.New("lead_magnet_id is required")
	}
	if o.Title == "" {
		return errors.New("title is required")
	}
	if o.Link == "" {
		return errors.New("link is required")
	}
	return nil
}

type UpgradeOfferRepository interface {
	Create(ctx context.Context, o *UpgradeOffer) error
	FindByID(ctx context.Context, id int64) (*UpgradeOffer, error)
	ListByLeadMagnet(ctx context.Context, leadMagnetID int64) ([]*UpgradeOffer, error)
	Delete(ctx context.Context, id int64) error
}
