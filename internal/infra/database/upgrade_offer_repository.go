package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

type UpgradeOfferRepository struct {
	DB *sql.DB
}

func NewUpgradeOfferRepository(db *sql.DB) *UpgradeOfferRepository {
	return &UpgradeOfferRepository{DB: db}
}

func (r *UpgradeOfferRepository) Create(ctx context.Context, o *entity.UpgradeOffer) error {
	query := `
		INSERT INTO upgrade_offers (lead_magnet_id, title, description, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		o.LeadMagnetID, o.Title, nullString(o.Description), o.Link,
	).Scan(&o.ID, &o.CreatedAt)
}

func (r *UpgradeOfferRepository) FindByID(ctx context.Context, id int64) (*entity.UpgradeOffer, error) {
	query := `
		SELECT id, lead_magnet_id, title, description, link, created_at
		FROM upgrade_offers
		WHERE id = $1
	`
	return scanUpgradeOffer(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UpgradeOfferRepository) ListByLeadMagnet(ctx context.Context, leadMagnetID int64) ([]*entity.UpgradeOffer, error) {
	query := `
		SELECT id, lead_magnet_id, title, description, link, created_at
		FROM upgrade_offers
		WHERE lead_magnet_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, leadMagnetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []*entity.UpgradeOffer{}
	for rows.Next() {
		o, err := scanUpgradeOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *UpgradeOfferRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM upgrade_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func scanUpgradeOffer(row rowScanner) (*entity.UpgradeOffer, error) {
	var o entity.UpgradeOffer
	var description sql.NullString
	err := row.Scan(&o.ID, &o.LeadMagnetID, &o.Title, &description, &o.Link, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Description = description.String
	return &o, nil
}
