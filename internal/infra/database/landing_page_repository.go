package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

type LandingPageRepository struct {
	DB *sql.DB
}

func NewLandingPageRepository(db *sql.DB) *LandingPageRepository {
	return &LandingPageRepository{DB: db}
}

func (r *LandingPageRepository) Create(ctx context.Context, p *entity.LandingPage) error {
	fields, err := marshalFormFields(p.FormFields)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO landing_pages (lead_magnet_id, headline, value, cta, form_fields, thank_you_page)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		p.LeadMagnetID,
		p.Headline,
		nullString(p.Value),
		p.CTA,
		fields,
		nullString(p.ThankYouPage),
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *LandingPageRepository) FindByID(ctx context.Context, id int64) (*entity.LandingPage, error) {
	query := landingPageSelect + ` WHERE id = $1`
	return scanLandingPage(r.DB.QueryRowContext(ctx, query, id))
}

// FindByLeadMagnet devolve ErrNotFound se o magnet ainda não tem
// landing page; é assim que o generate detecta o conflito.
func (r *LandingPageRepository) FindByLeadMagnet(ctx context.Context, leadMagnetID int64) (*entity.LandingPage, error) {
	query := landingPageSelect + ` WHERE lead_magnet_id = $1 ORDER BY id LIMIT 1`
	return scanLandingPage(r.DB.QueryRowContext(ctx, query, leadMagnetID))
}

func (r *LandingPageRepository) List(ctx context.Context, offset, limit int) ([]*entity.LandingPage, error) {
	query := landingPageSelect + ` ORDER BY id DESC OFFSET $1 LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*entity.LandingPage{}
	for rows.Next() {
		p, err := scanLandingPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (r *LandingPageRepository) Update(ctx context.Context, p *entity.LandingPage) error {
	fields, err := marshalFormFields(p.FormFields)
	if err != nil {
		return err
	}

	query := `
		UPDATE landing_pages
		SET headline = $1, value = $2, cta = $3, form_fields = $4, thank_you_page = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.Headline, nullString(p.Value), p.CTA, fields, nullString(p.ThankYouPage), p.ID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *LandingPageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM landing_pages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

const landingPageSelect = `
	SELECT id, lead_magnet_id, headline, value, cta, form_fields, thank_you_page, created_at
	FROM landing_pages`

func scanLandingPage(row rowScanner) (*entity.LandingPage, error) {
	var p entity.LandingPage
	var value, thankYou sql.NullString
	var fields []byte

	err := row.Scan(&p.ID, &p.LeadMagnetID, &p.Headline, &value, &p.CTA, &fields, &thankYou, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Value = value.String
	p.ThankYouPage = thankYou.String
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &p.FormFields); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func marshalFormFields(fields []string) (any, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	return json.Marshal(fields)
}
