package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmailTemplateRepository struct {
	DB *sql.DB
}

func NewEmailTemplateRepository(db *sql.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{DB: db}
}

func (r *EmailTemplateRepository) Create(ctx context.Context, t *entity.EmailTemplate) error {
	query := `
		INSERT INTO email_templates (lead_magnet_id, sequence_number, subject, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		t.LeadMagnetID, t.SequenceNumber, t.Subject, t.Body,
	).Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// posição duplicada na sequência do mesmo magnet
			return entity.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *EmailTemplateRepository) FindByID(ctx context.Context, id int64) (*entity.EmailTemplate, error) {
	query := emailTemplateSelect + ` WHERE id = $1`
	return scanEmailTemplate(r.DB.QueryRowContext(ctx, query, id))
}

func (r *EmailTemplateRepository) List(ctx context.Context, offset, limit int) ([]*entity.EmailTemplate, error) {
	query := emailTemplateSelect + ` ORDER BY id DESC OFFSET $1 LIMIT $2`
	return r.queryTemplates(ctx, query, offset, limit)
}

// ListByLeadMagnet devolve a sequência ordenada por posição.
func (r *EmailTemplateRepository) ListByLeadMagnet(ctx context.Context, leadMagnetID int64) ([]*entity.EmailTemplate, error) {
	query := emailTemplateSelect + ` WHERE lead_magnet_id = $1 ORDER BY sequence_number`
	return r.queryTemplates(ctx, query, leadMagnetID)
}

func (r *EmailTemplateRepository) Update(ctx context.Context, t *entity.EmailTemplate) error {
	query := `
		UPDATE email_templates
		SET sequence_number = $1, subject = $2, body = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, t.SequenceNumber, t.Subject, t.Body, t.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrAlreadyExists
		}
		return err
	}
	return requireAffected(result)
}

func (r *EmailTemplateRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM email_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *EmailTemplateRepository) queryTemplates(ctx context.Context, query string, args ...any) ([]*entity.EmailTemplate, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []*entity.EmailTemplate{}
	for rows.Next() {
		t, err := scanEmailTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

const emailTemplateSelect = `
	SELECT id, lead_magnet_id, sequence_number, subject, body, created_at
	FROM email_templates`

func scanEmailTemplate(row rowScanner) (*entity.EmailTemplate, error) {
	var t entity.EmailTemplate
	err := row.Scan(&t.ID, &t.LeadMagnetID, &t.SequenceNumber, &t.Subject, &t.Body, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
