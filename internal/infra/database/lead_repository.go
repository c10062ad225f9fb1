package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/jackc/pgx/v5/pgconn"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (name, email, lead_magnet_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, l.Name, l.Email, l.LeadMagnetID).
		Scan(&l.ID, &l.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique_violation no email
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	query := `
		SELECT id, name, email, lead_magnet_id, created_at
		FROM leads
		WHERE id = $1
	`
	return scanLead(r.DB.QueryRowContext(ctx, query, id))
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := `
		SELECT id, name, email, lead_magnet_id, created_at
		FROM leads
		WHERE email = $1
	`
	return scanLead(r.DB.QueryRowContext(ctx, query, email))
}

func (r *LeadRepository) List(ctx context.Context, offset, limit int) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, email, lead_magnet_id, created_at
		FROM leads
		ORDER BY id DESC
		OFFSET $1 LIMIT $2
	`
	return r.queryLeads(ctx, query, offset, limit)
}

func (r *LeadRepository) ListByLeadMagnet(ctx context.Context, leadMagnetID int64, offset, limit int) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, email, lead_magnet_id, created_at
		FROM leads
		WHERE lead_magnet_id = $1
		ORDER BY id DESC
		OFFSET $2 LIMIT $3
	`
	return r.queryLeads(ctx, query, leadMagnetID, offset, limit)
}

func (r *LeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $1, email = $2, lead_magnet_id = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, l.Name, l.Email, l.LeadMagnetID, l.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}
	return requireAffected(result)
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Email, &l.LeadMagnetID, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
