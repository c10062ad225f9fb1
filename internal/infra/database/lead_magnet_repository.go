package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

type LeadMagnetRepository struct {
	DB *sql.DB
}

func NewLeadMagnetRepository(db *sql.DB) *LeadMagnetRepository {
	return &LeadMagnetRepository{DB: db}
}

func (r *LeadMagnetRepository) Create(ctx context.Context, m *entity.LeadMagnet) error {
	content, err := marshalContent(m.Content)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lead_magnets (title, type, value_promise, conversion_score, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err = r.DB.QueryRowContext(ctx, query,
		m.Title,
		m.Kind,
		nullString(m.ValuePromise),
		m.ConversionScore,
		content,
	).Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}
	return nil
}

func (r *LeadMagnetRepository) FindByID(ctx context.Context, id int64) (*entity.LeadMagnet, error) {
	query := `
		SELECT id, title, type, value_promise, conversion_score, content, created_at
		FROM lead_magnets
		WHERE id = $1
	`
	return scanLeadMagnet(r.DB.QueryRowContext(ctx, query, id))
}

func (r *LeadMagnetRepository) List(ctx context.Context, offset, limit int) ([]*entity.LeadMagnet, error) {
	query := `
		SELECT id, title, type, value_promise, conversion_score, content, created_at
		FROM lead_magnets
		ORDER BY id DESC
		OFFSET $1 LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	magnets := []*entity.LeadMagnet{}
	for rows.Next() {
		m, err := scanLeadMagnet(rows)
		if err != nil {
			return nil, err
		}
		magnets = append(magnets, m)
	}
	return magnets, rows.Err()
}

func (r *LeadMagnetRepository) Update(ctx context.Context, m *entity.LeadMagnet) error {
	content, err := marshalContent(m.Content)
	if err != nil {
		return err
	}

	query := `
		UPDATE lead_magnets
		SET title = $1, type = $2, value_promise = $3, conversion_score = $4, content = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		m.Title, m.Kind, nullString(m.ValuePromise), m.ConversionScore, content, m.ID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// UpdateContent sobrescreve o conteúdo gerado. Diferente de landing
// pages e sequências, regenerar conteúdo é permitido livremente.
func (r *LeadMagnetRepository) UpdateContent(ctx context.Context, id int64, content *entity.Content) error {
	raw, err := marshalContent(content)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx,
		`UPDATE lead_magnets SET content = $1 WHERE id = $2`, raw, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *LeadMagnetRepository) Delete(ctx context.Context, id int64) error {
	// As tabelas filhas caem junto via ON DELETE CASCADE
	result, err := r.DB.ExecContext(ctx, `DELETE FROM lead_magnets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeadMagnet(row rowScanner) (*entity.LeadMagnet, error) {
	var m entity.LeadMagnet
	var valuePromise sql.NullString
	var content []byte

	err := row.Scan(&m.ID, &m.Title, &m.Kind, &valuePromise, &m.ConversionScore, &content, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	m.ValuePromise = valuePromise.String
	if len(content) > 0 {
		var c entity.Content
		if err := json.Unmarshal(content, &c); err != nil {
			return nil, err
		}
		m.Content = &c
	}
	return &m, nil
}

func marshalContent(c *entity.Content) (any, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
