package database

import (
	"context"
	"database/sql"
)

// EnsureSchema cria as tabelas na subida do processo. Todas as tabelas
// filhas cascateiam no delete do lead magnet dono.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lead_magnets (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('checklist', 'template', 'calculator', 'report')),
			value_promise TEXT,
			conversion_score INT NOT NULL,
			content JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			lead_magnet_id BIGINT NOT NULL REFERENCES lead_magnets(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS landing_pages (
			id BIGSERIAL PRIMARY KEY,
			lead_magnet_id BIGINT NOT NULL REFERENCES lead_magnets(id) ON DELETE CASCADE,
			headline TEXT NOT NULL,
			value TEXT,
			cta TEXT NOT NULL,
			form_fields JSONB,
			thank_you_page TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS email_templates (
			id BIGSERIAL PRIMARY KEY,
			lead_magnet_id BIGINT NOT NULL REFERENCES lead_magnets(id) ON DELETE CASCADE,
			sequence_number INT NOT NULL,
			subject TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (lead_magnet_id, sequence_number)
		)`,
		`CREATE TABLE IF NOT EXISTS upgrade_offers (
			id BIGSERIAL PRIMARY KEY,
			lead_magnet_id BIGINT NOT NULL REFERENCES lead_magnets(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT,
			link TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
