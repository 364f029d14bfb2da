package db

import (
	"context"
	"fmt"
	"strings"

	"housingready/pkg/types"
)

// Flag columns are integers holding 0 or 1 on both backends.
const clientsTable = `
CREATE TABLE IF NOT EXISTS clients (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    clarity_id TEXT UNIQUE,
    outreach_worker TEXT,
    date_of_entry {{timestamp}} NOT NULL,
    phase1_id {{flag}},
    phase2_social_security {{flag}},
    phase3_birth_cert {{flag}},
    phase4_proof_of_income {{flag}},
    housing_paperwork_completed {{flag}},
    housed {{flag}},
    housing_date {{timestamp}},
    has_bank_account {{flag}},
    has_savings {{flag}},
    has_chime {{flag}},
    needs_detox {{flag}},
    detox_referral_made_to TEXT,
    needs_mental_health {{flag}},
    mental_health_referral_made_to TEXT,
    notes TEXT,
    created_at {{timestamp}} NOT NULL,
    updated_at {{timestamp}} NOT NULL
)`

const documentsTable = `
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
    file_name TEXT NOT NULL,
    file_type TEXT NOT NULL,
    file_size BIGINT NOT NULL,
    file_data {{blob}} NOT NULL,
    uploaded_by TEXT NOT NULL DEFAULT '{{default_uploader}}',
    uploaded_at {{timestamp}} NOT NULL
)`

var schemaStatements = []string{
	clientsTable,
	documentsTable,
	`CREATE INDEX IF NOT EXISTS idx_clients_created_at ON clients(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_client ON documents(client_id, uploaded_at)`,
}

var dialectTypes = map[Dialect]*strings.Replacer{
	DialectPostgres: strings.NewReplacer(
		"{{timestamp}}", "TIMESTAMPTZ",
		"{{flag}}", "SMALLINT NOT NULL DEFAULT 0",
		"{{blob}}", "BYTEA",
		"{{default_uploader}}", types.DefaultUploader,
	),
	DialectSQLite: strings.NewReplacer(
		"{{timestamp}}", "DATETIME",
		"{{flag}}", "INTEGER NOT NULL DEFAULT 0",
		"{{blob}}", "BLOB",
		"{{default_uploader}}", types.DefaultUploader,
	),
}

// Schema renders the table definitions for the given backend.
func Schema(dialect Dialect) []string {
	replacer := dialectTypes[dialect]
	out := make([]string, len(schemaStatements))
	for i, stmt := range schemaStatements {
		out[i] = replacer.Replace(stmt)
	}
	return out
}

// EnsureSchema creates the tables if they do not exist yet. It does not
// alter existing tables.
func (d *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range Schema(d.Dialect) {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
