package database

import "fmt"

// tableDefinitions are the schemas this service owns. Attributes travel as
// opaque JSON text; the engine decides what belongs in them.
var tableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id TEXT PRIMARY KEY,
		resource_kind TEXT NOT NULL,
		category TEXT,
		title TEXT NOT NULL,
		description TEXT,
		commercial_mode TEXT,
		booking_type TEXT,
		pricing_model TEXT,
		price REAL,
		currency TEXT,
		address TEXT,
		city TEXT,
		state TEXT,
		postal_code TEXT,
		lat REAL,
		lng REAL,
		media TEXT,
		tags TEXT,
		attributes TEXT,
		status TEXT NOT NULL DEFAULT 'draft',
		created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		changed TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_kind ON listings(resource_kind)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_category ON listings(category)`,
	`CREATE TABLE IF NOT EXISTS payment_sessions (
		id TEXT PRIMARY KEY,
		listing_id TEXT NOT NULL,
		amount REAL NOT NULL,
		currency TEXT NOT NULL,
		success_url TEXT,
		cancel_url TEXT,
		checkout_url TEXT,
		status TEXT NOT NULL DEFAULT 'created',
		created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id TEXT PRIMARY KEY,
		listing_id TEXT NOT NULL,
		sender_name TEXT NOT NULL,
		sender_email TEXT NOT NULL,
		message TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		response_message TEXT,
		created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		responded TIMESTAMP
	)`,
}

// CreateTables ensures all required tables exist.
func (db *DB) CreateTables() error {
	for _, definition := range tableDefinitions {
		if _, err := db.Exec(definition); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
