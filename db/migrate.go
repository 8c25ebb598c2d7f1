package db

import "fmt"

func createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS review_cases (
		id TEXT PRIMARY KEY,
		guild_id TEXT NOT NULL,
		message_id TEXT NOT NULL,
		channel_id TEXT NOT NULL,
		author_id TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		upvotes INTEGER NOT NULL DEFAULT 0,
		downvotes INTEGER NOT NULL DEFAULT 0,
		review_channel_id TEXT NOT NULL DEFAULT '',
		review_message_id TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT 'awaiting',
		decided_by TEXT NOT NULL DEFAULT '',
		admin_note TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_review_cases_message ON review_cases (guild_id, message_id);
	`

	if _, err := DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}
