package db

import (
	"database/sql"

	"suggestbot/model"
)

// CreateReviewCase inserts a new review case in the awaiting state.
func CreateReviewCase(rc *model.ReviewCase) error {
	_, err := DB.Exec(`
		INSERT INTO review_cases (
			id, guild_id, message_id, channel_id, author_id, content,
			created_at, upvotes, downvotes, review_channel_id,
			review_message_id, state, decided_by, admin_note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rc.ID, rc.GuildID, rc.MessageID, rc.ChannelID, rc.AuthorID,
		rc.Content, rc.CreatedAt, rc.Upvotes, rc.Downvotes,
		rc.ReviewChannelID, rc.ReviewMessageID,
		string(model.ReviewAwaiting), rc.DecidedBy, rc.AdminNote)
	return err
}

// GetReviewCase fetches a review case by ID. Returns (nil, nil) if no such
// case exists.
func GetReviewCase(id string) (*model.ReviewCase, error) {
	row := DB.QueryRow(`
		SELECT id, guild_id, message_id, channel_id, author_id, content,
		       created_at, upvotes, downvotes, review_channel_id,
		       review_message_id, state, decided_by, admin_note
		FROM review_cases WHERE id = ?`, id)
	return scanReviewCase(row)
}

func scanReviewCase(row *sql.Row) (*model.ReviewCase, error) {
	var rc model.ReviewCase
	var state string
	err := row.Scan(&rc.ID, &rc.GuildID, &rc.MessageID, &rc.ChannelID,
		&rc.AuthorID, &rc.Content, &rc.CreatedAt, &rc.Upvotes,
		&rc.Downvotes, &rc.ReviewChannelID, &rc.ReviewMessageID,
		&state, &rc.DecidedBy, &rc.AdminNote)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rc.State = model.ReviewState(state)
	return &rc, nil
}

// SetReviewMessage records where the review card was posted.
func SetReviewMessage(id, channelID, messageID string) error {
	_, err := DB.Exec(`
		UPDATE review_cases SET review_channel_id = ?, review_message_id = ?
		WHERE id = ?`, channelID, messageID, id)
	return err
}

// DecideReviewCase moves an awaiting case to a terminal state. Returns
// true only if this call performed the transition; a case already decided
// is left untouched and reported as false, which is what makes repeated
// button presses no-ops even when they race.
func DecideReviewCase(id string, state model.ReviewState, decidedBy, adminNote string) (bool, error) {
	res, err := DB.Exec(`
		UPDATE review_cases SET state = ?, decided_by = ?, admin_note = ?
		WHERE id = ? AND state = ?`,
		string(state), decidedBy, adminNote, id, string(model.ReviewAwaiting))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
