package model

// Suggestion is a snapshot of a suggestion-channel message at decision
// time. Vote counts are read fresh from the message's reactions, never
// accumulated locally, so missed gateway events cannot cause drift.
type Suggestion struct {
	ID        string
	ChannelID string
	GuildID   string
	AuthorID  string
	Content   string
	CreatedAt int64
	Upvotes   int
	Downvotes int
}
