package model

// ReviewState is the lifecycle state of a review case. Approved and
// Denied are terminal; no transition is accepted out of either.
type ReviewState string

const (
	ReviewAwaiting ReviewState = "awaiting"
	ReviewApproved ReviewState = "approved"
	ReviewDenied   ReviewState = "denied"
)

// ReviewCase is the durable record of a promoted suggestion awaiting a
// staff decision. It carries its own snapshot of the suggestion so the
// card stays decidable even if the original message is edited or the
// process restarts between promotion and decision.
type ReviewCase struct {
	ID        string
	GuildID   string
	MessageID string
	ChannelID string
	AuthorID  string
	Content   string
	CreatedAt int64
	Upvotes   int
	Downvotes int

	// ReviewChannelID/ReviewMessageID locate the posted review card.
	ReviewChannelID string
	ReviewMessageID string

	State     ReviewState
	DecidedBy string
	AdminNote string
}
