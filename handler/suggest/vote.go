package suggest

import (
	"github.com/bwmarrin/discordgo"
)

const (
	// UpvoteEmoji triggers promotion evaluation; DownvoteEmoji exists
	// only for tallying and never triggers anything itself.
	UpvoteEmoji   = "👍"
	DownvoteEmoji = "👎"
)

// ShouldPromote decides whether a suggestion's current tallies qualify it
// for staff review: up-votes must reach the threshold and must not be
// outnumbered by down-votes. A tie at or above the threshold promotes.
func ShouldPromote(upvotes, downvotes, threshold int) bool {
	return upvotes >= threshold && upvotes >= downvotes
}

// TallyVotes reads the two vote counts off a freshly fetched message. The
// counts are never accumulated locally from gateway events, so a missed
// event cannot make them drift.
func TallyVotes(msg *discordgo.Message) (upvotes, downvotes int) {
	for _, r := range msg.Reactions {
		switch r.Emoji.Name {
		case UpvoteEmoji:
			upvotes = r.Count
		case DownvoteEmoji:
			downvotes = r.Count
		}
	}
	return upvotes, downvotes
}
