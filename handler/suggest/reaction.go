package suggest

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
)

// MessageReactionAdd handles reaction additions on suggestion messages.
// It filters out everything that cannot lead to a promotion, re-tallies
// the votes from the live message, and escalates the suggestion exactly
// once when the threshold is crossed.
func MessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" || r.UserID == s.State.User.ID {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}

	cfg := cfgStore.Get(r.GuildID)
	if cfg.SuggestionChannel == "" || r.ChannelID != cfg.SuggestionChannel {
		return
	}
	if r.Emoji.Name != UpvoteEmoji {
		return
	}
	if cfgStore.HasPromoted(r.GuildID, r.MessageID) {
		return
	}

	msg, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("Failed to fetch suggestion message %s: %v", r.MessageID, err)
		return
	}

	upvotes, downvotes := TallyVotes(msg)
	if !ShouldPromote(upvotes, downvotes, cfg.Threshold) {
		return
	}

	// TryPromote is the enforcement point: a burst of qualifying
	// reaction events all reach this line, only one wins.
	if !cfgStore.TryPromote(r.GuildID, r.MessageID) {
		return
	}

	suggestion := &model.Suggestion{
		ID:        msg.ID,
		ChannelID: msg.ChannelID,
		GuildID:   r.GuildID,
		AuthorID:  msg.Author.ID,
		Content:   msg.Content,
		CreatedAt: msg.Timestamp.Unix(),
		Upvotes:   upvotes,
		Downvotes: downvotes,
	}
	OpenReviewCase(s, suggestion, cfg)
}
