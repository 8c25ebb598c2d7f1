package suggest

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// MessageCreate auto-reacts with the two vote emoji to every non-bot
// message posted in the bound suggestion channel, so voting is possible
// the moment a suggestion lands.
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	cfg := cfgStore.Get(m.GuildID)
	if cfg.SuggestionChannel == "" || m.ChannelID != cfg.SuggestionChannel {
		return
	}

	for _, emoji := range []string{UpvoteEmoji, DownvoteEmoji} {
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, emoji); err != nil {
			log.Printf("Failed to add %s reaction to suggestion %s: %v", emoji, m.ID, err)
		}
	}
}
