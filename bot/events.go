package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"suggestbot/handler"
	"suggestbot/handler/suggest"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(suggest.MessageCreate)
	s.AddHandler(suggest.MessageReactionAdd)
	s.AddHandler(suggest.GuildCreate)
	s.AddHandler(onReady)

	// 设置必要的intents
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent
}

func onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("Logged in as %s, serving %d guilds", r.User.Username, len(r.Guilds))
	if err := s.UpdateWatchStatus(0, "for suggestions"); err != nil {
		log.Printf("Failed to set presence: %v", err)
	}
}
