package suggest

import (
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// preferredWelcomeChannels are tried first, in order, when greeting a
// freshly joined guild.
var preferredWelcomeChannels = []string{"general", "welcome", "bot-commands", "commands"}

// GuildCreate greets freshly joined guilds with setup instructions.
// The gateway also replays GuildCreate for every known guild on connect,
// so anything joined more than a minute ago is ignored.
func GuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Unavailable {
		return
	}
	if g.JoinedAt.IsZero() || time.Since(g.JoinedAt) > time.Minute {
		return
	}

	channelID := pickWelcomeChannel(s, g.Guild)
	if channelID == "" {
		log.Printf("No available channel found in %s to send welcome message", g.Name)
		return
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, BuildWelcomeEmbed()); err != nil {
		log.Printf("Failed to send welcome message to guild %s: %v", g.ID, err)
		return
	}
	log.Printf("Sent welcome message to %s", g.Name)
}

func pickWelcomeChannel(s *discordgo.Session, guild *discordgo.Guild) string {
	var fallback string
	byName := make(map[string]string)

	for _, c := range guild.Channels {
		if c.Type != discordgo.ChannelTypeGuildText || !canSendMessages(s, c.ID) {
			continue
		}
		if fallback == "" {
			fallback = c.ID
		}
		byName[strings.ToLower(c.Name)] = c.ID
	}

	for _, name := range preferredWelcomeChannels {
		if id, ok := byName[name]; ok {
			return id
		}
	}
	return fallback
}

func canSendMessages(s *discordgo.Session, channelID string) bool {
	perms, err := s.State.UserChannelPermissions(s.State.User.ID, channelID)
	return err == nil && perms&discordgo.PermissionSendMessages != 0
}
