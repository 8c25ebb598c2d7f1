package suggest

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
	"suggestbot/utils"
)

// Thread name excerpts are capped at 50 runes, DM excerpts at 1000.
const (
	threadExcerptLimit = 50
	dmExcerptLimit     = 1000
)

// Discord's maximum thread auto-archive duration, in minutes (7 days).
const threadAutoArchiveMinutes = 10080

// fanoutSession is the slice of the Discord session the fan-out needs.
// *discordgo.Session satisfies it; tests substitute a fake.
type fanoutSession interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageThreadStartComplex(channelID, messageID string, data *discordgo.ThreadStart, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// RunFanout performs the three approval side effects: featured post,
// discussion thread, author DM. Each failure is logged and isolated; none
// of them feeds back into the review case, which is already Approved. The
// thread step is skipped when the featured post failed, since there is no
// message to attach it to.
func RunFanout(sess fanoutSession, rc *model.ReviewCase, cfg *model.GuildConfig, guildName string) {
	featured := postFeatured(sess, rc, cfg)
	if featured != nil {
		startDiscussionThread(sess, rc, cfg, featured)
	}
	sendApprovalDM(sess, rc, guildName)
}

func postFeatured(sess fanoutSession, rc *model.ReviewCase, cfg *model.GuildConfig) *discordgo.Message {
	if cfg.FeaturedChannel == "" {
		log.Printf("No featured channel configured for guild %s, skipping featured post for case %s", rc.GuildID, rc.ID)
		return nil
	}

	msg, err := sess.ChannelMessageSendEmbed(cfg.FeaturedChannel, BuildFeaturedEmbed(rc))
	if err != nil {
		log.Printf("Failed to post featured suggestion for case %s: %v", rc.ID, err)
		return nil
	}
	return msg
}

func startDiscussionThread(sess fanoutSession, rc *model.ReviewCase, cfg *model.GuildConfig, featured *discordgo.Message) {
	name := "💬 Discussion: " + utils.Truncate(rc.Content, threadExcerptLimit)
	thread, err := sess.MessageThreadStartComplex(cfg.FeaturedChannel, featured.ID, &discordgo.ThreadStart{
		Name:                name,
		AutoArchiveDuration: threadAutoArchiveMinutes,
	})
	if err != nil {
		log.Printf("Failed to create discussion thread for case %s: %v", rc.ID, err)
		return
	}

	if _, err := sess.ChannelMessageSendEmbed(thread.ID, BuildThreadStarterEmbed()); err != nil {
		log.Printf("Failed to post discussion starter for case %s: %v", rc.ID, err)
	}
}

// sendApprovalDM notifies the suggestion's author. Failure here is
// expected (closed DMs) and swallowed after a log line.
func sendApprovalDM(sess fanoutSession, rc *model.ReviewCase, guildName string) {
	channel, err := sess.UserChannelCreate(rc.AuthorID)
	if err != nil {
		log.Printf("Failed to create DM channel for user %s: %v", rc.AuthorID, err)
		return
	}

	if _, err := sess.ChannelMessageSendEmbed(channel.ID, BuildApprovalDMEmbed(rc, guildName)); err != nil {
		log.Printf("Failed to send approval DM to user %s: %v", rc.AuthorID, err)
	}
}
