package suggest

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
	"suggestbot/utils"
)

const (
	colorBlue   = 0x3498DB
	colorGreen  = 0x2ECC71
	colorRed    = 0xE74C3C
	colorOrange = 0xE67E22
	colorGold   = 0xF1C40F
)

// BuildReviewEmbed renders the review card for whatever state the case is
// in. There is one builder on purpose: every handler re-renders the card
// from the case record instead of patching the previously sent embed.
func BuildReviewEmbed(rc *model.ReviewCase) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: rc.Content,
		Timestamp:   time.Unix(rc.CreatedAt, 0).UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Author", Value: fmt.Sprintf("<@%s>", rc.AuthorID), Inline: true},
			{Name: "👍 Reactions", Value: fmt.Sprintf("%d", rc.Upvotes), Inline: true},
			{
				Name:   "Original Suggestion Message",
				Value:  fmt.Sprintf("[Jump to message](%s)", utils.MessageLink(rc.GuildID, rc.ChannelID, rc.MessageID)),
				Inline: true,
			},
		},
	}

	switch rc.State {
	case model.ReviewApproved:
		embed.Title = "✅ Suggestion Approved"
		embed.Color = colorGreen
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Approved by", Value: fmt.Sprintf("<@%s>", rc.DecidedBy), Inline: true,
		})
		if rc.AdminNote != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "📝 Admin Note", Value: rc.AdminNote,
			})
		}
	case model.ReviewDenied:
		embed.Title = "❌ Suggestion Denied"
		embed.Color = colorRed
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Denied by", Value: fmt.Sprintf("<@%s>", rc.DecidedBy), Inline: true,
		})
	default:
		embed.Title = "📋 Suggestion Awaiting Approval"
		embed.Color = colorOrange
	}
	return embed
}

// BuildReviewComponents renders the card's controls for the case's state.
// Terminal states render disabled controls only; the disabled buttons plus
// the guarded state transition are what make repeat presses no-ops.
func BuildReviewComponents(rc *model.ReviewCase) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent

	switch rc.State {
	case model.ReviewApproved:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "✅ Approved",
				Style:    discordgo.SecondaryButton,
				CustomID: approveAction + ":" + rc.ID,
				Disabled: true,
			},
		}
	case model.ReviewDenied:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Approve",
				Style:    discordgo.SuccessButton,
				CustomID: approveAction + ":" + rc.ID,
				Disabled: true,
			},
			discordgo.Button{
				Label:    "Denied",
				Style:    discordgo.SecondaryButton,
				CustomID: denyAction + ":" + rc.ID,
				Disabled: true,
			},
		}
	default:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Approve",
				Style:    discordgo.SuccessButton,
				CustomID: approveAction + ":" + rc.ID,
			},
			discordgo.Button{
				Label:    "Deny",
				Style:    discordgo.DangerButton,
				CustomID: denyAction + ":" + rc.ID,
			},
		}
	}

	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

// BuildApprovalModal 创建并返回用于填写管理员备注的模态框
func BuildApprovalModal(reviewID string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: approveModalAction + ":" + reviewID,
			Title:    "Approve Suggestion",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "admin_note",
							Label:       "Admin Note (Optional)",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "Enter any additional notes or comments...",
							Required:    false,
							MaxLength:   500,
						},
					},
				},
			},
		},
	}
}

// BuildFeaturedEmbed renders the public embed posted to the featured
// channel on approval.
func BuildFeaturedEmbed(rc *model.ReviewCase) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "⭐ Approved Suggestion",
		Description: rc.Content,
		Color:       colorGold,
		Timestamp:   time.Unix(rc.CreatedAt, 0).UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Suggested by", Value: fmt.Sprintf("<@%s>", rc.AuthorID), Inline: true},
		},
	}
	if rc.AdminNote != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "📝 Admin Note", Value: rc.AdminNote,
		})
	}
	return embed
}

// BuildThreadStarterEmbed renders the first message of a discussion thread.
func BuildThreadStarterEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "💭 Discussion Thread",
		Description: "Discuss this suggestion here! Share your thoughts, improvements, or related ideas.",
		Color:       colorBlue,
	}
}

// BuildApprovalDMEmbed renders the direct-message notice for the author.
func BuildApprovalDMEmbed(rc *model.ReviewCase, guildName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🎉 Your Suggestion Has Been Approved!",
		Description: fmt.Sprintf("Your suggestion in **%s** has been approved and featured!", guildName),
		Color:       colorGreen,
		Timestamp:   time.Unix(rc.CreatedAt, 0).UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Your Suggestion", Value: utils.Truncate(rc.Content, dmExcerptLimit)},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Server: " + guildName,
		},
	}
	if rc.AdminNote != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Admin Note", Value: rc.AdminNote,
		})
	}
	return embed
}

// BuildSetupEmbed echoes the bindings written by /setup.
func BuildSetupEmbed(cfg *model.GuildConfig) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ All Channels Setup Complete!",
		Description: "Suggestion system is now ready to use!",
		Color:       colorGreen,
		Fields:      configFields(cfg),
	}
}

// BuildConfigEmbed renders the current bindings for /view_config.
func BuildConfigEmbed(cfg *model.GuildConfig) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:  "🔧 Suggestion System Configuration",
		Color:  colorBlue,
		Fields: configFields(cfg),
	}
}

func configFields(cfg *model.GuildConfig) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{Name: "📝 Suggestion Channel", Value: utils.ChannelMention(cfg.SuggestionChannel)},
		{Name: "⚖️ Approval Channel", Value: utils.ChannelMention(cfg.ApprovalChannel)},
		{Name: "⭐ Featured Channel", Value: utils.ChannelMention(cfg.FeaturedChannel)},
		{Name: "👍 Thumbs Threshold", Value: fmt.Sprintf("%d", cfg.Threshold)},
	}
}

// BuildThresholdEmbed confirms a /set_threshold change.
func BuildThresholdEmbed(amount int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ Threshold Set!",
		Description: fmt.Sprintf("Thumbs up threshold has been set to **%d** 👍", amount),
		Color:       colorGreen,
	}
}

// BuildWelcomeEmbed is sent once when the bot joins a guild.
func BuildWelcomeEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎉 Thanks for adding me!",
		Description: "I'm here to help manage your server suggestions with an awesome approval workflow!",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "🚀 Quick Setup",
				Value: "Use `/setup #suggestions #approval #featured 5` to get started instantly!",
			},
			{
				Name:  "📋 What I do:",
				Value: "• Auto-react 👍 to suggestions\n• Send popular suggestions for approval\n• Create discussion threads\n• DM users when approved",
			},
			{
				Name:  "🔧 Commands:",
				Value: "• `/setup` - Setup all channels at once\n• `/view_config` - See current settings\n• `/set_threshold` - Adjust the vote threshold",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Need help? Check out the commands above!",
		},
	}
}
