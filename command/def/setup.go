package def

import "github.com/bwmarrin/discordgo"

var minThreshold = 1.0

var textChannelOnly = []discordgo.ChannelType{discordgo.ChannelTypeGuildText}

var SetupCommand = &discordgo.ApplicationCommand{
	Name:        "setup",
	Description: "Setup all channels and threshold in one command",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "suggestion_channel",
			Description:  "The channel where users will post suggestions",
			ChannelTypes: textChannelOnly,
			Required:     true,
		},
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "approval_channel",
			Description:  "The channel where suggestions will be reviewed",
			ChannelTypes: textChannelOnly,
			Required:     true,
		},
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "featured_channel",
			Description:  "The channel where approved suggestions will be posted",
			ChannelTypes: textChannelOnly,
			Required:     true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "threshold",
			Description: "Number of 👍 reactions needed (default: 5)",
			MinValue:    &minThreshold,
			Required:    false,
		},
	},
}
