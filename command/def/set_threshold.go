package def

import "github.com/bwmarrin/discordgo"

var SetThresholdCommand = &discordgo.ApplicationCommand{
	Name:        "set_threshold",
	Description: "Set the number of thumbs up needed for approval",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "Number of 👍 reactions needed",
			MinValue:    &minThreshold,
			Required:    true,
		},
	},
}
