package def

import "github.com/bwmarrin/discordgo"

var ViewConfigCommand = &discordgo.ApplicationCommand{
	Name:        "view_config",
	Description: "View current suggestion system configuration",
}
