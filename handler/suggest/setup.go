package suggest

import (
	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
	"suggestbot/utils"
)

// SetupCommandHandler binds all three channels and the threshold in one
// command. The whole guild record is read, rewritten and put back;
// rejected invocations mutate nothing.
func SetupCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CanConfigureGuild(s, i) {
		respondEphemeral(s, i, "❌ You need `Manage Server`, `Administrator`, or be the server owner to use this command!")
		return
	}

	options := commandOptions(i)
	threshold := model.DefaultThreshold
	if opt, ok := options["threshold"]; ok {
		threshold = int(opt.IntValue())
	}
	if threshold < 1 {
		respondEphemeral(s, i, "❌ Threshold must be at least 1!")
		return
	}

	cfg := cfgStore.Get(i.GuildID)
	cfg.SuggestionChannel = options["suggestion_channel"].ChannelValue(nil).ID
	cfg.ApprovalChannel = options["approval_channel"].ChannelValue(nil).ID
	cfg.FeaturedChannel = options["featured_channel"].ChannelValue(nil).ID
	cfg.Threshold = threshold
	cfgStore.Put(i.GuildID, cfg)

	respondEmbed(s, i, BuildSetupEmbed(cfg))
}

// SetThresholdCommandHandler updates only the threshold, leaving the
// channel bindings untouched.
func SetThresholdCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.IsAdministrator(i) {
		respondEphemeral(s, i, "❌ You need to be an admin to change the threshold!")
		return
	}

	options := commandOptions(i)
	amount := int(options["amount"].IntValue())
	if amount < 1 {
		respondEphemeral(s, i, "❌ Threshold must be at least 1!")
		return
	}

	cfg := cfgStore.Get(i.GuildID)
	cfg.Threshold = amount
	cfgStore.Put(i.GuildID, cfg)

	respondEmbed(s, i, BuildThresholdEmbed(amount))
}

// ViewConfigCommandHandler shows the current bindings and threshold.
func ViewConfigCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := cfgStore.Get(i.GuildID)
	respondEmbed(s, i, BuildConfigEmbed(cfg))
}

func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		byName[opt.Name] = opt
	}
	return byName
}
