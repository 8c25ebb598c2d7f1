package utils

// Truncate shortens s to at most max runes, appending "..." when anything
// was cut off.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// ChannelMention renders a channel ID as a clickable mention, or "Not set"
// when the channel is unbound.
func ChannelMention(channelID string) string {
	if channelID == "" {
		return "Not set"
	}
	return "<#" + channelID + ">"
}

// MessageLink builds a jump URL for a guild message.
func MessageLink(guildID, channelID, messageID string) string {
	return "https://discord.com/channels/" + guildID + "/" + channelID + "/" + messageID
}
