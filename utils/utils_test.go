package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))
	assert.Equal(t, strings.Repeat("a", 50), Truncate(strings.Repeat("a", 50), 50))
	assert.Equal(t, strings.Repeat("a", 50)+"...", Truncate(strings.Repeat("a", 51), 50))

	// Rune-safe: multi-byte characters are not split.
	assert.Equal(t, "ののの...", Truncate("ののののの", 3))
}

func TestChannelMention(t *testing.T) {
	assert.Equal(t, "<#123>", ChannelMention("123"))
	assert.Equal(t, "Not set", ChannelMention(""))
}

func TestMessageLink(t *testing.T) {
	assert.Equal(t,
		"https://discord.com/channels/1/2/3",
		MessageLink("1", "2", "3"))
}
