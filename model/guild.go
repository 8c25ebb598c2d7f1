package model

// DefaultThreshold is the number of up-votes a suggestion needs before it
// is sent for staff review, unless a guild configures its own value.
const DefaultThreshold = 5

// GuildConfig is the per-guild suggestion system configuration. Channel
// bindings stay empty until an admin runs /setup. Promoted lists the
// message IDs already escalated to the approval channel; it only grows.
type GuildConfig struct {
	SuggestionChannel string   `json:"suggestion_channel,omitempty"`
	ApprovalChannel   string   `json:"approval_channel,omitempty"`
	FeaturedChannel   string   `json:"featured_channel,omitempty"`
	Threshold         int      `json:"threshold"`
	Promoted          []string `json:"promoted,omitempty"`
}

// NewGuildConfig returns the default configuration handed out on first
// access for a guild.
func NewGuildConfig() *GuildConfig {
	return &GuildConfig{Threshold: DefaultThreshold}
}
