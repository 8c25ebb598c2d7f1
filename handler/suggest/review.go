package suggest

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"suggestbot/db"
	"suggestbot/handler"
	"suggestbot/model"
	"suggestbot/utils"
)

// Action identifiers carried in the customIDs of the review card's
// controls, followed by ":<reviewCaseID>".
const (
	approveAction      = "approve_review"
	denyAction         = "deny_review"
	approveModalAction = "approve_note_modal"
)

// OpenReviewCase records a promoted suggestion as a new review case and
// posts the staff-facing card to the approval channel. The case row is
// written before the card goes out; a card that fails to send leaves a
// decidable orphan row rather than an undecidable card.
func OpenReviewCase(s *discordgo.Session, suggestion *model.Suggestion, cfg *model.GuildConfig) {
	if cfg.ApprovalChannel == "" {
		log.Printf("Suggestion %s promoted but no approval channel is configured for guild %s", suggestion.ID, suggestion.GuildID)
		return
	}

	rc := &model.ReviewCase{
		ID:        uuid.New().String(),
		GuildID:   suggestion.GuildID,
		MessageID: suggestion.ID,
		ChannelID: suggestion.ChannelID,
		AuthorID:  suggestion.AuthorID,
		Content:   suggestion.Content,
		CreatedAt: suggestion.CreatedAt,
		Upvotes:   suggestion.Upvotes,
		Downvotes: suggestion.Downvotes,
		State:     model.ReviewAwaiting,
	}
	if err := db.CreateReviewCase(rc); err != nil {
		log.Printf("Failed to create review case for suggestion %s: %v", suggestion.ID, err)
		return
	}

	msg, err := s.ChannelMessageSendComplex(cfg.ApprovalChannel, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{BuildReviewEmbed(rc)},
		Components: BuildReviewComponents(rc),
	})
	if err != nil {
		log.Printf("Failed to post review card for suggestion %s: %v", suggestion.ID, err)
		return
	}

	if err := db.SetReviewMessage(rc.ID, msg.ChannelID, msg.ID); err != nil {
		log.Printf("Failed to record review card location for case %s: %v", rc.ID, err)
	}
	log.Printf("Suggestion %s promoted for review in guild %s (👍 %d / 👎 %d)", suggestion.ID, suggestion.GuildID, suggestion.Upvotes, suggestion.Downvotes)
}

// ApproveButtonHandler opens the admin-note modal. No state changes here;
// the decision is only recorded when the modal is submitted.
func ApproveButtonHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CanManageMessages(i) {
		respondEphemeral(s, i, "❌ You need `Manage Messages` permission to approve suggestions!")
		return
	}

	reviewID := handler.ActionID(i.MessageComponentData().CustomID)
	rc, err := db.GetReviewCase(reviewID)
	if err != nil {
		log.Printf("Failed to load review case %s: %v", reviewID, err)
		return
	}
	if rc == nil {
		respondEphemeral(s, i, "❌ This review case no longer exists.")
		return
	}
	if rc.State != model.ReviewAwaiting {
		respondEphemeral(s, i, "This suggestion has already been decided.")
		return
	}

	if err := s.InteractionRespond(i.Interaction, BuildApprovalModal(reviewID)); err != nil {
		log.Printf("Failed to open approval modal for case %s: %v", reviewID, err)
	}
}

// DenyButtonHandler moves an awaiting case to Denied and re-renders the
// card with both controls disabled. Denial has no further side effects.
func DenyButtonHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CanManageMessages(i) {
		respondEphemeral(s, i, "❌ You need `Manage Messages` permission to deny suggestions!")
		return
	}

	reviewID := handler.ActionID(i.MessageComponentData().CustomID)
	decided, err := db.DecideReviewCase(reviewID, model.ReviewDenied, i.Member.User.ID, "")
	if err != nil {
		log.Printf("Failed to deny review case %s: %v", reviewID, err)
		return
	}
	if !decided {
		respondEphemeral(s, i, "This suggestion has already been decided.")
		return
	}

	rc, err := db.GetReviewCase(reviewID)
	if err != nil || rc == nil {
		log.Printf("Failed to reload review case %s after denial: %v", reviewID, err)
		return
	}

	// Card edits are cosmetic; the denial above already stands.
	if err := updateReviewCard(s, i, rc); err != nil {
		log.Printf("Failed to update review card for denied case %s: %v", reviewID, err)
	}
}

// ApproveNoteModalHandler finishes the approval: records the terminal
// state with the optional admin note, re-renders the card, then runs the
// notification fan-out. A failed card edit never blocks the fan-out.
func ApproveNoteModalHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	reviewID := handler.ActionID(data.CustomID)
	note := modalInputValue(data, 0)

	decided, err := db.DecideReviewCase(reviewID, model.ReviewApproved, i.Member.User.ID, note)
	if err != nil {
		log.Printf("Failed to approve review case %s: %v", reviewID, err)
		return
	}
	if !decided {
		respondEphemeral(s, i, "This suggestion has already been decided.")
		return
	}

	rc, err := db.GetReviewCase(reviewID)
	if err != nil || rc == nil {
		log.Printf("Failed to reload review case %s after approval: %v", reviewID, err)
		return
	}

	if err := updateReviewCard(s, i, rc); err != nil {
		log.Printf("Failed to update review card for approved case %s: %v", reviewID, err)
	}

	RunFanout(s, rc, cfgStore.Get(rc.GuildID), guildName(s, rc.GuildID))
}

// updateReviewCard re-renders the review card from the case's current
// state, acknowledging the interaction in the same call.
func updateReviewCard(s *discordgo.Session, i *discordgo.InteractionCreate, rc *model.ReviewCase) error {
	embeds := []*discordgo.MessageEmbed{BuildReviewEmbed(rc)}
	components := BuildReviewComponents(rc)
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: components,
		},
	})
}

// modalInputValue extracts the trimmed value of the nth text input of a
// modal submission, or "" when absent.
func modalInputValue(data discordgo.ModalSubmitInteractionData, n int) string {
	if n >= len(data.Components) {
		return ""
	}
	row, ok := data.Components[n].(*discordgo.ActionsRow)
	if !ok || len(row.Components) == 0 {
		return ""
	}
	input, ok := row.Components[0].(*discordgo.TextInput)
	if !ok {
		return ""
	}
	return strings.TrimSpace(input.Value)
}

func guildName(s *discordgo.Session, guildID string) string {
	if guild, err := s.State.Guild(guildID); err == nil && guild.Name != "" {
		return guild.Name
	}
	return "this server"
}
