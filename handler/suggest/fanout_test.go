package suggest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbot/model"
)

const (
	testFeaturedChannel = "feat-chan"
	testThreadID        = "thread-chan"
	testDMChannel       = "dm-chan"
)

// fakeSession records fan-out calls and fails on demand.
type fakeSession struct {
	failFeatured bool
	failThread   bool
	failDMCreate bool
	failDMSend   bool

	embedsByChannel map[string][]*discordgo.MessageEmbed
	threadNames     []string
	dmRequested     string
}

func newFakeSession() *fakeSession {
	return &fakeSession{embedsByChannel: make(map[string][]*discordgo.MessageEmbed)}
}

func (f *fakeSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if channelID == testFeaturedChannel && f.failFeatured {
		return nil, errors.New("missing access")
	}
	if channelID == testDMChannel && f.failDMSend {
		return nil, errors.New("cannot send messages to this user")
	}
	f.embedsByChannel[channelID] = append(f.embedsByChannel[channelID], embed)
	return &discordgo.Message{
		ID:        fmt.Sprintf("msg-%d", len(f.embedsByChannel[channelID])),
		ChannelID: channelID,
	}, nil
}

func (f *fakeSession) MessageThreadStartComplex(channelID, messageID string, data *discordgo.ThreadStart, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.failThread {
		return nil, errors.New("thread limit reached")
	}
	f.threadNames = append(f.threadNames, data.Name)
	return &discordgo.Channel{ID: testThreadID}, nil
}

func (f *fakeSession) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.dmRequested = recipientID
	if f.failDMCreate {
		return nil, errors.New("user has DMs disabled")
	}
	return &discordgo.Channel{ID: testDMChannel}, nil
}

func testReviewCase() *model.ReviewCase {
	return &model.ReviewCase{
		ID:        "case-1",
		GuildID:   "guild-1",
		MessageID: "msg-1",
		ChannelID: "sug-chan",
		AuthorID:  "author-1",
		Content:   "Add a music channel",
		Upvotes:   3,
		Downvotes: 1,
		State:     model.ReviewApproved,
		DecidedBy: "staff-1",
		AdminNote: "Great idea",
	}
}

func testGuildConfig() *model.GuildConfig {
	return &model.GuildConfig{
		SuggestionChannel: "sug-chan",
		ApprovalChannel:   "app-chan",
		FeaturedChannel:   testFeaturedChannel,
		Threshold:         3,
	}
}

func TestFanoutHappyPath(t *testing.T) {
	sess := newFakeSession()
	RunFanout(sess, testReviewCase(), testGuildConfig(), "Test Guild")

	featured := sess.embedsByChannel[testFeaturedChannel]
	require.Len(t, featured, 1)
	assert.Equal(t, "Add a music channel", featured[0].Description)
	assert.Contains(t, embedFieldNames(featured[0]), "📝 Admin Note")

	require.Len(t, sess.threadNames, 1)
	assert.Equal(t, "💬 Discussion: Add a music channel", sess.threadNames[0])
	require.Len(t, sess.embedsByChannel[testThreadID], 1)

	require.Len(t, sess.embedsByChannel[testDMChannel], 1)
	dm := sess.embedsByChannel[testDMChannel][0]
	assert.Contains(t, dm.Description, "Test Guild")
	assert.Contains(t, embedFieldValues(dm), "Great idea")
}

func TestFanoutFeaturedFailureSkipsThreadButNotDM(t *testing.T) {
	sess := newFakeSession()
	sess.failFeatured = true
	RunFanout(sess, testReviewCase(), testGuildConfig(), "Test Guild")

	assert.Empty(t, sess.embedsByChannel[testFeaturedChannel])
	assert.Empty(t, sess.threadNames)
	assert.Len(t, sess.embedsByChannel[testDMChannel], 1)
}

func TestFanoutUnboundFeaturedChannelStillDMs(t *testing.T) {
	sess := newFakeSession()
	cfg := testGuildConfig()
	cfg.FeaturedChannel = ""
	RunFanout(sess, testReviewCase(), cfg, "Test Guild")

	assert.Empty(t, sess.threadNames)
	assert.Len(t, sess.embedsByChannel[testDMChannel], 1)
}

func TestFanoutThreadFailureStillDMs(t *testing.T) {
	sess := newFakeSession()
	sess.failThread = true
	RunFanout(sess, testReviewCase(), testGuildConfig(), "Test Guild")

	assert.Len(t, sess.embedsByChannel[testFeaturedChannel], 1)
	assert.Empty(t, sess.embedsByChannel[testThreadID])
	assert.Len(t, sess.embedsByChannel[testDMChannel], 1)
}

func TestFanoutDMFailureLeavesFeaturedAndThread(t *testing.T) {
	for _, mode := range []string{"create", "send"} {
		t.Run(mode, func(t *testing.T) {
			sess := newFakeSession()
			if mode == "create" {
				sess.failDMCreate = true
			} else {
				sess.failDMSend = true
			}
			RunFanout(sess, testReviewCase(), testGuildConfig(), "Test Guild")

			assert.Len(t, sess.embedsByChannel[testFeaturedChannel], 1)
			assert.Len(t, sess.threadNames, 1)
			assert.Equal(t, "author-1", sess.dmRequested)
			assert.Empty(t, sess.embedsByChannel[testDMChannel])
		})
	}
}

func TestFanoutThreadNameTruncated(t *testing.T) {
	sess := newFakeSession()
	rc := testReviewCase()
	rc.Content = strings.Repeat("a", 80)
	RunFanout(sess, rc, testGuildConfig(), "Test Guild")

	require.Len(t, sess.threadNames, 1)
	assert.Equal(t, "💬 Discussion: "+strings.Repeat("a", 50)+"...", sess.threadNames[0])
}

func TestFanoutWithoutAdminNote(t *testing.T) {
	sess := newFakeSession()
	rc := testReviewCase()
	rc.AdminNote = ""
	RunFanout(sess, rc, testGuildConfig(), "Test Guild")

	featured := sess.embedsByChannel[testFeaturedChannel]
	require.Len(t, featured, 1)
	assert.NotContains(t, embedFieldNames(featured[0]), "📝 Admin Note")
}

func embedFieldNames(embed *discordgo.MessageEmbed) []string {
	names := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	return names
}

func embedFieldValues(embed *discordgo.MessageEmbed) []string {
	values := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		values = append(values, f.Value)
	}
	return values
}
