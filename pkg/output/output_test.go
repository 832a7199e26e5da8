package output

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/KlienGumapac/freedomewall/pkg/config"
	"github.com/fatih/color"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T, format string) *bytes.Buffer {
	t.Helper()
	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))
	config.Set("output.format", format)

	buf := &bytes.Buffer{}
	savedOut, savedNow, savedNoColor := Out, now, color.NoColor
	Out, now, color.NoColor = buf, func() time.Time { return fixedNow }, true
	t.Cleanup(func() { Out, now, color.NoColor = savedOut, savedNow, savedNoColor })
	return buf
}

func samplePost() models.PostView {
	parent := "c1"
	return models.PostView{
		ID:      "p1",
		User:    "u1",
		Author:  &models.UserSummary{ID: "u1", FirstName: "Alice", LastName: "Tester", Username: "alice"},
		Content: "hello wall",
		Images:  []string{"https://picsum.photos/800/600", "data:image/png;base64,AAAA"},
		Comments: []models.CommentView{
			{Comment: models.Comment{ID: "c1", User: "u2", Content: "first!", CreatedAt: fixedNow.Add(-time.Minute * 5)},
				Author: &models.UserSummary{ID: "u2", FirstName: "Bob", Username: "bob"}},
			{Comment: models.Comment{ID: "c2", User: "u3", Content: "reply", Parent: &parent, CreatedAt: fixedNow}},
		},
		Summary: models.ReactionSummary{
			Likes:        3,
			UserReacted:  true,
			UserReaction: models.ReactionLove,
			Counts:       map[models.ReactionType]int{models.ReactionLove: 2, models.ReactionLike: 1},
		},
		CreatedAt: fixedNow.Add(-2 * time.Hour),
	}
}

func TestValidateOutputFormat(t *testing.T) {
	assert.True(t, ValidateOutputFormat("json"))
	assert.True(t, ValidateOutputFormat("table"))
	assert.True(t, ValidateOutputFormat("text"))
	assert.False(t, ValidateOutputFormat("yaml"))
}

func TestTimeAgo(t *testing.T) {
	setup(t, "text")

	assert.Equal(t, "just now", TimeAgo(fixedNow.Add(-10*time.Second)))
	assert.Equal(t, "5m ago", TimeAgo(fixedNow.Add(-5*time.Minute)))
	assert.Equal(t, "2h ago", TimeAgo(fixedNow.Add(-2*time.Hour)))
	assert.Equal(t, "3d ago", TimeAgo(fixedNow.Add(-72*time.Hour)))
	assert.Contains(t, TimeAgo(fixedNow.AddDate(0, -2, 0)), "2026")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a b c", Truncate("a\nb   c", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
}

func TestReactionLine(t *testing.T) {
	assert.Equal(t, "no reactions", ReactionLine(models.ReactionSummary{}))
	assert.Equal(t, "❤️👍 3 (you: love)", ReactionLine(samplePost().Summary))

	tie := models.ReactionSummary{
		Likes:  2,
		Counts: map[models.ReactionType]int{models.ReactionAngry: 1, models.ReactionHaha: 1},
	}
	assert.Equal(t, "😂😡 2", ReactionLine(tie))

	many := models.ReactionSummary{
		Likes: 7,
		Counts: map[models.ReactionType]int{
			models.ReactionLike: 1, models.ReactionSad: 3, models.ReactionWow: 2, models.ReactionAngry: 1,
		},
	}
	assert.Equal(t, "😢😮👍 7", ReactionLine(many))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "u1", DisplayName(nil, "u1"))
	assert.Equal(t, "@bob", DisplayName(&models.UserSummary{Username: "bob"}, "u2"))
	assert.Equal(t, "Alice Tester", DisplayName(samplePost().Author, "u1"))
}

func TestRenderFeedText(t *testing.T) {
	buf := setup(t, "text")

	require.NoError(t, RenderFeed([]models.PostView{samplePost()}))
	out := buf.String()
	assert.Contains(t, out, "Alice Tester @alice · 2h ago · p1")
	assert.Contains(t, out, "hello wall")
	assert.Contains(t, out, "[image] https://picsum.photos/800/600")
	assert.Contains(t, out, "<image/png;base64")
	assert.Contains(t, out, "2 comments")
	assert.NotContains(t, out, "first!")
}

func TestRenderFeedEmpty(t *testing.T) {
	buf := setup(t, "text")

	require.NoError(t, RenderFeed(nil))
	assert.Contains(t, buf.String(), "The wall is empty.")
}

func TestRenderFeedTable(t *testing.T) {
	buf := setup(t, "table")

	require.NoError(t, RenderFeed([]models.PostView{samplePost()}))
	out := buf.String()
	assert.Contains(t, out, "AUTHOR")
	assert.Contains(t, out, "Alice Tester")
	assert.Contains(t, out, "hello wall")
}

func TestRenderFeedJSON(t *testing.T) {
	buf := setup(t, "json")

	require.NoError(t, RenderFeed([]models.PostView{samplePost()}))
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "p1", decoded[0]["id"])
}

func TestRenderPostIncludesComments(t *testing.T) {
	buf := setup(t, "text")

	require.NoError(t, RenderPost(samplePost()))
	out := buf.String()
	assert.Contains(t, out, "Bob · 5m ago")
	assert.Contains(t, out, "first!")
	assert.Contains(t, out, "u3 · just now · reply to c1")
}

func TestRenderReactionResult(t *testing.T) {
	buf := setup(t, "text")

	require.NoError(t, RenderReactionResult(&wall.ReactionResult{
		PostID:      "p1",
		Likes:       1,
		UserReacted: true,
		Counts:      map[models.ReactionType]int{models.ReactionWow: 1},
	}))
	assert.Contains(t, buf.String(), "Reacted to p1")
	assert.Contains(t, buf.String(), "😮 1")
}

func TestRenderComments(t *testing.T) {
	buf := setup(t, "table")

	require.NoError(t, RenderComments(samplePost().Comments))
	out := buf.String()
	assert.Contains(t, out, "PARENT")
	assert.Contains(t, out, "c1")

	buf = setup(t, "text")
	require.NoError(t, RenderComments(nil))
	assert.Contains(t, buf.String(), "No comments yet.")
}

func TestRenderProfile(t *testing.T) {
	buf := setup(t, "text")

	require.NoError(t, RenderProfile(models.PublicUser{
		ID:        "u1",
		FirstName: "Alice",
		LastName:  "Tester",
		Username:  "alice",
		Bio:       "Hi there",
		Location:  "Cebu",
		JoinDate:  fixedNow,
		Followers: 4,
	}))
	out := buf.String()
	assert.Contains(t, out, "Alice Tester")
	assert.Contains(t, out, "Username: @alice")
	assert.Contains(t, out, "Bio: Hi there")
	assert.Contains(t, out, "Followers: 4")
}

func TestPrintMessages(t *testing.T) {
	buf := setup(t, "text")

	PrintSuccess("saved %s", "post")
	PrintError("boom")
	PrintWarning("careful")
	PrintInfo("fyi")

	assert.Equal(t, "saved post\nError: boom\nWarning: careful\nfyi\n", buf.String())
}
