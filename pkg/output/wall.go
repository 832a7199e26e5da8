package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/fatih/color"
)

var reactionEmoji = map[models.ReactionType]string{
	models.ReactionLike:  "👍",
	models.ReactionLove:  "❤️",
	models.ReactionHaha:  "😂",
	models.ReactionWow:   "😮",
	models.ReactionSad:   "😢",
	models.ReactionAngry: "😡",
}

// now is replaced in tests
var now = time.Now

// ReactionEmoji returns the emoji shown for a reaction type
func ReactionEmoji(t models.ReactionType) string {
	if e, ok := reactionEmoji[t]; ok {
		return e
	}
	return string(t)
}

// TimeAgo renders t relative to the current time
func TimeAgo(t time.Time) string {
	d := now().Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}

// Truncate shortens s to max runes with an ellipsis, flattening newlines
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// DisplayName returns "First Last" or the username, falling back to the user id
func DisplayName(author *models.UserSummary, userID string) string {
	if author == nil {
		return userID
	}
	name := strings.TrimSpace(author.FirstName + " " + author.LastName)
	if name == "" {
		return "@" + author.Username
	}
	return name
}

// ReactionLine summarizes reactions with the most used emoji first, e.g. "❤️👍 3"
func ReactionLine(summary models.ReactionSummary) string {
	if summary.Likes == 0 {
		return "no reactions"
	}

	var b strings.Builder
	for _, t := range models.TopReactions(summary.Counts, 3) {
		b.WriteString(ReactionEmoji(t))
	}
	fmt.Fprintf(&b, " %d", summary.Likes)
	if summary.UserReacted {
		fmt.Fprintf(&b, " (you: %s)", summary.UserReaction)
	}
	return b.String()
}

// RenderFeed prints posts in the configured format
func RenderFeed(posts []models.PostView) error {
	switch GetOutputFormat() {
	case FormatJSON:
		return PrintJSON(posts)
	case FormatTable:
		rows := make([][]string, 0, len(posts))
		for _, p := range posts {
			rows = append(rows, []string{
				p.ID,
				DisplayName(p.Author, p.User),
				Truncate(p.Content, 40),
				strconv.Itoa(len(p.Images)),
				strconv.Itoa(p.Summary.Likes),
				strconv.Itoa(len(p.Comments)),
				TimeAgo(p.CreatedAt),
			})
		}
		PrintTable([]string{"ID", "AUTHOR", "CONTENT", "IMAGES", "REACTIONS", "COMMENTS", "POSTED"}, rows)
		return nil
	}

	if len(posts) == 0 {
		PrintInfo("The wall is empty.")
		return nil
	}
	for i, p := range posts {
		if i > 0 {
			fmt.Fprintln(Out)
		}
		renderPostText(p, false)
	}
	return nil
}

// RenderPost prints one post with its comments
func RenderPost(post models.PostView) error {
	if GetOutputFormat() == FormatJSON {
		return PrintJSON(post)
	}
	renderPostText(post, true)
	return nil
}

func renderPostText(p models.PostView, withComments bool) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Fprint(Out, DisplayName(p.Author, p.User))
	if p.Author != nil && p.Author.Username != "" {
		faint.Fprintf(Out, " @%s", p.Author.Username)
	}
	faint.Fprintf(Out, " · %s · %s\n", TimeAgo(p.CreatedAt), p.ID)

	if p.Content != "" {
		fmt.Fprintln(Out, p.Content)
	}
	for _, image := range p.Images {
		color.New(color.FgBlue).Fprintf(Out, "  [image] %s\n", imageLabel(image))
	}

	faint.Fprintf(Out, "%s · %d comments\n", ReactionLine(p.Summary), len(p.Comments))

	if withComments && len(p.Comments) > 0 {
		fmt.Fprintln(Out)
		renderCommentsText(p.Comments)
	}
}

// imageLabel keeps data URIs from flooding the terminal
func imageLabel(image string) string {
	if strings.HasPrefix(image, "data:") {
		header, _, _ := strings.Cut(image, ",")
		return fmt.Sprintf("<%s, %d bytes encoded>", strings.TrimPrefix(header, "data:"), len(image))
	}
	return image
}

// RenderReactionResult prints the outcome of a reaction
func RenderReactionResult(result *wall.ReactionResult) error {
	if GetOutputFormat() == FormatJSON {
		return PrintJSON(result)
	}

	summary := models.ReactionSummary{
		Likes:       result.Likes,
		UserReacted: result.UserReacted,
		Counts:      result.Counts,
	}
	PrintSuccess("Reacted to %s", result.PostID)
	fmt.Fprintln(Out, ReactionLine(summary))
	return nil
}

// RenderComments prints a comment list in append order
func RenderComments(comments []models.CommentView) error {
	switch GetOutputFormat() {
	case FormatJSON:
		return PrintJSON(comments)
	case FormatTable:
		rows := make([][]string, 0, len(comments))
		for _, c := range comments {
			parent := ""
			if c.Parent != nil {
				parent = *c.Parent
			}
			rows = append(rows, []string{c.ID, DisplayName(c.Author, c.User), Truncate(c.Content, 50), parent, TimeAgo(c.CreatedAt)})
		}
		PrintTable([]string{"ID", "AUTHOR", "COMMENT", "PARENT", "POSTED"}, rows)
		return nil
	}

	if len(comments) == 0 {
		PrintInfo("No comments yet.")
		return nil
	}
	renderCommentsText(comments)
	return nil
}

func renderCommentsText(comments []models.CommentView) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	for _, c := range comments {
		fmt.Fprint(Out, "  ")
		bold.Fprint(Out, DisplayName(c.Author, c.User))
		faint.Fprintf(Out, " · %s", TimeAgo(c.CreatedAt))
		if c.Parent != nil {
			faint.Fprintf(Out, " · reply to %s", *c.Parent)
		}
		fmt.Fprintln(Out)
		fmt.Fprintf(Out, "  %s\n", c.Content)
	}
}

// RenderProfile prints a public profile
func RenderProfile(user models.PublicUser) error {
	if GetOutputFormat() == FormatJSON {
		return PrintJSON(user)
	}

	keys := []string{"ID", "Username", "Bio", "Education", "Location", "Relationship", "Joined", "Followers", "Following", "Avatar", "Cover photo"}
	values := map[string]string{
		"ID":           user.ID,
		"Username":     "@" + user.Username,
		"Bio":          user.Bio,
		"Education":    user.Education,
		"Location":     user.Location,
		"Relationship": user.Relationship,
		"Joined":       user.JoinDate.Local().Format("January 2006"),
		"Followers":    strconv.Itoa(user.Followers),
		"Following":    strconv.Itoa(user.Following),
		"Avatar":       imageLabel(user.Avatar),
		"Cover photo":  imageLabel(user.CoverPhoto),
	}
	PrintRecord(strings.TrimSpace(user.FirstName+" "+user.LastName), keys, values)
	return nil
}
