package models

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyComment is returned when comment content is blank after trimming
var ErrEmptyComment = errors.New("comment content is required")

// Comment is an append-only reply on a post.
// Parent is stored verbatim and never interpreted; comments are a flat list.
type Comment struct {
	ID        string    `bson:"_id" json:"id"`
	User      string    `bson:"user" json:"user"`
	Content   string    `bson:"content" json:"content"`
	Parent    *string   `bson:"parent" json:"parent"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AppendComment appends a new comment by userID and returns the new list and the comment.
// The input slice is not modified.
func AppendComment(comments []Comment, userID, content string, parent *string, now time.Time) ([]Comment, Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, Comment{}, ErrEmptyComment
	}

	if parent != nil && strings.TrimSpace(*parent) == "" {
		parent = nil
	}

	comment := Comment{
		ID:        generateUUID(),
		User:      userID,
		Content:   content,
		Parent:    parent,
		CreatedAt: now,
	}

	result := make([]Comment, len(comments), len(comments)+1)
	copy(result, comments)
	return append(result, comment), comment, nil
}
