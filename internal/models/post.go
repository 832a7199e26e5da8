package models

import (
	"time"

	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post is a wall post owning its reactions and comments.
// Revision is bumped on every mutation and used for compare-and-swap writes.
type Post struct {
	ID        string                        `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	UserID    string                        `gorm:"index;not null;type:varchar(36)" bson:"user" json:"user"`
	Content   string                        `gorm:"type:text" bson:"content" json:"content"`
	Images    datatypes.JSONSlice[string]   `bson:"images" json:"images"`
	Reactions datatypes.JSONSlice[Reaction] `bson:"reactions" json:"reactions"`
	Comments  datatypes.JSONSlice[Comment]  `bson:"comments" json:"comments"`
	Revision  int64                         `gorm:"not null;default:0" bson:"revision" json:"-"`
	CreatedAt time.Time                     `gorm:"index" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time                     `bson:"updatedAt" json:"updatedAt"`
}

// Normalize replaces nil lists with empty ones so they serialize as []
func (p *Post) Normalize() {
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	if p.Reactions == nil {
		p.Reactions = datatypes.JSONSlice[Reaction]{}
	}
	if p.Comments == nil {
		p.Comments = datatypes.JSONSlice[Comment]{}
	}
}

// PrepareForCreate fills the id, timestamps and empty lists of a new post
func (p *Post) PrepareForCreate(now time.Time) {
	if p.ID == "" {
		p.ID = generateUUID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.Normalize()
}

// BeforeCreate hooks for GORM
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	p.PrepareForCreate(time.Now().UTC())
	return nil
}

// AfterFind normalizes lists loaded from the database
func (p *Post) AfterFind(tx *gorm.DB) error {
	p.Normalize()
	return nil
}

// CommentView is a comment with its author's display fields
type CommentView struct {
	Comment
	Author *UserSummary `json:"author,omitempty"`
}

// PostView is the response shape of a post
type PostView struct {
	ID        string          `json:"id"`
	User      string          `json:"user"`
	Author    *UserSummary    `json:"author,omitempty"`
	Content   string          `json:"content"`
	Images    []string        `json:"images"`
	Reactions []Reaction      `json:"reactions"`
	Comments  []CommentView   `json:"comments"`
	Summary   ReactionSummary `json:"summary"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewPostView builds the response for viewerID. authors may be nil or partial;
// missing authors are omitted.
func NewPostView(p *Post, authors map[string]UserSummary, viewerID string) PostView {
	p.Normalize()

	view := PostView{
		ID:        p.ID,
		User:      p.UserID,
		Content:   p.Content,
		Images:    p.Images,
		Reactions: p.Reactions,
		Comments:  NewCommentViews(p.Comments, authors),
		Summary:   Summarize(p.Reactions, viewerID),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if author, ok := authors[p.UserID]; ok {
		view.Author = &author
	}
	return view
}

// NewCommentViews attaches authors to comments, preserving order
func NewCommentViews(comments []Comment, authors map[string]UserSummary) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		view := CommentView{Comment: c}
		if author, ok := authors[c.User]; ok {
			view.Author = &author
		}
		views = append(views, view)
	}
	return views
}

// ReferencedUserIDs returns the distinct user ids the posts refer to (owners and commenters)
func ReferencedUserIDs(posts ...*Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.UserID)
		ids = append(ids, lo.Map(p.Comments, func(c Comment, _ int) string { return c.User })...)
	}
	return lo.Uniq(lo.Compact(ids))
}
