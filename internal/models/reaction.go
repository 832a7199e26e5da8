package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ReactionType is one of the six emoji reactions
type ReactionType string

const (
	ReactionLike  ReactionType = "like"
	ReactionLove  ReactionType = "love"
	ReactionHaha  ReactionType = "haha"
	ReactionWow   ReactionType = "wow"
	ReactionSad   ReactionType = "sad"
	ReactionAngry ReactionType = "angry"
)

// DefaultReaction is used when a request omits the type
const DefaultReaction = ReactionLike

// ErrInvalidReaction is returned for a type outside the six known reactions
var ErrInvalidReaction = errors.New("invalid reaction type")

// ReactionTypes lists every reaction in display order
var ReactionTypes = []ReactionType{
	ReactionLike,
	ReactionLove,
	ReactionHaha,
	ReactionWow,
	ReactionSad,
	ReactionAngry,
}

// IsValid reports whether t is one of the known reactions
func (t ReactionType) IsValid() bool {
	return lo.Contains(ReactionTypes, t)
}

// ParseReactionType maps a request value to a ReactionType. Blank means like.
func ParseReactionType(s string) (ReactionType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultReaction, nil
	}
	t := ReactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidReaction, s)
	}
	return t, nil
}

// Reaction is a single user's reaction on a post
type Reaction struct {
	User string       `bson:"user" json:"user"`
	Type ReactionType `bson:"type" json:"type"`
}

// ReactionOutcome tells what ApplyReaction did
type ReactionOutcome string

const (
	ReactionAdded    ReactionOutcome = "added"
	ReactionRemoved  ReactionOutcome = "removed"
	ReactionReplaced ReactionOutcome = "replaced"
)

// ApplyReaction applies userID's reaction of type t to reactions and returns the new list.
// No entry for the user appends one; the same type removes it; a different type replaces
// the type in place. The input slice is not modified.
func ApplyReaction(reactions []Reaction, userID string, t ReactionType) ([]Reaction, ReactionOutcome) {
	_, idx, found := lo.FindIndexOf(reactions, func(r Reaction) bool {
		return r.User == userID
	})

	result := make([]Reaction, len(reactions), len(reactions)+1)
	copy(result, reactions)

	switch {
	case !found:
		return append(result, Reaction{User: userID, Type: t}), ReactionAdded
	case result[idx].Type == t:
		return append(result[:idx], result[idx+1:]...), ReactionRemoved
	default:
		result[idx].Type = t
		return result, ReactionReplaced
	}
}

// ReactionSummary is the derived view of a post's reactions for one viewer
type ReactionSummary struct {
	Likes        int                  `json:"likes"`
	UserReacted  bool                 `json:"userReacted"`
	UserReaction ReactionType         `json:"userReaction,omitempty"`
	Counts       map[ReactionType]int `json:"counts"`
}

// Summarize derives the reaction summary. viewerID may be empty.
func Summarize(reactions []Reaction, viewerID string) ReactionSummary {
	counts := make(map[ReactionType]int, len(ReactionTypes))
	for _, t := range ReactionTypes {
		counts[t] = 0
	}
	for t, n := range lo.CountValuesBy(reactions, func(r Reaction) ReactionType { return r.Type }) {
		counts[t] = n
	}

	summary := ReactionSummary{
		Likes:  len(reactions),
		Counts: counts,
	}
	if viewerID != "" {
		if mine, ok := lo.Find(reactions, func(r Reaction) bool { return r.User == viewerID }); ok {
			summary.UserReacted = true
			summary.UserReaction = mine.Type
		}
	}
	return summary
}

// TopReactions returns the reaction types with a non-zero count, most frequent first,
// ties in display order. counts is ReactionSummary.Counts.
func TopReactions(counts map[ReactionType]int, limit int) []ReactionType {
	present := lo.Filter(ReactionTypes, func(t ReactionType, _ int) bool { return counts[t] > 0 })
	ordered := make([]ReactionType, 0, len(present))
	for len(present) > 0 {
		best := lo.MaxBy(present, func(a, b ReactionType) bool { return counts[a] > counts[b] })
		ordered = append(ordered, best)
		present = lo.Without(present, best)
	}
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}
