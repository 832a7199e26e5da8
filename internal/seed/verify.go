package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/repository"
)

// Report summarizes stored data and lists integrity problems
type Report struct {
	Users           int64
	Posts           int
	PostsWithImages int
	Reactions       int
	ReactionsByType map[models.ReactionType]int
	Comments        int
	Samples         []models.PostView
	Problems        []string
}

// OK reports whether no integrity problems were found
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Verify scans every post and reports what API writes never produce:
// duplicate user reactions, unknown reaction types, empty posts or comments.
func (s *Seeder) Verify(ctx context.Context, samples int) (*Report, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	posts, err := s.wall.ListPosts(ctx, repository.PostFilter{}, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	report := &Report{
		Users:           users,
		Posts:           len(posts),
		ReactionsByType: make(map[models.ReactionType]int, len(models.ReactionTypes)),
	}

	for _, p := range posts {
		if len(p.Images) > 0 {
			report.PostsWithImages++
		}
		if strings.TrimSpace(p.Content) == "" && len(p.Images) == 0 {
			report.Problems = append(report.Problems, fmt.Sprintf("post %s has neither content nor images", p.ID))
		}

		reacted := make(map[string]bool, len(p.Reactions))
		for _, r := range p.Reactions {
			report.Reactions++
			report.ReactionsByType[r.Type]++
			if !r.Type.IsValid() {
				report.Problems = append(report.Problems, fmt.Sprintf("post %s has unknown reaction type %q", p.ID, r.Type))
			}
			if reacted[r.User] {
				report.Problems = append(report.Problems, fmt.Sprintf("post %s has more than one reaction from %s", p.ID, r.User))
			}
			reacted[r.User] = true
		}

		for _, c := range p.Comments {
			report.Comments++
			if strings.TrimSpace(c.Content) == "" {
				report.Problems = append(report.Problems, fmt.Sprintf("comment %s on post %s is empty", c.ID, p.ID))
			}
		}
	}

	if samples > len(posts) {
		samples = len(posts)
	}
	report.Samples = posts[:samples]
	return report, nil
}
