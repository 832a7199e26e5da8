package service

import (
	"fmt"
	"strings"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/pkg/api"
	"github.com/KlienGumapac/freedomewall/pkg/media"
	"github.com/KlienGumapac/freedomewall/pkg/output"
	"github.com/KlienGumapac/freedomewall/pkg/prompter"
)

// PostService handles posts, reactions and comments
type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// ShowPost prints a post with its comments
func (s *PostService) ShowPost(postID string) error {
	post, err := api.GetPost(postID)
	if err != nil {
		return explain(err)
	}
	return output.RenderPost(*post)
}

// CreatePost publishes content with images given as files, URLs or data URIs.
// With neither content nor images the content is read from the prompt.
func (s *PostService) CreatePost(content string, imageRefs []string) error {
	if _, err := requireLogin(); err != nil {
		return err
	}

	if strings.TrimSpace(content) == "" && len(imageRefs) == 0 {
		var err error
		content, err = prompter.PromptString("What's on your mind? ")
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(content) == "" && len(imageRefs) == 0 {
		return fmt.Errorf("a post needs content or at least one image")
	}

	images, err := media.ResolveAll(imageRefs)
	if err != nil {
		return err
	}

	post, err := api.CreatePost(api.CreatePostRequest{Content: content, Images: images})
	if err != nil {
		return explain(err)
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(post)
	}
	output.PrintSuccess("Posted %s", post.ID)
	return nil
}

// React sets the caller's reaction. An empty type means like.
func (s *PostService) React(postID, reactionType string) error {
	if _, err := requireLogin(); err != nil {
		return err
	}

	t, err := models.ParseReactionType(reactionType)
	if err != nil {
		return fmt.Errorf("unknown reaction %q, expected one of %s", reactionType, reactionNames())
	}

	result, err := api.React(postID, string(t))
	if err != nil {
		return explain(err)
	}
	return output.RenderReactionResult(result)
}

// AddComment appends a comment, prompting for the text when empty
func (s *PostService) AddComment(postID, content, parent string) error {
	if _, err := requireLogin(); err != nil {
		return err
	}

	if strings.TrimSpace(content) == "" {
		var err error
		content, err = prompter.PromptString("Comment: ")
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	req := api.CreateCommentRequest{Content: content}
	if parent != "" {
		req.Parent = &parent
	}

	result, err := api.AddComment(postID, req)
	if err != nil {
		return explain(err)
	}
	return output.RenderComments(result.Comments)
}

// ListComments prints a post's comments in the order they were added
func (s *PostService) ListComments(postID string) error {
	post, err := api.GetPost(postID)
	if err != nil {
		return explain(err)
	}
	return output.RenderComments(post.Comments)
}

func reactionNames() string {
	names := make([]string, 0, len(models.ReactionTypes))
	for _, t := range models.ReactionTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
