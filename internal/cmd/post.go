package cmd

import (
	"strings"

	"github.com/KlienGumapac/freedomewall/pkg/service"
	"github.com/spf13/cobra"
)

var postImages []string

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post commands",
	Long:  "Create and view posts",
}

var postShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show a post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().ShowPost(args[0])
	},
}

var postCreateCmd = &cobra.Command{
	Use:   "create [content...]",
	Short: "Publish a post",
	Long: `Publish a post. Images may be local files, http(s) URLs or data URIs;
repeat --image for several. Without content or images the text is prompted for.`,
	Example: `  wallctl post create "Good morning, wall!"
  wallctl post create --image ./sunset.jpg --image https://picsum.photos/800/600`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().CreatePost(strings.Join(args, " "), postImages)
	},
}

func init() {
	postCreateCmd.Flags().StringArrayVarP(&postImages, "image", "i", nil, "Image file, URL or data URI (repeatable)")

	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postCreateCmd)
}
