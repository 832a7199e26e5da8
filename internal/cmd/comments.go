package cmd

import (
	"strings"

	"github.com/KlienGumapac/freedomewall/pkg/service"
	"github.com/spf13/cobra"
)

var commentParent string

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment commands",
	Long:  "Add and list post comments",
}

var commentAddCmd = &cobra.Command{
	Use:   "add <post-id> [text...]",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().AddComment(args[0], strings.Join(args[1:], " "), commentParent)
	},
}

var commentListCmd = &cobra.Command{
	Use:   "list <post-id>",
	Short: "List a post's comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().ListComments(args[0])
	},
}

func init() {
	commentAddCmd.Flags().StringVar(&commentParent, "parent", "", "Id of the comment being replied to")

	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentListCmd)
}
