package cmd

import (
	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/pkg/service"
	"github.com/spf13/cobra"
)

var reactCmd = &cobra.Command{
	Use:   "react <post-id> [like|love|haha|wow|sad|angry]",
	Short: "React to a post",
	Long:  "React to a post. Reacting again replaces your previous reaction. The default is like.",
	Args:  cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 1 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		types := make([]string, 0, len(models.ReactionTypes))
		for _, t := range models.ReactionTypes {
			types = append(types, string(t))
		}
		return types, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		reactionType := ""
		if len(args) == 2 {
			reactionType = args[1]
		}
		return service.NewPostService().React(args[0], reactionType)
	},
}
