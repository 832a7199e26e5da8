package cmd

import (
	"github.com/KlienGumapac/freedomewall/pkg/config"
	"github.com/KlienGumapac/freedomewall/pkg/service"
	"github.com/spf13/cobra"
)

var (
	feedUser  string
	feedLimit int
	feedMine  bool
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the wall, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := feedLimit
		if !cmd.Flags().Changed("limit") {
			limit = config.GetInt("feed.limit")
		}

		feedService := service.NewFeedService()
		if feedMine {
			return feedService.ViewMine(limit)
		}
		return feedService.ViewFeed(feedUser, limit)
	},
}

func init() {
	feedCmd.Flags().StringVar(&feedUser, "user", "", "Only show posts by this user id")
	feedCmd.Flags().IntVarP(&feedLimit, "limit", "n", 20, "Maximum number of posts")
	feedCmd.Flags().BoolVar(&feedMine, "mine", false, "Only show your own posts")
	feedCmd.MarkFlagsMutuallyExclusive("user", "mine")
}
