package cmd

import (
	"fmt"

	"github.com/KlienGumapac/freedomewall/pkg/api"
	"github.com/KlienGumapac/freedomewall/pkg/service"
	"github.com/spf13/cobra"
)

var (
	profileBio          string
	profileEducation    string
	profileLocation     string
	profileRelationship string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "User profile commands",
	Long:  "View and edit profiles",
}

var profileViewCmd = &cobra.Command{
	Use:   "view [user-id]",
	Short: "View a profile (default: yours)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := ""
		if len(args) > 0 {
			userID = args[0]
		}
		return service.NewProfileService().ViewProfile(userID)
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile details",
	Long:  "Edit your profile details. Only the flags you pass are changed; pass an empty value to clear a field.",
	Example: `  wallctl profile edit --bio "Night owl" --location Cebu
  wallctl profile edit --relationship ""`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		var req api.ProfileRequest
		if flags.Changed("bio") {
			req.Bio = &profileBio
		}
		if flags.Changed("education") {
			req.Education = &profileEducation
		}
		if flags.Changed("location") {
			req.Location = &profileLocation
		}
		if flags.Changed("relationship") {
			req.Relationship = &profileRelationship
		}
		if req == (api.ProfileRequest{}) {
			return fmt.Errorf("nothing to change; pass at least one of --bio, --education, --location, --relationship")
		}
		return service.NewProfileService().UpdateDetails(req)
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar <file|url>",
	Short: "Replace your avatar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService().UpdateAvatar(args[0])
	},
}

var profileCoverCmd = &cobra.Command{
	Use:   "cover <file|url>",
	Short: "Replace your cover photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService().UpdateCoverPhoto(args[0])
	},
}

func init() {
	profileEditCmd.Flags().StringVar(&profileBio, "bio", "", "Short bio")
	profileEditCmd.Flags().StringVar(&profileEducation, "education", "", "School or education")
	profileEditCmd.Flags().StringVar(&profileLocation, "location", "", "Where you live")
	profileEditCmd.Flags().StringVar(&profileRelationship, "relationship", "", "Relationship status")

	profileCmd.AddCommand(profileViewCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileAvatarCmd)
	profileCmd.AddCommand(profileCoverCmd)
}
