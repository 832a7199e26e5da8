package cmd

import (
	"fmt"

	"github.com/KlienGumapac/freedomewall/pkg/client"
	"github.com/KlienGumapac/freedomewall/pkg/output"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(output.Out, client.UserAgent)
	},
}
