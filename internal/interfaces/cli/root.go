package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fpldraft",
	Short: "Fantasy Premier League draft companion",
	Long: `fpldraft helps prepare for and survive a fantasy football snake draft.

Commands:
  analyze   build a pre-draft cheat sheet (rankings, value picks, team analysis)
  live      interactive draft-day tracker (taken players, roster, suggestions)

Player data comes from the FBR statistics API when FBRAPI_KEY is set, and
from a built-in sample table otherwise.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
