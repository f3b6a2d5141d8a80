package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rob/internal/version"
)

var versionShowFull bool

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show rob build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("rob %s\n", version.Pretty())
		if versionShowFull {
			if version.GitCommit != "" {
				fmt.Printf("commit: %s\n", version.GitCommit)
			}
			if version.BuildDate != "" {
				fmt.Printf("built:  %s\n", version.BuildDate)
			}
		}
		return nil
	},
}
