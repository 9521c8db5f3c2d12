package main

import (
	"github.com/AndNovian/learning01/internal/tracker"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bannerCmd)
}

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Show project banner",
	Args:  cobra.NoArgs,
	RunE:  runBanner,
}

// runBanner needs no store, so it never resolves configuration.
func runBanner(cmd *cobra.Command, args []string) error {
	return emit(cmd, BannerResponse{Banner: tracker.Banner()})
}
