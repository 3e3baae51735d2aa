package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wanderdeck/wanderdeck/internal/config"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wanderdeck",
	Short: "Tool for building printable travel card decks",
	Long: `Wanderdeck builds a themed deck of travel playing cards from per-card
metadata and image assets. It composites each card's layout (landscape
photo, city and country labels, flag, continent icon, transport icons,
corner number) into a multi-page print PDF and standalone card images,
and extracts the colored continent icons from its embedded world map.`,
}

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "",
		"Path to the project config file (default wanderdeck.toml)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the project config named by the --config flag,
// creating the default file when it does not exist yet.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
