package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wanderdeck/wanderdeck/internal/continent"
)

var continentsCmd = &cobra.Command{
	Use:   "continents",
	Short: "Extract colored continent outline images from the world map",
	Long: `Continents rasterizes every continent silhouette of the embedded world
map into <output>/continents/, one <name>_outline.png per continent,
filled with the color configured under [continent_colors]. Continents
without a color entry use the "default" color.

Copy the results into <input>/continents/ (or point output there) so the
card renderer can place them on the cards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		transparent, _ := cmd.Flags().GetBool("transparent")
		res, err := continent.Extract(continent.Options{
			OutDir:      cfg.ContinentsDir(),
			Size:        cfg.ContinentSize,
			Colors:      cfg.ContinentColors,
			Transparent: transparent,
		})
		if err != nil {
			return err
		}

		for _, path := range res.Written {
			fmt.Printf("%s %s\n", color.GreenString("Saved"), path)
		}
		for name, ferr := range res.Failed {
			fmt.Printf("%s %s: %v\n", color.RedString("Failed"), name, ferr)
		}
		if len(res.Failed) > 0 {
			return fmt.Errorf("%d continent(s) could not be written", len(res.Failed))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(continentsCmd)

	continentsCmd.Flags().Bool("transparent", false,
		"Transparent background instead of white")
}
