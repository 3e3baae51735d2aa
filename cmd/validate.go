package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/deck"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the deck file and every referenced asset",
	Long: `Validate parses cards.toml and checks every record for required fields
and every referenced asset file for existence, reporting all problems at
once instead of stopping at the first. A render of a valid deck cannot
fail on missing assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		d, err := deck.Read(cfg.DeckPath())
		if err != nil {
			return err
		}

		lib := assets.NewLibrary(cfg.InputFolder)
		var errs []string
		var warnings []string

		for i := range d.Cards {
			c := &d.Cards[i]
			label := fmt.Sprintf("card %d (%s)", i, c.City)

			if err := c.Validate(i); err != nil {
				errs = append(errs, err.Error())
			}
			if c.Image != "" {
				if _, err := lib.Landscape(c.Image); err != nil {
					errs = append(errs, fmt.Sprintf("%s: %v", label, err))
				}
			}
			if c.Flag != "" {
				if _, err := lib.Flag(c.Flag); err != nil {
					errs = append(errs, fmt.Sprintf("%s: %v", label, err))
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("%s: no flag", label))
			}
			if c.Continent != "" {
				if _, err := lib.ContinentOutline(c.Continent); err != nil {
					errs = append(errs, fmt.Sprintf("%s: %v", label, err))
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("%s: no continent", label))
			}
			for _, id := range c.Transport {
				if _, err := lib.TransportIcon(id); err != nil {
					errs = append(errs, fmt.Sprintf("%s: %v", label, err))
				}
			}
			if c.CornerNumber == "" {
				warnings = append(warnings, fmt.Sprintf("%s: no corner number", label))
			}
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(errs) == 0 {
			fmt.Printf("✅ Deck '%s' is valid (%d cards).\n", cfg.DeckPath(), len(d.Cards))
		} else {
			fmt.Printf("❌ Deck '%s' has %d validation errors:\n", cfg.DeckPath(), len(errs))
			for i, e := range errs {
				fmt.Printf("%d. %s\n", i+1, e)
			}
		}

		if len(warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, w := range warnings {
				fmt.Printf("%d. %s\n", i+1, w)
			}
		}

		if len(errs) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
