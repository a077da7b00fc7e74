// Package cmd - carriers command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// carriersCmd lists the configured carriers
var carriersCmd = &cobra.Command{
	Use:   "carriers",
	Short: "List configured carriers",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}

		for _, cfg := range application.carriers {
			limit := "no weight limit"
			if cfg.MaxWeight > 0 {
				limit = fmt.Sprintf("up to %gkg", cfg.MaxWeight)
			}
			fmt.Printf("%-30s %-22s %s\n", cfg.CarrierName, cfg.Routing.Strategy, limit)
		}
		return nil
	},
}
