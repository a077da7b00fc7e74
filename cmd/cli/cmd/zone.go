// Package cmd - zone command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"freight-rate/core/cards"
	"freight-rate/core/types"
)

var (
	zoneFrom    int
	zoneTo      int
	zoneCarrier string
)

// zoneCmd represents the zone command
var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Resolve the pricing zone for a route",
	Long: `Resolve a source/destination pincode pair to each carrier's
pricing zone without computing a price.

Examples:
  freight-rate zone --from 400001 --to 110001
  freight-rate zone --from 400001 --to 110001 --carrier "Delhivery"`,
	RunE: runZone,
}

func init() {
	zoneCmd.Flags().IntVar(&zoneFrom, "from", 0, "source pincode")
	zoneCmd.Flags().IntVar(&zoneTo, "to", 0, "destination pincode")
	zoneCmd.Flags().StringVarP(&zoneCarrier, "carrier", "c", "", "resolve a single carrier by name")

	zoneCmd.MarkFlagRequired("from")
	zoneCmd.MarkFlagRequired("to")
}

func runZone(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	carrierList := application.carriers
	if zoneCarrier != "" {
		cfg, ok := cards.Find(application.carriers, zoneCarrier)
		if !ok {
			return fmt.Errorf("unknown carrier: %s", zoneCarrier)
		}
		carrierList = []*types.CarrierConfig{cfg}
	}

	for _, cfg := range carrierList {
		res := application.resolver.Resolve(zoneFrom, zoneTo, cfg)
		status := "serviceable"
		if !res.Serviceable {
			status = "not serviceable"
		}
		fmt.Printf("%-30s %-15s %s\n", cfg.CarrierName, status, res.Description)
	}
	return nil
}
