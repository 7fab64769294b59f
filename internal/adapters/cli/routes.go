package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	economyQueries "github.com/andrescamacho/sectormarket-go/internal/application/economy/queries"
)

// NewRoutesCommand creates the routes command
func NewRoutesCommand() *cobra.Command {
	var (
		origin  int
		maxHops int
		cargo   int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Rank profitable trade routes from a sector",
		Long: `Rank buy-here/sell-there opportunities reachable within the hop budget,
ordered by expected profit.

Examples:
  sectormarket routes --origin 1 --max-hops 3 --cargo 40
  sectormarket routes --origin 2 --max-hops 2 --cargo 100 --limit 5 --turns 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if origin == 0 {
				return fmt.Errorf("--origin flag is required")
			}

			eng, err := buildEngine()
			if err != nil {
				return err
			}

			response, err := eng.mediator.Send(eng.ctx, &economyQueries.BestRoutesQuery{
				OriginSector:  origin,
				MaxHops:       maxHops,
				CargoCapacity: cargo,
				Limit:         limit,
			})
			if err != nil {
				return fmt.Errorf("failed to compute routes: %w", err)
			}
			result, ok := response.(*economyQueries.BestRoutesResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			if len(result.Routes) == 0 {
				fmt.Println("No profitable routes found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMODITY\tFROM\tTO\tHOPS\tBUY\tSELL\tPROFIT/UNIT\tUNITS\tSCORE")
			for _, route := range result.Routes {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
					route.CommodityID(), route.OriginSector(), route.DestinationSector(),
					route.Hops(), route.BuyPrice(), route.SellPrice(),
					route.ProfitPerUnit(), route.Units(), route.Score())
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&origin, "origin", 0, "Origin sector ID (required)")
	cmd.Flags().IntVar(&maxHops, "max-hops", 3, "Maximum hops from the origin")
	cmd.Flags().IntVar(&cargo, "cargo", 40, "Cargo capacity in units")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum routes to show (0 for all)")
	return cmd
}
