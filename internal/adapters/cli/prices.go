package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	economyQueries "github.com/andrescamacho/sectormarket-go/internal/application/economy/queries"
)

// NewPricesCommand creates the prices command
func NewPricesCommand() *cobra.Command {
	var sectorID int

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show the quote board for a sector",
		Long: `Show every commodity traded in a sector with price, supply, demand,
volatility and trend.

Examples:
  sectormarket prices --sector 1
  sectormarket prices --sector 3 --turns 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sectorID == 0 {
				return fmt.Errorf("--sector flag is required")
			}

			eng, err := buildEngine()
			if err != nil {
				return err
			}

			response, err := eng.mediator.Send(eng.ctx, &economyQueries.GetPricesQuery{SectorID: sectorID})
			if err != nil {
				return fmt.Errorf("failed to get prices: %w", err)
			}
			result, ok := response.(*economyQueries.GetPricesResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			snapshot := result.Snapshot
			fmt.Printf("\n=== Sector %d (turn %d) ===\n", snapshot.SectorID, snapshot.Turn)
			fmt.Printf("Condition: %s  Wealth: %.2f", snapshot.Condition, snapshot.WealthLevel)
			if snapshot.Specialization != "" {
				fmt.Printf("  Specialization: %s", snapshot.Specialization)
			}
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMODITY\tPRICE\tSUPPLY\tDEMAND\tVOLATILITY\tTREND")
			for _, quote := range snapshot.Quotes {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.2f\t%s\n",
					quote.CommodityID, quote.Price, quote.Supply, quote.Demand,
					quote.Volatility, quote.Trend)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&sectorID, "sector", 0, "Sector ID (required)")
	return cmd
}
