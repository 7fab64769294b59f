package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	economyQueries "github.com/andrescamacho/sectormarket-go/internal/application/economy/queries"
)

// NewSummaryCommand creates the summary command
func NewSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the galaxy-wide economic summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine()
			if err != nil {
				return err
			}

			response, err := eng.mediator.Send(eng.ctx, &economyQueries.EconomicSummaryQuery{})
			if err != nil {
				return fmt.Errorf("failed to get summary: %w", err)
			}
			result, ok := response.(*economyQueries.EconomicSummaryResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			s := result.Summary
			fmt.Printf("\n=== Economic summary (turn %d) ===\n", s.Turn)
			fmt.Printf("Sectors: %d  Average wealth: %.2f\n", s.Sectors, s.AverageWealth)
			fmt.Printf("Total supply: %d  Total demand: %d\n", s.TotalSupply, s.TotalDemand)
			fmt.Printf("Conditions:")
			for condition, count := range s.Conditions {
				fmt.Printf(" %s=%d", condition, count)
			}
			fmt.Println()

			if len(result.Events) == 0 {
				fmt.Println("Active events: none")
				return nil
			}
			fmt.Printf("Active events: %d\n", len(result.Events))
			for _, event := range result.Events {
				fmt.Printf("  %s in %v (modifier %.2f, %d turns left)\n",
					event.Kind(), event.SectorIDs(), event.Modifier(), event.RemainingTurns())
			}
			return nil
		},
	}
}
