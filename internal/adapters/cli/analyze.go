package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	economyQueries "github.com/andrescamacho/sectormarket-go/internal/application/economy/queries"
)

// NewAnalyzeCommand creates the analyze command
func NewAnalyzeCommand() *cobra.Command {
	var (
		sectorID    int
		commodityID string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one commodity market",
		Long: `Show the trading position of a commodity in a sector: price against
base, supply/demand pressure, trend and a buy/sell/hold read.

Examples:
  sectormarket analyze --sector 1 --commodity ELECTRONICS --turns 15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sectorID == 0 || commodityID == "" {
				return fmt.Errorf("--sector and --commodity flags are required")
			}

			eng, err := buildEngine()
			if err != nil {
				return err
			}

			response, err := eng.mediator.Send(eng.ctx, &economyQueries.MarketAnalysisQuery{
				SectorID:    sectorID,
				CommodityID: commodityID,
			})
			if err != nil {
				return fmt.Errorf("failed to analyze market: %w", err)
			}
			result, ok := response.(*economyQueries.MarketAnalysisResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			a := result.Analysis
			fmt.Printf("\n=== %s in sector %d (turn %d) ===\n", a.CommodityID, a.SectorID, a.Turn)
			fmt.Printf("Price: %d (base %.0f, ratio %.2f)\n", a.Price, a.BasePrice, a.PriceRatio)
			fmt.Printf("Supply: %d  Demand: %d  (ratio %.2f)\n", a.Supply, a.Demand, a.SupplyDemandRatio)
			fmt.Printf("Trend: %s  Volatility: %.2f\n", a.Trend, a.Volatility)
			fmt.Printf("Recommendation: %s\n", a.Recommendation)
			return nil
		},
	}

	cmd.Flags().IntVar(&sectorID, "sector", 0, "Sector ID (required)")
	cmd.Flags().StringVar(&commodityID, "commodity", "", "Commodity ID (required)")
	return cmd
}
