package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	economyCommands "github.com/andrescamacho/sectormarket-go/internal/application/economy/commands"
)

// NewTradeCommand creates the trade command
func NewTradeCommand() *cobra.Command {
	var (
		sectorID    int
		commodityID string
		side        string
		quantity    int
		credits     int
		holding     int
		agentID     string
	)

	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Execute a buy or sell order against a sector market",
		Long: `Execute one trade at the current quoted price and show the resulting
market and wallet state.

Examples:
  sectormarket trade --sector 1 --commodity FOOD --side BUY --quantity 10 --credits 5000
  sectormarket trade --sector 4 --commodity IRON --side SELL --quantity 20 --holding 50 --turns 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sectorID == 0 || commodityID == "" {
				return fmt.Errorf("--sector and --commodity flags are required")
			}

			eng, err := buildEngine()
			if err != nil {
				return err
			}

			response, err := eng.mediator.Send(eng.ctx, &economyCommands.ExecuteTradeCommand{
				AgentID:     agentID,
				SectorID:    sectorID,
				CommodityID: commodityID,
				Quantity:    quantity,
				Side:        side,
				Credits:     credits,
				Holding:     holding,
			})
			if err != nil {
				return fmt.Errorf("trade rejected: %w", err)
			}
			result, ok := response.(*economyCommands.ExecuteTradeResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			trade := result.Result
			fmt.Printf("\n%s %d x %s in sector %d at %d credits each (total %d)\n",
				trade.Side, trade.Quantity, trade.CommodityID, trade.SectorID,
				trade.UnitPrice, trade.Total)
			fmt.Printf("Market now: supply %d, demand %d\n", trade.NewSupply, trade.NewDemand)
			fmt.Printf("Agent now: %d credits, %d units held\n", trade.NewCredits, trade.NewHolding)
			return nil
		},
	}

	cmd.Flags().IntVar(&sectorID, "sector", 0, "Sector ID (required)")
	cmd.Flags().StringVar(&commodityID, "commodity", "", "Commodity ID (required)")
	cmd.Flags().StringVar(&side, "side", "BUY", "Trade side: BUY or SELL")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units to trade")
	cmd.Flags().IntVar(&credits, "credits", 10000, "Agent credits before the trade")
	cmd.Flags().IntVar(&holding, "holding", 0, "Units of the commodity already held")
	cmd.Flags().StringVar(&agentID, "agent", "cli-trader", "Agent identifier for the history log")
	return cmd
}
