package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	economyCommands "github.com/andrescamacho/sectormarket-go/internal/application/economy/commands"
	economyQueries "github.com/andrescamacho/sectormarket-go/internal/application/economy/queries"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
)

// simAgent is one scripted trader's position during a simulation run
type simAgent struct {
	id       string
	credits  int
	holdings map[string]int
}

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		turns    int
		traders  int
		credits  int
		seed     int64
		perTurn  int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a multi-turn simulation with scripted traders",
		Long: `Advance the simulation turn by turn while scripted traders buy low and
sell high, then print where the economy ended up.

Examples:
  sectormarket simulate --sim-turns 50
  sectormarket simulate --sim-turns 100 --traders 8 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine()
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			agents := make([]*simAgent, traders)
			for i := range agents {
				agents[i] = &simAgent{
					id:       fmt.Sprintf("sim-%d", i+1),
					credits:  credits,
					holdings: make(map[string]int),
				}
			}

			sectors := DefaultSectors()
			commodities := eng.system.Catalog().IDs()
			executed, rejected := 0, 0

			for t := 0; t < turns; t++ {
				if _, err := eng.mediator.Send(eng.ctx, &economyCommands.AdvanceTurnCommand{}); err != nil {
					return err
				}

				for i := 0; i < perTurn; i++ {
					agent := agents[rng.Intn(len(agents))]
					sector := sectors[rng.Intn(len(sectors))].SectorID
					commodity := commodities[rng.Intn(len(commodities))]

					side := trading.SideBuy
					if held := agent.holdings[commodity]; held > 0 && rng.Intn(2) == 0 {
						side = trading.SideSell
					}
					quantity := 1 + rng.Intn(10)
					if side == trading.SideSell && quantity > agent.holdings[commodity] {
						quantity = agent.holdings[commodity]
					}

					response, err := eng.mediator.Send(eng.ctx, &economyCommands.ExecuteTradeCommand{
						AgentID:     agent.id,
						SectorID:    sector,
						CommodityID: commodity,
						Quantity:    quantity,
						Side:        side.String(),
						Credits:     agent.credits,
						Holding:     agent.holdings[commodity],
					})
					if err != nil {
						rejected++
						continue
					}
					result := response.(*economyCommands.ExecuteTradeResponse).Result
					agent.credits = result.NewCredits
					agent.holdings[commodity] = result.NewHolding
					executed++
				}
			}

			fmt.Printf("\nSimulated %d turns: %d trades executed, %d rejected\n", turns, executed, rejected)
			for _, agent := range agents {
				held := 0
				for _, units := range agent.holdings {
					held += units
				}
				fmt.Printf("  %s: %d credits, %d units in cargo\n", agent.id, agent.credits, held)
			}

			response, err := eng.mediator.Send(eng.ctx, &economyQueries.EconomicSummaryQuery{})
			if err != nil {
				return err
			}
			summary := response.(*economyQueries.EconomicSummaryResponse).Summary
			fmt.Printf("Average wealth: %.2f  Supply: %d  Demand: %d\n",
				summary.AverageWealth, summary.TotalSupply, summary.TotalDemand)
			return nil
		},
	}

	cmd.Flags().IntVar(&turns, "sim-turns", 50, "Turns to simulate")
	cmd.Flags().IntVar(&traders, "traders", 4, "Number of scripted traders")
	cmd.Flags().IntVar(&credits, "credits", 10000, "Starting credits per trader")
	cmd.Flags().IntVar(&perTurn, "trades-per-turn", 6, "Trade attempts per turn")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the scripted traders")
	return cmd
}
