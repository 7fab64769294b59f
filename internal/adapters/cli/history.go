package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	economyQueries "github.com/andrescamacho/sectormarket-go/internal/application/economy/queries"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	var (
		sectorID int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent trades in a sector, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sectorID == 0 {
				return fmt.Errorf("--sector flag is required")
			}

			eng, err := buildEngine()
			if err != nil {
				return err
			}

			response, err := eng.mediator.Send(eng.ctx, &economyQueries.GetHistoryQuery{
				SectorID: sectorID,
				Limit:    limit,
			})
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}
			result, ok := response.(*economyQueries.GetHistoryResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			if len(result.Records) == 0 {
				fmt.Printf("No trades recorded in sector %d\n", sectorID)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TURN\tSIDE\tCOMMODITY\tQTY\tPRICE\tTOTAL\tAGENT")
			for _, record := range result.Records {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
					record.Turn(), record.Side(), record.CommodityID(),
					record.Quantity(), record.UnitPrice(), record.Total(),
					record.AgentID())
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&sectorID, "sector", 0, "Sector ID (required)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum trades to show (0 for all)")
	return cmd
}
