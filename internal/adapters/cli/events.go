package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	economyCommands "github.com/andrescamacho/sectormarket-go/internal/application/economy/commands"
)

// NewEventsCommand creates the events command with subcommands
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect and trigger economic events",
		Long: `List the events currently disturbing markets, or trigger a scripted one.

Examples:
  sectormarket events list --turns 20
  sectormarket events trigger --kind WAR --sector 2 --sector 3 --turns 5`,
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsTriggerCommand())
	return cmd
}

func newEventsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active economic events",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine()
			if err != nil {
				return err
			}

			active := eng.system.ActiveEvents()
			if len(active) == 0 {
				fmt.Println("No active events")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tSECTORS\tMODIFIER\tREMAINING\tDESCRIPTION")
			for _, event := range active {
				fmt.Fprintf(w, "%s\t%v\t%.2f\t%d\t%s\n",
					event.Kind(), event.SectorIDs(), event.Modifier(),
					event.RemainingTurns(), event.Description())
			}
			return w.Flush()
		},
	}
}

func newEventsTriggerCommand() *cobra.Command {
	var (
		kind     string
		sectors  []int
		modifier float64
		duration int
	)

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Trigger a scripted economic event",
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" || len(sectors) == 0 {
				return fmt.Errorf("--kind and at least one --sector flag are required")
			}

			eng, err := buildEngine()
			if err != nil {
				return err
			}

			response, err := eng.mediator.Send(eng.ctx, &economyCommands.TriggerEventCommand{
				Kind:      kind,
				SectorIDs: sectors,
				Modifier:  modifier,
				Duration:  duration,
			})
			if err != nil {
				return fmt.Errorf("failed to trigger event: %w", err)
			}
			result, ok := response.(*economyCommands.TriggerEventResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			event := result.Event
			fmt.Printf("Triggered %s in sectors %v: modifier %.2f for %d turns\n",
				event.Kind(), event.SectorIDs(), event.Modifier(), event.RemainingTurns())
			fmt.Println(event.Description())
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Event kind: SHORTAGE, BOOM, WAR, EMBARGO, FESTIVAL")
	cmd.Flags().IntSliceVar(&sectors, "sector", nil, "Target sector ID (repeatable)")
	cmd.Flags().Float64Var(&modifier, "modifier", 0, "Exact price modifier (0 draws from the kind profile)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Exact duration in turns (with --modifier)")
	return cmd
}
