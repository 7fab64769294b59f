package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sectormarket-go/internal/adapters/persistence"
	"github.com/andrescamacho/sectormarket-go/internal/application/common"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/commands"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/queries"
	"github.com/andrescamacho/sectormarket-go/internal/application/economy/services"
	"github.com/andrescamacho/sectormarket-go/internal/application/setup"
	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
	"github.com/andrescamacho/sectormarket-go/internal/domain/trading"
	"github.com/andrescamacho/sectormarket-go/test/helpers"
)

// newMediator wires the full command/query surface against an in-memory
// engine and a SQLite test database for journaling.
func newMediator(t *testing.T) common.Mediator {
	t.Helper()

	config := services.DefaultConfig()
	config.EventProbability = 0
	system, err := services.NewDynamicMarketSystem(nil, config, &shared.MockClock{})
	require.NoError(t, err)

	db := helpers.NewTestDB(t)
	registry := setup.NewHandlerRegistry(
		system,
		persistence.NewGormPriceSnapshotRepository(db),
		persistence.NewGormTradeRecordRepository(db),
		nil, nil)

	m := common.NewMediator()
	require.NoError(t, registry.RegisterEconomyHandlers(m))

	neighbors := map[int][]int{1: {2}, 2: {1}}
	for id := 1; id <= 2; id++ {
		_, err := m.Send(context.Background(), &commands.InitializeSectorCommand{
			SectorID:           id,
			WealthLevel:        1.0,
			Population:         500000,
			IndustrialCapacity: 1.0,
			Neighbors:          neighbors[id],
		})
		require.NoError(t, err)
	}
	return m
}

func TestInitializeSectorCommand_RejectsBadSpecialization(t *testing.T) {
	m := newMediator(t)

	_, err := m.Send(context.Background(), &commands.InitializeSectorCommand{
		SectorID:           3,
		WealthLevel:        1.0,
		Population:         1000,
		IndustrialCapacity: 1.0,
		Specialization:     "CHEESE",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid specialization")
}

func TestExecuteTradeCommand_RoundTrip(t *testing.T) {
	m := newMediator(t)
	ctx := context.Background()

	response, err := m.Send(ctx, &commands.ExecuteTradeCommand{
		AgentID:     "trader-1",
		SectorID:    1,
		CommodityID: "FOOD",
		Quantity:    10,
		Side:        "BUY",
		Credits:     2000,
	})

	require.NoError(t, err)
	result := response.(*commands.ExecuteTradeResponse).Result
	assert.Equal(t, 500, result.Total)
	assert.Equal(t, 1500, result.NewCredits)

	// The executed trade lands in both the in-memory ring and the journal.
	historyResponse, err := m.Send(ctx, &queries.GetHistoryQuery{SectorID: 1, Limit: 10})
	require.NoError(t, err)
	records := historyResponse.(*queries.GetHistoryResponse).Records
	require.Len(t, records, 1)
	assert.Equal(t, 10, records[0].Quantity())
}

func TestExecuteTradeCommand_RejectsUnknownSide(t *testing.T) {
	m := newMediator(t)

	_, err := m.Send(context.Background(), &commands.ExecuteTradeCommand{
		AgentID:     "trader-1",
		SectorID:    1,
		CommodityID: "FOOD",
		Quantity:    1,
		Side:        "SHORT",
		Credits:     100,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid trade side")
}

func TestExecuteTradeCommand_PropagatesTradeErrors(t *testing.T) {
	m := newMediator(t)

	_, err := m.Send(context.Background(), &commands.ExecuteTradeCommand{
		AgentID:     "trader-1",
		SectorID:    1,
		CommodityID: "FOOD",
		Quantity:    10,
		Side:        "BUY",
		Credits:     3,
	})

	var fundsErr *trading.InsufficientFundsError
	assert.ErrorAs(t, err, &fundsErr)
}

func TestAdvanceTurnCommand_AdvancesAndJournals(t *testing.T) {
	m := newMediator(t)
	ctx := context.Background()

	response, err := m.Send(ctx, &commands.AdvanceTurnCommand{Turns: 3})

	require.NoError(t, err)
	advance := response.(*commands.AdvanceTurnResponse)
	require.Len(t, advance.Reports, 3)
	assert.Equal(t, 3, advance.Reports[2].Turn)

	// Journaled snapshots are readable back through the price history query.
	historyResponse, err := m.Send(ctx, &queries.GetPriceHistoryQuery{
		SectorID:    1,
		CommodityID: "FOOD",
		Limit:       10,
	})
	require.NoError(t, err)
	snapshots := historyResponse.(*queries.GetPriceHistoryResponse).Snapshots
	require.Len(t, snapshots, 3)
	assert.Equal(t, 3, snapshots[0].Turn(), "newest turn first")
}

func TestTriggerEventCommand_Scripted(t *testing.T) {
	m := newMediator(t)
	ctx := context.Background()

	response, err := m.Send(ctx, &commands.TriggerEventCommand{
		Kind:      "SHORTAGE",
		SectorIDs: []int{1},
		Modifier:  1.5,
		Duration:  4,
	})

	require.NoError(t, err)
	event := response.(*commands.TriggerEventResponse).Event
	assert.Equal(t, 1.5, event.Modifier())
	assert.Equal(t, 4, event.RemainingTurns())

	summaryResponse, err := m.Send(ctx, &queries.EconomicSummaryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, summaryResponse.(*queries.EconomicSummaryResponse).Summary.ActiveEvents)
}

func TestMediator_RejectsUnregisteredRequest(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), &commands.AdvanceTurnCommand{})

	assert.Error(t, err)
}
