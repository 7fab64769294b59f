package trading

import (
	"fmt"

	"github.com/andrescamacho/sectormarket-go/internal/domain/shared"
)

// Trade failures are typed, recoverable business conditions. Each carries
// the numbers the caller needs to render a message verbatim.

type TradeError struct {
	*shared.DomainError
}

func NewTradeError(message string) *TradeError {
	return &TradeError{DomainError: &shared.DomainError{Message: message}}
}

// UnknownMarketError is returned when the sector or commodity has no
// initialized market data
type UnknownMarketError struct {
	*TradeError
	SectorID    int
	CommodityID string
}

func NewUnknownMarketError(sectorID int, commodityID string) *UnknownMarketError {
	return &UnknownMarketError{
		TradeError:  NewTradeError(fmt.Sprintf("unknown market: sector %d, commodity %s", sectorID, commodityID)),
		SectorID:    sectorID,
		CommodityID: commodityID,
	}
}

// UnknownSectorError is returned when a sector has no initialized economy
type UnknownSectorError struct {
	*TradeError
	SectorID int
}

func NewUnknownSectorError(sectorID int) *UnknownSectorError {
	return &UnknownSectorError{
		TradeError: NewTradeError(fmt.Sprintf("unknown sector: %d", sectorID)),
		SectorID:   sectorID,
	}
}

// InvalidQuantityError is returned when the order quantity is not a positive
// integer
type InvalidQuantityError struct {
	*TradeError
	Quantity int
}

func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{
		TradeError: NewTradeError(fmt.Sprintf("invalid quantity: %d, must be a positive integer", quantity)),
		Quantity:   quantity,
	}
}

// InsufficientFundsError is returned when a buy exceeds the agent's credits
type InsufficientFundsError struct {
	*TradeError
	Required  int
	Available int
}

func NewInsufficientFundsError(required, available int) *InsufficientFundsError {
	return &InsufficientFundsError{
		TradeError: NewTradeError(fmt.Sprintf("insufficient funds: required %d, available %d", required, available)),
		Required:   required,
		Available:  available,
	}
}

// InsufficientSupplyError is returned when a buy would drain market supply
// below zero
type InsufficientSupplyError struct {
	*TradeError
	Requested int
	Available int
}

func NewInsufficientSupplyError(requested, available int) *InsufficientSupplyError {
	return &InsufficientSupplyError{
		TradeError: NewTradeError(fmt.Sprintf("insufficient supply: requested %d, available %d", requested, available)),
		Requested:  requested,
		Available:  available,
	}
}

// InsufficientInventoryError is returned when a sell exceeds the agent's
// holding of the commodity
type InsufficientInventoryError struct {
	*TradeError
	Requested int
	Held      int
}

func NewInsufficientInventoryError(requested, held int) *InsufficientInventoryError {
	return &InsufficientInventoryError{
		TradeError: NewTradeError(fmt.Sprintf("insufficient inventory: requested %d, holding %d", requested, held)),
		Requested:  requested,
		Held:       held,
	}
}

// DuplicateInitializationError is returned when a sector economy is
// initialized twice without the reset flag
type DuplicateInitializationError struct {
	*TradeError
	SectorID int
}

func NewDuplicateInitializationError(sectorID int) *DuplicateInitializationError {
	return &DuplicateInitializationError{
		TradeError: NewTradeError(fmt.Sprintf("sector %d economy already initialized", sectorID)),
		SectorID:   sectorID,
	}
}
