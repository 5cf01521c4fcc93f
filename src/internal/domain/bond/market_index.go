package bond

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// MarketIndex reference entity
// ===========================

// MarketIndex is the lookup entity for a benchmark index (CDI, IPCA,
// SELIC...) that post-fixed bonds track.
type MarketIndex struct {
	shared.Entity

	symbol               string
	description          string
	yearlyPercentualRate Rate
}

// NewMarketIndex validates the upper-normalized symbol and the reference
// yearly percentage.
func NewMarketIndex(symbol, description string, yearlyPercentualRate decimal.Decimal) (*MarketIndex, error) {
	sym, err := normalizeReferenceSymbol(symbol)
	if err != nil {
		return nil, err
	}
	rate, err := NewRate(yearlyPercentualRate)
	if err != nil {
		return nil, err
	}

	return &MarketIndex{
		Entity:               shared.NewEntity(time.Now()),
		symbol:               sym,
		description:          description,
		yearlyPercentualRate: rate,
	}, nil
}

// ReconstituteMarketIndex rebuilds an index from persisted data.
func ReconstituteMarketIndex(
	id int,
	symbol, description string,
	yearlyPercentualRate decimal.Decimal,
	createdAt time.Time,
	lastUpdatedAt *time.Time,
) (*MarketIndex, error) {
	index, err := NewMarketIndex(symbol, description, yearlyPercentualRate)
	if err != nil {
		return nil, err
	}
	index.Entity = shared.ReconstituteEntity(id, createdAt, lastUpdatedAt)
	return index, nil
}

// UpdateYearlyRate replaces the reference yearly percentage.
func (i *MarketIndex) UpdateYearlyRate(yearlyPercentualRate decimal.Decimal) error {
	rate, err := NewRate(yearlyPercentualRate)
	if err != nil {
		return err
	}
	i.yearlyPercentualRate = rate
	i.Touch(time.Now())
	return nil
}

// Symbol returns the upper-normalized symbol.
func (i *MarketIndex) Symbol() string {
	return i.symbol
}

// Description returns the optional description.
func (i *MarketIndex) Description() string {
	return i.description
}

// YearlyPercentualRate returns the reference yearly percentage.
func (i *MarketIndex) YearlyPercentualRate() Rate {
	return i.yearlyPercentualRate
}
