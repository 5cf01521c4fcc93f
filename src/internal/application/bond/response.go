package bond

import (
	"time"

	"github.com/fmartins/bond_crm/src/internal/domain/bond"
)

// ===========================
// Response projections
// ===========================

// BondResponse is the outward projection of the Bond aggregate.
type BondResponse struct {
	ID              int
	Symbol          string
	Isin            string
	IssuanceAt      time.Time
	ExpirationAt    time.Time
	BondDetailID    int
	IsCetipVerified bool
	APIID           string
	HasExpired      bool
	IsActive        bool
	RemainingDays   int
	DurationInYears float64
	CreatedAt       time.Time
	LastUpdatedAt   *time.Time
}

func toResponse(b *bond.Bond) BondResponse {
	return BondResponse{
		ID:              b.ID(),
		Symbol:          b.Symbol().Value(),
		Isin:            b.Isin().Value(),
		IssuanceAt:      b.IssuanceAt(),
		ExpirationAt:    b.ExpirationAt(),
		BondDetailID:    b.BondDetailID(),
		IsCetipVerified: b.IsCetipVerified(),
		APIID:           b.APIID().String(),
		HasExpired:      b.HasExpired(),
		IsActive:        b.IsActive(),
		RemainingDays:   b.RemainingDays(),
		DurationInYears: b.DurationInYears(),
		CreatedAt:       b.CreatedAt(),
		LastUpdatedAt:   b.LastUpdatedAt(),
	}
}

// BondDetailResponse is the outward projection of the BondDetail
// aggregate, with Money/Rate flattened to decimal strings and the derived
// classifications included.
type BondDetailResponse struct {
	ID                      int
	FantasyName             string
	DeadlineCalendarDays    int
	InitialUnitValue        string
	BenchmarkPercentualRate string
	FixedPercentualRate     string
	IsAvailable             bool
	IsExemptDebenture       bool
	DaysToGracePeriod       int
	MarketIndexID           int
	BondBaseID              int
	BondEmitterID           int
	IsPreFixed              bool
	IsPostFixed             bool
	IsHybrid                bool
	LiquidityDescription    string
	DeadlineDescription     string
	CreatedAt               time.Time
	LastUpdatedAt           *time.Time
}

func toDetailResponse(d *bond.BondDetail) BondDetailResponse {
	return BondDetailResponse{
		ID:                      d.ID(),
		FantasyName:             d.FantasyName(),
		DeadlineCalendarDays:    d.DeadlineCalendarDays(),
		InitialUnitValue:        d.InitialUnitValue().Amount().String(),
		BenchmarkPercentualRate: d.BenchmarkPercentualRate().Value().String(),
		FixedPercentualRate:     d.FixedPercentualRate().Value().String(),
		IsAvailable:             d.IsAvailable(),
		IsExemptDebenture:       d.IsExemptDebenture(),
		DaysToGracePeriod:       d.DaysToGracePeriod(),
		MarketIndexID:           d.MarketIndexID(),
		BondBaseID:              d.BondBaseID(),
		BondEmitterID:           d.BondEmitterID(),
		IsPreFixed:              d.IsPreFixed(),
		IsPostFixed:             d.IsPostFixed(),
		IsHybrid:                d.IsHybrid(),
		LiquidityDescription:    d.GetLiquidityDescription(),
		DeadlineDescription:     d.GetDeadlineDescription(),
		CreatedAt:               d.CreatedAt(),
		LastUpdatedAt:           d.LastUpdatedAt(),
	}
}
