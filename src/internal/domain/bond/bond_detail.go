package bond

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// BondDetail aggregate
// ===========================

// BondDetail carries the pricing and liquidity terms of a bond offer.
//
// Invariants:
// 1. DeadlineCalendarDays > 0
// 2. 0 <= DaysToGracePeriod <= DeadlineCalendarDays
// 3. MarketIndexID, BondBaseID and BondEmitterID are positive
// 4. InitialUnitValue is non-negative, rates are within [0, 1000]
type BondDetail struct {
	shared.Entity

	fantasyName             string
	deadlineCalendarDays    int
	initialUnitValue        Money
	benchmarkPercentualRate Rate
	fixedPercentualRate     Rate
	isAvailable             bool
	isExemptDebenture       bool
	daysToGracePeriod       int

	marketIndexID int
	bondBaseID    int
	bondEmitterID int
}

// NewBondDetail validates the deadline/grace relationship and the
// reference ids, then constructs the Money/Rate value objects, whose own
// validation cascades.
func NewBondDetail(
	fantasyName string,
	deadlineCalendarDays int,
	initialUnitValue decimal.Decimal,
	benchmarkPercentualRate decimal.Decimal,
	fixedPercentualRate decimal.Decimal,
	isAvailable bool,
	isExemptDebenture bool,
	daysToGracePeriod int,
	marketIndexID int,
	bondBaseID int,
	bondEmitterID int,
) (*BondDetail, error) {
	if deadlineCalendarDays <= 0 {
		return nil, ErrDeadlineNotPositive.WithContext("deadline", deadlineCalendarDays)
	}
	if err := validateGracePeriod(daysToGracePeriod, deadlineCalendarDays); err != nil {
		return nil, err
	}
	if err := validateReferenceIDs(marketIndexID, bondBaseID, bondEmitterID); err != nil {
		return nil, err
	}

	unitValue, err := NewMoney(initialUnitValue)
	if err != nil {
		return nil, err
	}
	benchmarkRate, err := NewRate(benchmarkPercentualRate)
	if err != nil {
		return nil, err
	}
	fixedRate, err := NewRate(fixedPercentualRate)
	if err != nil {
		return nil, err
	}

	return &BondDetail{
		Entity:                  shared.NewEntity(time.Now()),
		fantasyName:             fantasyName,
		deadlineCalendarDays:    deadlineCalendarDays,
		initialUnitValue:        unitValue,
		benchmarkPercentualRate: benchmarkRate,
		fixedPercentualRate:     fixedRate,
		isAvailable:             isAvailable,
		isExemptDebenture:       isExemptDebenture,
		daysToGracePeriod:       daysToGracePeriod,
		marketIndexID:           marketIndexID,
		bondBaseID:              bondBaseID,
		bondEmitterID:           bondEmitterID,
	}, nil
}

// ReconstituteBondDetail rebuilds a detail from persisted data, trusting
// identity and audit fields while re-validating everything re-derivable.
func ReconstituteBondDetail(
	id int,
	fantasyName string,
	deadlineCalendarDays int,
	initialUnitValue decimal.Decimal,
	benchmarkPercentualRate decimal.Decimal,
	fixedPercentualRate decimal.Decimal,
	isAvailable bool,
	isExemptDebenture bool,
	daysToGracePeriod int,
	marketIndexID int,
	bondBaseID int,
	bondEmitterID int,
	createdAt time.Time,
	lastUpdatedAt *time.Time,
) (*BondDetail, error) {
	detail, err := NewBondDetail(
		fantasyName,
		deadlineCalendarDays,
		initialUnitValue,
		benchmarkPercentualRate,
		fixedPercentualRate,
		isAvailable,
		isExemptDebenture,
		daysToGracePeriod,
		marketIndexID,
		bondBaseID,
		bondEmitterID,
	)
	if err != nil {
		return nil, err
	}
	detail.Entity = shared.ReconstituteEntity(id, createdAt, lastUpdatedAt)
	return detail, nil
}

// ===========================
// Mutations
// ===========================

// UpdateRates replaces both rates and the grace period, re-validating the
// grace period against the current deadline.
func (d *BondDetail) UpdateRates(
	benchmarkPercentualRate decimal.Decimal,
	fixedPercentualRate decimal.Decimal,
	daysToGracePeriod int,
) error {
	if err := validateGracePeriod(daysToGracePeriod, d.deadlineCalendarDays); err != nil {
		return err
	}
	benchmarkRate, err := NewRate(benchmarkPercentualRate)
	if err != nil {
		return err
	}
	fixedRate, err := NewRate(fixedPercentualRate)
	if err != nil {
		return err
	}

	d.benchmarkPercentualRate = benchmarkRate
	d.fixedPercentualRate = fixedRate
	d.daysToGracePeriod = daysToGracePeriod
	d.Touch(time.Now())
	return nil
}

// MarkAvailable puts the offer back on the shelf.
func (d *BondDetail) MarkAvailable() {
	d.isAvailable = true
	d.Touch(time.Now())
}

// MarkUnavailable takes the offer off the shelf.
func (d *BondDetail) MarkUnavailable() {
	d.isAvailable = false
	d.Touch(time.Now())
}

// UpdateFantasyName replaces the optional display name.
func (d *BondDetail) UpdateFantasyName(fantasyName string) {
	d.fantasyName = fantasyName
	d.Touch(time.Now())
}

// ===========================
// Derived classifications
// ===========================

// IsPreFixed reports a fixed-rate-only instrument.
func (d *BondDetail) IsPreFixed() bool {
	return d.fixedPercentualRate.IsPositive() && d.benchmarkPercentualRate.IsZero()
}

// IsPostFixed reports a benchmark-indexed instrument. Hybrids are a
// subset of post-fixed.
func (d *BondDetail) IsPostFixed() bool {
	return d.benchmarkPercentualRate.IsPositive()
}

// IsHybrid reports an instrument paying both a fixed and a benchmark rate.
func (d *BondDetail) IsHybrid() bool {
	return d.fixedPercentualRate.IsPositive() && d.benchmarkPercentualRate.IsPositive()
}

// HasDailyLiquidity reports a zero grace period.
func (d *BondDetail) HasDailyLiquidity() bool {
	return d.daysToGracePeriod == 0
}

// IsLiquidOnlyAtMaturity reports grace equal to the full deadline.
func (d *BondDetail) IsLiquidOnlyAtMaturity() bool {
	return d.daysToGracePeriod == d.deadlineCalendarDays
}

// GetLiquidityDescription renders the liquidity terms for display.
func (d *BondDetail) GetLiquidityDescription() string {
	switch {
	case d.HasDailyLiquidity():
		return "Daily liquidity"
	case d.IsLiquidOnlyAtMaturity():
		return "Liquidity at maturity only"
	default:
		return fmt.Sprintf("Liquidity after %d days", d.daysToGracePeriod)
	}
}

// GetDeadlineDescription renders the deadline for display using the
// 360-day banking-year convention: under one year in days, exactly one
// year singular, above one year with one decimal place.
func (d *BondDetail) GetDeadlineDescription() string {
	years := float64(d.deadlineCalendarDays) / bankingYearDays
	switch {
	case years < 1:
		return fmt.Sprintf("%d days", d.deadlineCalendarDays)
	case years == 1:
		return "1 year"
	default:
		return fmt.Sprintf("%.1f years", math.Round(years*10)/10)
	}
}

// ===========================
// Getters
// ===========================

// FantasyName returns the optional display name.
func (d *BondDetail) FantasyName() string {
	return d.fantasyName
}

// DeadlineCalendarDays returns the total deadline.
func (d *BondDetail) DeadlineCalendarDays() int {
	return d.deadlineCalendarDays
}

// InitialUnitValue returns the unit price at issuance.
func (d *BondDetail) InitialUnitValue() Money {
	return d.initialUnitValue
}

// BenchmarkPercentualRate returns the benchmark-index percentage.
func (d *BondDetail) BenchmarkPercentualRate() Rate {
	return d.benchmarkPercentualRate
}

// FixedPercentualRate returns the fixed percentage.
func (d *BondDetail) FixedPercentualRate() Rate {
	return d.fixedPercentualRate
}

// IsAvailable reports whether the offer is on the shelf.
func (d *BondDetail) IsAvailable() bool {
	return d.isAvailable
}

// IsExemptDebenture reports the tax-exemption flag.
func (d *BondDetail) IsExemptDebenture() bool {
	return d.isExemptDebenture
}

// DaysToGracePeriod returns the grace period in days.
func (d *BondDetail) DaysToGracePeriod() int {
	return d.daysToGracePeriod
}

// MarketIndexID returns the market index back-reference.
func (d *BondDetail) MarketIndexID() int {
	return d.marketIndexID
}

// BondBaseID returns the bond base back-reference.
func (d *BondDetail) BondBaseID() int {
	return d.bondBaseID
}

// BondEmitterID returns the bond emitter back-reference.
func (d *BondDetail) BondEmitterID() int {
	return d.bondEmitterID
}

// ===========================
// Validation helpers
// ===========================

func validateGracePeriod(daysToGracePeriod, deadlineCalendarDays int) error {
	if daysToGracePeriod < 0 {
		return ErrGracePeriodNegative.WithContext("days_to_grace_period", daysToGracePeriod)
	}
	if daysToGracePeriod > deadlineCalendarDays {
		return ErrGracePeriodExceedsDeadline.WithContext(
			"days_to_grace_period", daysToGracePeriod,
			"deadline", deadlineCalendarDays,
		)
	}
	return nil
}

func validateReferenceIDs(marketIndexID, bondBaseID, bondEmitterID int) error {
	if marketIndexID <= 0 {
		return ErrInvalidReferenceID.WithContext("market_index_id", marketIndexID)
	}
	if bondBaseID <= 0 {
		return ErrInvalidReferenceID.WithContext("bond_base_id", bondBaseID)
	}
	if bondEmitterID <= 0 {
		return ErrInvalidReferenceID.WithContext("bond_emitter_id", bondEmitterID)
	}
	return nil
}
