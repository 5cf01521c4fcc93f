package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fmartins/bond_crm/src/internal/domain/bond"
)

// ===========================
// Bond models
// ===========================

// BondModel is the bonds table. The unique index on isin is the
// storage-level backstop for the uniqueness the create handler probes.
type BondModel struct {
	ID              int        `gorm:"column:id;primaryKey;autoIncrement"`
	Symbol          string     `gorm:"column:symbol;type:varchar(50);not null"`
	Isin            string     `gorm:"column:isin;type:varchar(12);not null;uniqueIndex"`
	IssuanceAt      time.Time  `gorm:"column:issuance_at;not null"`
	ExpirationAt    time.Time  `gorm:"column:expiration_at;not null"`
	BondDetailID    *int       `gorm:"column:bond_detail_id"`
	IsCetipVerified bool       `gorm:"column:is_cetip_verified;not null"`
	APIID           string     `gorm:"column:api_id;type:varchar(36);not null;uniqueIndex"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null"`
	LastUpdatedAt   *time.Time `gorm:"column:last_updated_at"`
}

// TableName fixes the table name.
func (BondModel) TableName() string {
	return "bonds"
}

// BondDetailModel is the bond_details table. Money/Rate columns map the
// shopspring decimals through the driver's Valuer/Scanner support.
type BondDetailModel struct {
	ID                      int             `gorm:"column:id;primaryKey;autoIncrement"`
	FantasyName             string          `gorm:"column:fantasy_name;type:varchar(100)"`
	DeadlineCalendarDays    int             `gorm:"column:deadline_calendar_days;not null"`
	InitialUnitValue        decimal.Decimal `gorm:"column:initial_unit_value;type:decimal(18,2);not null"`
	BenchmarkPercentualRate decimal.Decimal `gorm:"column:benchmark_percentual_rate;type:decimal(9,4);not null"`
	FixedPercentualRate     decimal.Decimal `gorm:"column:fixed_percentual_rate;type:decimal(9,4);not null"`
	IsAvailable             bool            `gorm:"column:is_available;not null"`
	IsExemptDebenture       bool            `gorm:"column:is_exempt_debenture;not null"`
	DaysToGracePeriod       int             `gorm:"column:days_to_grace_period;not null"`
	MarketIndexID           int             `gorm:"column:market_index_id;not null"`
	BondBaseID              int             `gorm:"column:bond_base_id;not null"`
	BondEmitterID           int             `gorm:"column:bond_emitter_id;not null"`
	CreatedAt               time.Time       `gorm:"column:created_at;not null"`
	LastUpdatedAt           *time.Time      `gorm:"column:last_updated_at"`
}

// TableName fixes the table name.
func (BondDetailModel) TableName() string {
	return "bond_details"
}

// ===========================
// Mappers
// ===========================

func toBondModel(b *bond.Bond) *BondModel {
	var detailID *int
	if b.BondDetailID() > 0 {
		id := b.BondDetailID()
		detailID = &id
	}

	return &BondModel{
		ID:              b.ID(),
		Symbol:          b.Symbol().Value(),
		Isin:            b.Isin().Value(),
		IssuanceAt:      b.IssuanceAt(),
		ExpirationAt:    b.ExpirationAt(),
		BondDetailID:    detailID,
		IsCetipVerified: b.IsCetipVerified(),
		APIID:           b.APIID().String(),
		CreatedAt:       b.CreatedAt(),
		LastUpdatedAt:   b.LastUpdatedAt(),
	}
}

func (m *BondModel) toDomain() (*bond.Bond, error) {
	apiID, err := uuid.Parse(m.APIID)
	if err != nil {
		return nil, err
	}

	detailID := 0
	if m.BondDetailID != nil {
		detailID = *m.BondDetailID
	}

	return bond.ReconstituteBond(
		m.ID,
		m.Symbol,
		m.Isin,
		m.IssuanceAt,
		m.ExpirationAt,
		detailID,
		m.IsCetipVerified,
		apiID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
}

func toBondDetailModel(d *bond.BondDetail) *BondDetailModel {
	return &BondDetailModel{
		ID:                      d.ID(),
		FantasyName:             d.FantasyName(),
		DeadlineCalendarDays:    d.DeadlineCalendarDays(),
		InitialUnitValue:        d.InitialUnitValue().Amount(),
		BenchmarkPercentualRate: d.BenchmarkPercentualRate().Value(),
		FixedPercentualRate:     d.FixedPercentualRate().Value(),
		IsAvailable:             d.IsAvailable(),
		IsExemptDebenture:       d.IsExemptDebenture(),
		DaysToGracePeriod:       d.DaysToGracePeriod(),
		MarketIndexID:           d.MarketIndexID(),
		BondBaseID:              d.BondBaseID(),
		BondEmitterID:           d.BondEmitterID(),
		CreatedAt:               d.CreatedAt(),
		LastUpdatedAt:           d.LastUpdatedAt(),
	}
}

func (m *BondDetailModel) toDomain() (*bond.BondDetail, error) {
	return bond.ReconstituteBondDetail(
		m.ID,
		m.FantasyName,
		m.DeadlineCalendarDays,
		m.InitialUnitValue,
		m.BenchmarkPercentualRate,
		m.FixedPercentualRate,
		m.IsAvailable,
		m.IsExemptDebenture,
		m.DaysToGracePeriod,
		m.MarketIndexID,
		m.BondBaseID,
		m.BondEmitterID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
}
