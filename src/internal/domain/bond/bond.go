package bond

import (
	"time"

	"github.com/google/uuid"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// Bond aggregate root
// ===========================

// Bond is the aggregate root for a fixed-income security.
//
// Invariants:
// 1. Symbol is non-empty, at most 50 characters
// 2. Isin is a valid 12-character ISIN, upper-normalized
// 3. Expiration is strictly after issuance, enforced once at creation
//    (and on every ExtendExpiration), never re-checked on reads
// 4. ApiID is never the nil guid
// 5. BondDetailID is either 0 (unlinked) or positive
type Bond struct {
	shared.Entity

	symbol          BondSymbol
	isin            Isin
	period          DateRange
	bondDetailID    int
	isCetipVerified bool
	apiID           uuid.UUID
}

// NewBond validates the symbol and ISIN, then the date ordering, and
// creates an unpersisted bond. The value objects are checked before any
// date rule runs. A zero apiID means "absent" and a fresh guid is
// generated; an explicit one is kept as given.
func NewBond(
	symbol string,
	isin string,
	issuanceAt time.Time,
	expirationAt time.Time,
	apiID uuid.UUID,
) (*Bond, error) {
	sym, err := NewBondSymbol(symbol)
	if err != nil {
		return nil, err
	}
	isinVO, err := NewIsin(isin)
	if err != nil {
		return nil, err
	}

	issuance := truncateToDay(issuanceAt)
	expiration := truncateToDay(expirationAt)
	if !expiration.After(issuance) {
		return nil, ErrExpirationNotAfterIssuance.WithContext(
			"issuance_at", issuance.Format(time.DateOnly),
			"expiration_at", expiration.Format(time.DateOnly),
		)
	}
	period, err := NewDateRange(issuance, expiration)
	if err != nil {
		return nil, err
	}

	if apiID == uuid.Nil {
		apiID = uuid.New()
	}

	return &Bond{
		Entity: shared.NewEntity(time.Now()),
		symbol: sym,
		isin:   isinVO,
		period: period,
		apiID:  apiID,
	}, nil
}

// ReconstituteBond rebuilds a bond from persisted data. Identity and
// audit fields are trusted as stored; the value objects are re-validated
// because they are re-derivable invariants.
func ReconstituteBond(
	id int,
	symbol string,
	isin string,
	issuanceAt time.Time,
	expirationAt time.Time,
	bondDetailID int,
	isCetipVerified bool,
	apiID uuid.UUID,
	createdAt time.Time,
	lastUpdatedAt *time.Time,
) (*Bond, error) {
	sym, err := NewBondSymbol(symbol)
	if err != nil {
		return nil, err
	}
	isinVO, err := NewIsin(isin)
	if err != nil {
		return nil, err
	}
	period, err := NewDateRange(issuanceAt, expirationAt)
	if err != nil {
		return nil, err
	}
	if apiID == uuid.Nil {
		return nil, ErrNilAPIID
	}

	return &Bond{
		Entity:          shared.ReconstituteEntity(id, createdAt, lastUpdatedAt),
		symbol:          sym,
		isin:            isinVO,
		period:          period,
		bondDetailID:    bondDetailID,
		isCetipVerified: isCetipVerified,
		apiID:           apiID,
	}, nil
}

// ===========================
// Mutations
// ===========================

// UpdateCetipVerification records the outcome of a Cetip verification.
func (b *Bond) UpdateCetipVerification(verified bool) {
	b.isCetipVerified = verified
	b.Touch(time.Now())
}

// UpdateAPIID replaces the api id, rejecting the nil guid.
func (b *Bond) UpdateAPIID(apiID uuid.UUID) error {
	if apiID == uuid.Nil {
		return ErrNilAPIID
	}
	b.apiID = apiID
	b.Touch(time.Now())
	return nil
}

// LinkToBondDetail attaches the bond to its pricing detail.
func (b *Bond) LinkToBondDetail(bondDetailID int) error {
	if bondDetailID <= 0 {
		return ErrInvalidBondDetailID.WithContext("bond_detail_id", bondDetailID)
	}
	b.bondDetailID = bondDetailID
	b.Touch(time.Now())
	return nil
}

// UnlinkFromBondDetail detaches the bond from its pricing detail.
func (b *Bond) UnlinkFromBondDetail() {
	b.bondDetailID = 0
	b.Touch(time.Now())
}

// ExtendExpiration moves the expiration forward. The new date is checked
// against the current expiration first and the issuance date second, so a
// date before both reports the current-expiration failure.
func (b *Bond) ExtendExpiration(newExpirationAt time.Time) error {
	newExpiration := truncateToDay(newExpirationAt)
	if !newExpiration.After(b.period.End()) {
		return ErrExpirationNotAfterCurrent.WithContext(
			"current_expiration_at", b.period.End().Format(time.DateOnly),
			"new_expiration_at", newExpiration.Format(time.DateOnly),
		)
	}
	if !newExpiration.After(b.period.Start()) {
		return ErrExpirationNotAfterIssuance.WithContext(
			"issuance_at", b.period.Start().Format(time.DateOnly),
			"new_expiration_at", newExpiration.Format(time.DateOnly),
		)
	}

	period, err := NewDateRange(b.period.Start(), newExpiration)
	if err != nil {
		return err
	}
	b.period = period
	b.Touch(time.Now())
	return nil
}

// UpdateSymbol replaces the trading symbol.
func (b *Bond) UpdateSymbol(symbol string) error {
	sym, err := NewBondSymbol(symbol)
	if err != nil {
		return err
	}
	b.symbol = sym
	b.Touch(time.Now())
	return nil
}

// UpdateIsin replaces the ISIN.
func (b *Bond) UpdateIsin(isin string) error {
	isinVO, err := NewIsin(isin)
	if err != nil {
		return err
	}
	b.isin = isinVO
	b.Touch(time.Now())
	return nil
}

// ===========================
// Guards
// ===========================

// EnsureNotExpired fails with ErrBondExpired when the bond is past its
// expiration date. Side-effect free.
func (b *Bond) EnsureNotExpired() error {
	if b.HasExpired() {
		return ErrBondExpired.WithContext("isin", b.isin.Value())
	}
	return nil
}

// EnsureIsActive fails with ErrBondNotActive when today is outside the
// issuance/expiration window. Side-effect free.
func (b *Bond) EnsureIsActive() error {
	if !b.IsActive() {
		return ErrBondNotActive.WithContext("isin", b.isin.Value())
	}
	return nil
}

// EnsureCetipVerified fails with ErrBondNotCetipVerified when the bond is
// pending verification. Side-effect free.
func (b *Bond) EnsureCetipVerified() error {
	if !b.isCetipVerified {
		return ErrBondNotCetipVerified.WithContext("isin", b.isin.Value())
	}
	return nil
}

// ===========================
// Derived state
// ===========================

// HasExpired reports whether the expiration date is before today.
func (b *Bond) HasExpired() bool {
	return b.period.EndedBefore(time.Now())
}

// IsActive reports whether issuance <= today < expiration.
func (b *Bond) IsActive() bool {
	return b.period.Contains(time.Now())
}

// RemainingDays returns the days left until expiration, never negative.
func (b *Bond) RemainingDays() int {
	days := int(b.period.End().Sub(truncateToDay(time.Now())).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// DurationInCalendarDays returns the full issuance-to-expiration length.
func (b *Bond) DurationInCalendarDays() int {
	return b.period.Days()
}

// DurationInYears returns the duration in 360-day banking years.
func (b *Bond) DurationInYears() float64 {
	return b.period.Years360()
}

// ===========================
// Getters
// ===========================

// Symbol returns the trading symbol.
func (b *Bond) Symbol() BondSymbol {
	return b.symbol
}

// Isin returns the ISIN.
func (b *Bond) Isin() Isin {
	return b.isin
}

// IssuanceAt returns the issuance date.
func (b *Bond) IssuanceAt() time.Time {
	return b.period.Start()
}

// ExpirationAt returns the expiration date.
func (b *Bond) ExpirationAt() time.Time {
	return b.period.End()
}

// BondDetailID returns the linked detail id, 0 when unlinked.
func (b *Bond) BondDetailID() int {
	return b.bondDetailID
}

// IsCetipVerified reports the verification flag.
func (b *Bond) IsCetipVerified() bool {
	return b.isCetipVerified
}

// APIID returns the external guid.
func (b *Bond) APIID() uuid.UUID {
	return b.apiID
}
