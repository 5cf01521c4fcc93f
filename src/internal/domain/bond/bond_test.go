package bond_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmartins/bond_crm/src/internal/domain/bond"
)

func day(offsetDays int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, offsetDays)
}

func newValidBond(t *testing.T) *bond.Bond {
	t.Helper()
	b, err := bond.NewBond("CDB-2030", "BRSTNE8F91Q0", day(-30), day(330), uuid.Nil)
	require.NoError(t, err)
	return b
}

// Test 1: creation validates symbol and ISIN before any date rule
func TestNewBond_InvalidIsin_FailsBeforeDateCheck(t *testing.T) {
	// Act: dates are also invalid, but the ISIN failure must win
	_, err := bond.NewBond("CDB-2030", "INVALID", day(10), day(10), uuid.Nil)

	// Assert
	assert.ErrorIs(t, err, bond.ErrInvalidIsin)
}

// Test 2: expiration must be strictly after issuance
func TestNewBond_ExpirationOrdering(t *testing.T) {
	// same day fails
	_, err := bond.NewBond("CDB", "BRSTNE8F91Q0", day(0), day(0), uuid.Nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, bond.ErrExpirationNotAfterIssuance)
	assert.Contains(t, err.Error(), "after issuance date")

	// before issuance fails
	_, err = bond.NewBond("CDB", "BRSTNE8F91Q0", day(0), day(-1), uuid.Nil)
	assert.ErrorIs(t, err, bond.ErrExpirationNotAfterIssuance)

	// one day later succeeds
	b, err := bond.NewBond("CDB", "BRSTNE8F91Q0", day(0), day(1), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 1, b.DurationInCalendarDays())
}

// Test 3: an absent api id is generated, never nil
func TestNewBond_GeneratesAPIID(t *testing.T) {
	b := newValidBond(t)

	assert.NotEqual(t, uuid.Nil, b.APIID())
}

// Test 4: an explicit api id is kept
func TestNewBond_KeepsExplicitAPIID(t *testing.T) {
	id := uuid.New()

	b, err := bond.NewBond("CDB", "BRSTNE8F91Q0", day(0), day(100), id)

	require.NoError(t, err)
	assert.Equal(t, id, b.APIID())
}

// Test 5: UpdateAPIID rejects the nil guid
func TestBond_UpdateAPIID_RejectsNil(t *testing.T) {
	b := newValidBond(t)
	original := b.APIID()

	err := b.UpdateAPIID(uuid.Nil)

	assert.ErrorIs(t, err, bond.ErrNilAPIID)
	assert.Equal(t, original, b.APIID())
	assert.Nil(t, b.LastUpdatedAt())
}

// Test 6: detail linking validates the id and can be undone
func TestBond_LinkToBondDetail(t *testing.T) {
	b := newValidBond(t)

	assert.ErrorIs(t, b.LinkToBondDetail(0), bond.ErrInvalidBondDetailID)
	assert.ErrorIs(t, b.LinkToBondDetail(-5), bond.ErrInvalidBondDetailID)

	require.NoError(t, b.LinkToBondDetail(42))
	assert.Equal(t, 42, b.BondDetailID())

	b.UnlinkFromBondDetail()
	assert.Equal(t, 0, b.BondDetailID())
}

// Test 7: ExtendExpiration checks the current expiration before issuance,
// so a date before both reports the current-expiration failure
func TestBond_ExtendExpiration_CheckOrder(t *testing.T) {
	// Arrange
	b := newValidBond(t) // issuance -30d, expiration +330d

	// a date before issuance (and before current expiration) reports the
	// current-expiration failure, not an issuance one
	err := b.ExtendExpiration(day(-60))
	require.Error(t, err)
	assert.ErrorIs(t, err, bond.ErrExpirationNotAfterCurrent)
	assert.Contains(t, err.Error(), "after current expiration")

	// equal to current expiration also fails
	assert.ErrorIs(t, b.ExtendExpiration(day(330)), bond.ErrExpirationNotAfterCurrent)

	// strictly after succeeds and stamps the audit field
	require.NoError(t, b.ExtendExpiration(day(400)))
	assert.Equal(t, day(400), b.ExpirationAt())
	assert.NotNil(t, b.LastUpdatedAt())
}

// Test 8: guard operations are side-effect-free checks
func TestBond_Guards(t *testing.T) {
	// active, unverified bond
	active := newValidBond(t)
	assert.NoError(t, active.EnsureIsActive())
	assert.NoError(t, active.EnsureNotExpired())
	assert.ErrorIs(t, active.EnsureCetipVerified(), bond.ErrBondNotCetipVerified)

	active.UpdateCetipVerification(true)
	assert.NoError(t, active.EnsureCetipVerified())

	// not yet issued
	future, err := bond.NewBond("CDB", "BRSTNE8F91Q0", day(10), day(100), uuid.Nil)
	require.NoError(t, err)
	assert.ErrorIs(t, future.EnsureIsActive(), bond.ErrBondNotActive)
	assert.NoError(t, future.EnsureNotExpired())

	// expired, via reconstitution of past dates
	expired, err := bond.ReconstituteBond(
		3, "CDB", "BRSTNE8F91Q0", day(-200), day(-10),
		0, true, uuid.New(), day(-200), nil,
	)
	require.NoError(t, err)
	assert.ErrorIs(t, expired.EnsureNotExpired(), bond.ErrBondExpired)
	assert.ErrorIs(t, expired.EnsureIsActive(), bond.ErrBondNotActive)
	assert.True(t, expired.HasExpired())
	assert.Equal(t, 0, expired.RemainingDays())
}

// Test 9: derived durations use the 360-day banking year
func TestBond_Durations(t *testing.T) {
	b, err := bond.NewBond("CDB", "BRSTNE8F91Q0", day(0), day(720), uuid.Nil)
	require.NoError(t, err)

	assert.Equal(t, 720, b.DurationInCalendarDays())
	assert.InDelta(t, 2.0, b.DurationInYears(), 1e-9)
	assert.Equal(t, 720, b.RemainingDays())
	assert.True(t, b.IsActive())
	assert.False(t, b.HasExpired())
}

// Test 10: reconstitution returns every field as passed in
func TestReconstituteBond_RoundTripsAllFields(t *testing.T) {
	// Arrange
	apiID := uuid.New()
	createdAt := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	updatedAt := createdAt.AddDate(0, 1, 0)

	// Act
	b, err := bond.ReconstituteBond(
		9, "LCI-SAFRA", "BRSAFRLCI0A4",
		day(-100), day(260), 4, true, apiID, createdAt, &updatedAt,
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9, b.ID())
	assert.True(t, b.ExistsInDatabase())
	assert.Equal(t, "LCI-SAFRA", b.Symbol().Value())
	assert.Equal(t, "BRSAFRLCI0A4", b.Isin().Value())
	assert.Equal(t, 4, b.BondDetailID())
	assert.True(t, b.IsCetipVerified())
	assert.Equal(t, apiID, b.APIID())
	assert.Equal(t, createdAt, b.CreatedAt())
	require.NotNil(t, b.LastUpdatedAt())
	assert.Equal(t, updatedAt, *b.LastUpdatedAt())
}

// Test 11: reconstitution rejects the nil guid and invalid value objects
func TestReconstituteBond_StillValidates(t *testing.T) {
	_, err := bond.ReconstituteBond(
		9, "LCI", "BRSAFRLCI0A4", day(-100), day(260),
		0, false, uuid.Nil, time.Now(), nil,
	)
	assert.ErrorIs(t, err, bond.ErrNilAPIID)

	_, err = bond.ReconstituteBond(
		9, "LCI", "bad", day(-100), day(260),
		0, false, uuid.New(), time.Now(), nil,
	)
	assert.ErrorIs(t, err, bond.ErrInvalidIsin)
}

// Test 12: symbol and isin updates re-validate and stamp the audit field
func TestBond_UpdateSymbolAndIsin(t *testing.T) {
	b := newValidBond(t)

	assert.Error(t, b.UpdateSymbol("  "))
	assert.Error(t, b.UpdateIsin("nope"))
	assert.Nil(t, b.LastUpdatedAt())

	require.NoError(t, b.UpdateSymbol("CDB-NEW"))
	require.NoError(t, b.UpdateIsin("brcdbnew0001"))
	assert.Equal(t, "CDB-NEW", b.Symbol().Value())
	assert.Equal(t, "BRCDBNEW0001", b.Isin().Value())
	assert.NotNil(t, b.LastUpdatedAt())
}
