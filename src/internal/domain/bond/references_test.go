package bond_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmartins/bond_crm/src/internal/domain/bond"
)

// Test 1: bond base upper-normalizes the symbol
func TestNewBondBase_ValidData_NormalizesSymbol(t *testing.T) {
	// Act
	base, err := bond.NewBondBase("Letra de Credito Imobiliario", "  lci ", "Real-estate backed")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Letra de Credito Imobiliario", base.Name())
	assert.Equal(t, "LCI", base.Symbol())
}

// Test 2: required and length rules on the bond base
func TestNewBondBase_InvalidData_ReturnsError(t *testing.T) {
	cases := []struct {
		label  string
		name   string
		symbol string
	}{
		{"empty name", "", "LCI"},
		{"name too long", strings.Repeat("a", 101), "LCI"},
		{"empty symbol", "LCI", "   "},
		{"symbol too long", "LCI", "ABCDEFGHIJK"},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			_, err := bond.NewBondBase(tc.name, tc.symbol, "")
			assert.Error(t, err)
		})
	}
}

// Test 3: emitter accepts a well-formed email and a rating on the scale
func TestNewBondEmitter_ValidData_Succeeds(t *testing.T) {
	// Act
	emitter, err := bond.NewBondEmitter("Banco Inter", "ri@bancointer.com.br", "12345678000199", bond.RatingAA)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Banco Inter", emitter.Name())
	assert.True(t, emitter.Document().IsCNPJ())
	assert.Equal(t, "AA", emitter.Rating().String())
}

// Test 4: email is optional but must be well formed when present
func TestNewBondEmitter_MalformedEmail_ReturnsError(t *testing.T) {
	// Act
	_, emptyErr := bond.NewBondEmitter("Banco Inter", "", "12345678000199", bond.RatingA)
	_, badErr := bond.NewBondEmitter("Banco Inter", "not-an-email", "12345678000199", bond.RatingA)

	// Assert
	assert.NoError(t, emptyErr)
	require.Error(t, badErr)
	assert.ErrorIs(t, badErr, bond.ErrInvalidEmail)
}

// Test 5: ratings outside the scale are rejected, including on update
func TestBondEmitter_RatingOutsideScale_ReturnsError(t *testing.T) {
	// Arrange
	_, createErr := bond.NewBondEmitter("Banco Inter", "", "12345678000199", bond.CreditRating(0))

	emitter, err := bond.NewBondEmitter("Banco Inter", "", "12345678000199", bond.RatingBBB)
	require.NoError(t, err)

	// Act
	updateErr := emitter.UpdateRating(bond.CreditRating(10))

	// Assert
	assert.ErrorIs(t, createErr, bond.ErrInvalidRating)
	assert.ErrorIs(t, updateErr, bond.ErrInvalidRating)
	assert.Equal(t, bond.RatingBBB, emitter.Rating())
}

// Test 6: market index carries its reference yearly rate
func TestNewMarketIndex_ValidData_Succeeds(t *testing.T) {
	// Act
	index, err := bond.NewMarketIndex("cdi", "Interbank deposit rate", decimal.NewFromFloat(13.15))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "CDI", index.Symbol())
	assert.Equal(t, "13.15%", index.YearlyPercentualRate().String())
}

// Test 7: the index rate obeys the shared rate bounds
func TestMarketIndex_RateOutOfBounds_ReturnsError(t *testing.T) {
	// Arrange
	index, err := bond.NewMarketIndex("IPCA", "", decimal.NewFromFloat(4.5))
	require.NoError(t, err)

	// Act
	createErr := func() error {
		_, e := bond.NewMarketIndex("IPCA", "", decimal.NewFromInt(-1))
		return e
	}()
	updateErr := index.UpdateYearlyRate(decimal.NewFromInt(1001))

	// Assert
	assert.ErrorIs(t, createErr, bond.ErrRateOutOfRange)
	assert.ErrorIs(t, updateErr, bond.ErrRateOutOfRange)
}
