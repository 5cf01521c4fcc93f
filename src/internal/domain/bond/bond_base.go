package bond

import (
	"strings"
	"time"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// BondBase reference entity
// ===========================

const (
	maxReferenceNameLength   = 100
	maxReferenceSymbolLength = 10
)

// BondBase is the lookup entity naming a bond family (LCI, LCA, CDB...).
// Referential integrity towards bond details is the repository's concern.
type BondBase struct {
	shared.Entity

	name        string
	symbol      string
	description string
}

// NewBondBase validates the name and the upper-normalized symbol.
func NewBondBase(name, symbol, description string) (*BondBase, error) {
	name = strings.TrimSpace(name)
	if err := validateReferenceName(name); err != nil {
		return nil, err
	}
	sym, err := normalizeReferenceSymbol(symbol)
	if err != nil {
		return nil, err
	}

	return &BondBase{
		Entity:      shared.NewEntity(time.Now()),
		name:        name,
		symbol:      sym,
		description: description,
	}, nil
}

// ReconstituteBondBase rebuilds a bond base from persisted data.
func ReconstituteBondBase(
	id int,
	name, symbol, description string,
	createdAt time.Time,
	lastUpdatedAt *time.Time,
) (*BondBase, error) {
	base, err := NewBondBase(name, symbol, description)
	if err != nil {
		return nil, err
	}
	base.Entity = shared.ReconstituteEntity(id, createdAt, lastUpdatedAt)
	return base, nil
}

// UpdateName replaces the display name.
func (b *BondBase) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if err := validateReferenceName(name); err != nil {
		return err
	}
	b.name = name
	b.Touch(time.Now())
	return nil
}

// Name returns the display name.
func (b *BondBase) Name() string {
	return b.name
}

// Symbol returns the upper-normalized symbol.
func (b *BondBase) Symbol() string {
	return b.symbol
}

// Description returns the optional description.
func (b *BondBase) Description() string {
	return b.description
}

func validateReferenceName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > maxReferenceNameLength {
		return ErrNameTooLong.WithContext("name", name, "length", len(name))
	}
	return nil
}

func normalizeReferenceSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", ErrIndexSymbolRequired
	}
	if len(symbol) > maxReferenceSymbolLength {
		return "", ErrIndexSymbolTooLong.WithContext("symbol", symbol, "length", len(symbol))
	}
	return symbol, nil
}
