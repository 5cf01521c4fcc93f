package bond

import (
	"regexp"
	"strings"
	"time"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// BondEmitter reference entity
// ===========================

// CreditRating is the issuer rating scale used for display and risk
// grouping.
type CreditRating int

const (
	RatingAAA CreditRating = 1
	RatingAA  CreditRating = 2
	RatingA   CreditRating = 3
	RatingBBB CreditRating = 4
	RatingBB  CreditRating = 5
	RatingB   CreditRating = 6
	RatingCCC CreditRating = 7
	RatingCC  CreditRating = 8
	RatingC   CreditRating = 9
)

// IsValid reports whether the value is part of the scale.
func (r CreditRating) IsValid() bool {
	return r >= RatingAAA && r <= RatingC
}

// String returns the name used by response projections.
func (r CreditRating) String() string {
	switch r {
	case RatingAAA:
		return "AAA"
	case RatingAA:
		return "AA"
	case RatingA:
		return "A"
	case RatingBBB:
		return "BBB"
	case RatingBB:
		return "BB"
	case RatingB:
		return "B"
	case RatingCCC:
		return "CCC"
	case RatingCC:
		return "CC"
	case RatingC:
		return "C"
	default:
		return "Unknown"
	}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// BondEmitter is the lookup entity for the institution issuing bonds.
// Its document reuses the shared CPF/CNPJ value object; emitters are
// virtually always CNPJ but the document rules do not require it.
type BondEmitter struct {
	shared.Entity

	name     string
	email    string
	document shared.BusinessDocument
	rating   CreditRating
}

// NewBondEmitter validates the name, the optional email format, the
// document and the rating.
func NewBondEmitter(name, email, document string, rating CreditRating) (*BondEmitter, error) {
	name = strings.TrimSpace(name)
	if err := validateReferenceName(name); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if email != "" && !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail.WithContext("email", email)
	}
	if !rating.IsValid() {
		return nil, ErrInvalidRating.WithContext("rating", int(rating))
	}

	doc, err := shared.NewBusinessDocument(document)
	if err != nil {
		return nil, err
	}

	return &BondEmitter{
		Entity:   shared.NewEntity(time.Now()),
		name:     name,
		email:    email,
		document: doc,
		rating:   rating,
	}, nil
}

// ReconstituteBondEmitter rebuilds an emitter from persisted data.
func ReconstituteBondEmitter(
	id int,
	name, email, document string,
	rating CreditRating,
	createdAt time.Time,
	lastUpdatedAt *time.Time,
) (*BondEmitter, error) {
	emitter, err := NewBondEmitter(name, email, document, rating)
	if err != nil {
		return nil, err
	}
	emitter.Entity = shared.ReconstituteEntity(id, createdAt, lastUpdatedAt)
	return emitter, nil
}

// UpdateRating replaces the credit rating.
func (e *BondEmitter) UpdateRating(rating CreditRating) error {
	if !rating.IsValid() {
		return ErrInvalidRating.WithContext("rating", int(rating))
	}
	e.rating = rating
	e.Touch(time.Now())
	return nil
}

// Name returns the institution name.
func (e *BondEmitter) Name() string {
	return e.name
}

// Email returns the optional contact email.
func (e *BondEmitter) Email() string {
	return e.email
}

// Document returns the CPF/CNPJ document.
func (e *BondEmitter) Document() shared.BusinessDocument {
	return e.document
}

// Rating returns the credit rating.
func (e *BondEmitter) Rating() CreditRating {
	return e.rating
}
