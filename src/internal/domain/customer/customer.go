package customer

import (
	"strings"
	"time"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// Customer aggregate root
// ===========================

const (
	maxAPIIDLength            = 32
	maxSinacorIDLength        = 9
	maxLegacyExternalIDLength = 9
)

// Customer is the aggregate root for a brokerage customer.
//
// Invariants:
// 1. APIID is required, trimmed, at most 32 characters
// 2. Document is a valid CPF or CNPJ
// 3. Company is a known brand
// 4. SinacorID and LegacyExternalID are optional, at most 9 characters
// 5. The external registers collection holds exactly one register per
//    system type (Cetip and Selic), seeded NotRegistered at construction
//
// The (Document, SinacorID, Company) tuple must be unique across
// customers; that constraint lives in the storage layer, not in-memory.
type Customer struct {
	shared.Entity

	apiID            string
	document         shared.BusinessDocument
	sinacorID        string
	company          Company
	legacyExternalID string

	externalRegisters []*ExternalSystemRegister
}

// NewCustomer validates the inputs and creates a customer together with
// its two external-system registers. The register seeding has no opt-out:
// every new customer holds a Cetip and a Selic register, both
// NotRegistered, immediately after construction.
func NewCustomer(
	apiID string,
	document string,
	company Company,
	sinacorID string,
	legacyExternalID string,
) (*Customer, error) {
	apiID = strings.TrimSpace(apiID)
	if err := validateAPIID(apiID); err != nil {
		return nil, err
	}
	if !company.IsValid() {
		return nil, ErrInvalidCompany.WithContext("company", int(company))
	}
	if err := validateSinacorID(sinacorID); err != nil {
		return nil, err
	}
	if err := validateLegacyExternalID(legacyExternalID); err != nil {
		return nil, err
	}

	doc, err := shared.NewBusinessDocument(document)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &Customer{
		Entity:           shared.NewEntity(now),
		apiID:            apiID,
		document:         doc,
		sinacorID:        sinacorID,
		company:          company,
		legacyExternalID: legacyExternalID,
		externalRegisters: []*ExternalSystemRegister{
			newExternalSystemRegister(Cetip, now),
			newExternalSystemRegister(Selic, now),
		},
	}, nil
}

// ReconstituteCustomer rebuilds a customer from persisted data. Identity
// and audit fields are trusted as stored; the document and field-length
// constraints are re-validated because they are re-derivable invariants.
func ReconstituteCustomer(
	id int,
	apiID string,
	document string,
	company Company,
	sinacorID string,
	legacyExternalID string,
	createdAt time.Time,
	lastUpdatedAt *time.Time,
	externalRegisters []*ExternalSystemRegister,
) (*Customer, error) {
	if err := validateAPIID(apiID); err != nil {
		return nil, err
	}
	if !company.IsValid() {
		return nil, ErrInvalidCompany.WithContext("company", int(company))
	}

	doc, err := shared.NewBusinessDocument(document)
	if err != nil {
		return nil, err
	}

	return &Customer{
		Entity:            shared.ReconstituteEntity(id, createdAt, lastUpdatedAt),
		apiID:             apiID,
		document:          doc,
		sinacorID:         sinacorID,
		company:           company,
		legacyExternalID:  legacyExternalID,
		externalRegisters: externalRegisters,
	}, nil
}

// ===========================
// Mutations
// ===========================

// UpdateAPIID replaces the api id after re-validation.
func (c *Customer) UpdateAPIID(apiID string) error {
	apiID = strings.TrimSpace(apiID)
	if err := validateAPIID(apiID); err != nil {
		return err
	}
	c.apiID = apiID
	c.Touch(time.Now())
	return nil
}

// UpdateDocument replaces the document with a freshly validated one.
func (c *Customer) UpdateDocument(document string) error {
	doc, err := shared.NewBusinessDocument(document)
	if err != nil {
		return err
	}
	c.document = doc
	c.Touch(time.Now())
	return nil
}

// UpdateSinacorID replaces the optional sinacor id.
func (c *Customer) UpdateSinacorID(sinacorID string) error {
	if err := validateSinacorID(sinacorID); err != nil {
		return err
	}
	c.sinacorID = sinacorID
	c.Touch(time.Now())
	return nil
}

// UpdateCompany replaces the owning company.
func (c *Customer) UpdateCompany(company Company) error {
	if !company.IsValid() {
		return ErrInvalidCompany.WithContext("company", int(company))
	}
	c.company = company
	c.Touch(time.Now())
	return nil
}

// UpdateLegacyExternalID replaces the optional legacy external id.
func (c *Customer) UpdateLegacyExternalID(legacyExternalID string) error {
	if err := validateLegacyExternalID(legacyExternalID); err != nil {
		return err
	}
	c.legacyExternalID = legacyExternalID
	c.Touch(time.Now())
	return nil
}

// ===========================
// External system registers
// ===========================

// GetRegisterForSystem returns the register for the given system type,
// nil if the construction invariant was ever violated.
func (c *Customer) GetRegisterForSystem(systemType SystemType) *ExternalSystemRegister {
	for _, r := range c.externalRegisters {
		if r.systemType == systemType {
			return r
		}
	}
	return nil
}

// GetCetipRegister returns the Cetip register.
func (c *Customer) GetCetipRegister() *ExternalSystemRegister {
	return c.GetRegisterForSystem(Cetip)
}

// GetSelicRegister returns the Selic register.
func (c *Customer) GetSelicRegister() *ExternalSystemRegister {
	return c.GetRegisterForSystem(Selic)
}

// IsRegisteredIn reports whether the customer is active in the system.
func (c *Customer) IsRegisteredIn(systemType SystemType) bool {
	r := c.GetRegisterForSystem(systemType)
	return r != nil && r.IsRegistered()
}

// MarkAsRegisteredIn transitions the register for the system to
// Registered. Repeating the transition succeeds silently. Fails only if
// no register exists for the system type.
func (c *Customer) MarkAsRegisteredIn(systemType SystemType) error {
	r := c.GetRegisterForSystem(systemType)
	if r == nil {
		return ErrRegisterNotFound.WithContext("system_type", systemType.String())
	}
	now := time.Now()
	r.markRegistered(now)
	c.Touch(now)
	return nil
}

// MarkAsInactiveIn transitions the register for the system to Inactive,
// with the same permissive repeat behavior as MarkAsRegisteredIn.
func (c *Customer) MarkAsInactiveIn(systemType SystemType) error {
	r := c.GetRegisterForSystem(systemType)
	if r == nil {
		return ErrRegisterNotFound.WithContext("system_type", systemType.String())
	}
	now := time.Now()
	r.markInactive(now)
	c.Touch(now)
	return nil
}

// AssignID sets the surrogate key after an insert and binds the owned
// registers back to it. Reserved for the persistence layer.
func (c *Customer) AssignID(id int) {
	c.Entity.AssignID(id)
	for _, r := range c.externalRegisters {
		r.bindToCustomer(id)
	}
}

// ===========================
// Getters
// ===========================

// APIID returns the external api identifier.
func (c *Customer) APIID() string {
	return c.apiID
}

// Document returns the CPF/CNPJ document.
func (c *Customer) Document() shared.BusinessDocument {
	return c.document
}

// SinacorID returns the optional Sinacor account id.
func (c *Customer) SinacorID() string {
	return c.sinacorID
}

// Company returns the owning company.
func (c *Customer) Company() Company {
	return c.company
}

// LegacyExternalID returns the optional legacy identifier.
func (c *Customer) LegacyExternalID() string {
	return c.legacyExternalID
}

// ExternalRegisters returns the owned registers. The slice is a copy; the
// registers themselves are the aggregate's and mutate only through it.
func (c *Customer) ExternalRegisters() []*ExternalSystemRegister {
	out := make([]*ExternalSystemRegister, len(c.externalRegisters))
	copy(out, c.externalRegisters)
	return out
}

// ===========================
// Validation helpers
// ===========================

func validateAPIID(apiID string) error {
	if apiID == "" {
		return ErrAPIIDRequired
	}
	if len(apiID) > maxAPIIDLength {
		return ErrAPIIDTooLong.WithContext("api_id", apiID, "length", len(apiID))
	}
	return nil
}

func validateSinacorID(sinacorID string) error {
	if len(sinacorID) > maxSinacorIDLength {
		return ErrSinacorIDTooLong.WithContext("sinacor_id", sinacorID, "length", len(sinacorID))
	}
	return nil
}

func validateLegacyExternalID(legacyExternalID string) error {
	if len(legacyExternalID) > maxLegacyExternalIDLength {
		return ErrLegacyExternalIDTooLong.WithContext(
			"legacy_external_id", legacyExternalID,
			"length", len(legacyExternalID),
		)
	}
	return nil
}
