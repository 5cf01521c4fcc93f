package customer

import (
	"time"

	"github.com/fmartins/bond_crm/src/internal/domain/customer"
)

// ===========================
// Response projection
// ===========================

// ExternalRegisterResponse flattens one external-system register.
type ExternalRegisterResponse struct {
	ID         int
	SystemType string
	Status     string
}

// CustomerResponse is the outward projection of the Customer aggregate:
// value objects flattened to primitives, enums rendered as their names.
type CustomerResponse struct {
	ID                int
	APIID             string
	Document          string
	DocumentType      string
	SinacorID         string
	Company           string
	LegacyExternalID  string
	CreatedAt         time.Time
	LastUpdatedAt     *time.Time
	ExternalRegisters []ExternalRegisterResponse
}

// toResponse maps the aggregate to its projection.
func toResponse(c *customer.Customer) CustomerResponse {
	registers := c.ExternalRegisters()
	regResponses := make([]ExternalRegisterResponse, 0, len(registers))
	for _, r := range registers {
		regResponses = append(regResponses, ExternalRegisterResponse{
			ID:         r.ID(),
			SystemType: r.SystemType().String(),
			Status:     r.Status().String(),
		})
	}

	return CustomerResponse{
		ID:                c.ID(),
		APIID:             c.APIID(),
		Document:          c.Document().Value(),
		DocumentType:      c.Document().Type().String(),
		SinacorID:         c.SinacorID(),
		Company:           c.Company().String(),
		LegacyExternalID:  c.LegacyExternalID(),
		CreatedAt:         c.CreatedAt(),
		LastUpdatedAt:     c.LastUpdatedAt(),
		ExternalRegisters: regResponses,
	}
}
