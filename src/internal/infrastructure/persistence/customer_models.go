package persistence

import (
	"time"

	"github.com/fmartins/bond_crm/src/internal/domain/customer"
)

// ===========================
// Customer models
// ===========================

// CustomerModel is the customers table. The composite unique index on
// (document, sinacor_id, company) is the storage-level backstop for the
// uniqueness the create handler probes for.
type CustomerModel struct {
	ID               int        `gorm:"column:id;primaryKey;autoIncrement"`
	APIID            string     `gorm:"column:api_id;type:varchar(32);not null;index"`
	Document         string     `gorm:"column:document;type:varchar(14);not null;uniqueIndex:idx_customers_uniqueness"`
	SinacorID        string     `gorm:"column:sinacor_id;type:varchar(9);uniqueIndex:idx_customers_uniqueness"`
	Company          int        `gorm:"column:company;not null;uniqueIndex:idx_customers_uniqueness"`
	LegacyExternalID string     `gorm:"column:legacy_external_id;type:varchar(9)"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null"`
	LastUpdatedAt    *time.Time `gorm:"column:last_updated_at"`

	ExternalRegisters []ExternalRegisterModel `gorm:"foreignKey:CustomerID"`
}

// TableName fixes the table name.
func (CustomerModel) TableName() string {
	return "customers"
}

// ExternalRegisterModel is the customer_external_system_registers table.
type ExternalRegisterModel struct {
	ID            int        `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID    int        `gorm:"column:customer_id;not null;index"`
	SystemType    int        `gorm:"column:system_type;not null"`
	Status        int        `gorm:"column:status;not null"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null"`
	LastUpdatedAt *time.Time `gorm:"column:last_updated_at"`
}

// TableName fixes the table name.
func (ExternalRegisterModel) TableName() string {
	return "customer_external_system_registers"
}

// ===========================
// Mappers
// ===========================

func toCustomerModel(c *customer.Customer) *CustomerModel {
	registers := c.ExternalRegisters()
	regModels := make([]ExternalRegisterModel, 0, len(registers))
	for _, r := range registers {
		regModels = append(regModels, ExternalRegisterModel{
			ID:            r.ID(),
			CustomerID:    r.CustomerID(),
			SystemType:    int(r.SystemType()),
			Status:        int(r.Status()),
			CreatedAt:     r.CreatedAt(),
			LastUpdatedAt: r.LastUpdatedAt(),
		})
	}

	return &CustomerModel{
		ID:                c.ID(),
		APIID:             c.APIID(),
		Document:          c.Document().Value(),
		SinacorID:         c.SinacorID(),
		Company:           int(c.Company()),
		LegacyExternalID:  c.LegacyExternalID(),
		CreatedAt:         c.CreatedAt(),
		LastUpdatedAt:     c.LastUpdatedAt(),
		ExternalRegisters: regModels,
	}
}

func (m *CustomerModel) toDomain() (*customer.Customer, error) {
	registers := make([]*customer.ExternalSystemRegister, 0, len(m.ExternalRegisters))
	for _, r := range m.ExternalRegisters {
		registers = append(registers, customer.ReconstituteExternalSystemRegister(
			r.ID,
			r.CustomerID,
			customer.SystemType(r.SystemType),
			customer.RegisterStatus(r.Status),
			r.CreatedAt,
			r.LastUpdatedAt,
		))
	}

	return customer.ReconstituteCustomer(
		m.ID,
		m.APIID,
		m.Document,
		customer.Company(m.Company),
		m.SinacorID,
		m.LegacyExternalID,
		m.CreatedAt,
		m.LastUpdatedAt,
		registers,
	)
}
