package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/fmartins/bond_crm/src/internal/domain/customer"
	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// CustomerRepositoryImpl
// ===========================

// CustomerRepositoryImpl implements customer.CustomerRepository on GORM.
// It owns the domain/model mapping and translates storage errors into
// domain errors.
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository wires the repository to a database handle.
func NewCustomerRepository(db *gorm.DB) customer.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Add inserts the customer with its registers and assigns the generated
// ids back to the aggregate. A unique-constraint violation on the
// (document, sinacor_id, company) tuple comes back as
// ErrCustomerAlreadyExists, so a race lost after the exists probe still
// reports a conflict.
func (r *CustomerRepositoryImpl) Add(ctx context.Context, c *customer.Customer) error {
	db := dbFromContext(ctx, r.db)

	model := toCustomerModel(c)
	if err := db.Create(model).Error; err != nil {
		if isUniqueConstraintError(err) {
			return customer.ErrCustomerAlreadyExists.WithContext(
				"document", c.Document().Value(),
				"sinacor_id", c.SinacorID(),
				"company", c.Company().String(),
			)
		}
		return err
	}

	c.AssignID(model.ID)
	registers := c.ExternalRegisters()
	for i, regModel := range model.ExternalRegisters {
		registers[i].AssignID(regModel.ID)
	}
	return nil
}

// Update persists mutations of an already-persisted customer and its
// registers.
func (r *CustomerRepositoryImpl) Update(ctx context.Context, c *customer.Customer) error {
	db := dbFromContext(ctx, r.db)

	model := toCustomerModel(c)
	err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error
	if err != nil {
		if isUniqueConstraintError(err) {
			return customer.ErrCustomerAlreadyExists.WithContext(
				"document", c.Document().Value(),
				"sinacor_id", c.SinacorID(),
				"company", c.Company().String(),
			)
		}
		return err
	}
	return nil
}

// FindByID loads a customer with its registers.
func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id int) (*customer.Customer, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByAPIID loads a customer by its external api identifier.
func (r *CustomerRepositoryImpl) FindByAPIID(ctx context.Context, apiID string) (*customer.Customer, error) {
	return r.findOne(ctx, "api_id = ?", apiID)
}

func (r *CustomerRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*customer.Customer, error) {
	db := dbFromContext(ctx, r.db)

	var model CustomerModel
	err := db.Preload("ExternalRegisters").Where(query, arg).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	return model.toDomain()
}

// ExistsBy probes the uniqueness tuple with a COUNT, never loading the
// aggregate.
func (r *CustomerRepositoryImpl) ExistsBy(
	ctx context.Context,
	document shared.BusinessDocument,
	sinacorID string,
	company customer.Company,
) (bool, error) {
	db := dbFromContext(ctx, r.db)

	var count int64
	err := db.Model(&CustomerModel{}).
		Where("document = ? AND sinacor_id = ? AND company = ?", document.Value(), sinacorID, int(company)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// isUniqueConstraintError recognizes unique-index violations across gorm
// dialects; the sqlite driver reports them as plain errors with a
// "UNIQUE constraint failed" text.
func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
