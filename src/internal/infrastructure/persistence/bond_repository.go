package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fmartins/bond_crm/src/internal/domain/bond"
)

// ===========================
// BondRepositoryImpl
// ===========================

// BondRepositoryImpl implements bond.BondRepository on GORM.
type BondRepositoryImpl struct {
	db *gorm.DB
}

// NewBondRepository wires the repository to a database handle.
func NewBondRepository(db *gorm.DB) bond.BondRepository {
	return &BondRepositoryImpl{db: db}
}

// Add inserts the bond and assigns the generated id back. An isin
// unique-constraint violation comes back as ErrBondAlreadyExists.
func (r *BondRepositoryImpl) Add(ctx context.Context, b *bond.Bond) error {
	db := dbFromContext(ctx, r.db)

	model := toBondModel(b)
	if err := db.Create(model).Error; err != nil {
		if isUniqueConstraintError(err) {
			return bond.ErrBondAlreadyExists.WithContext("isin", b.Isin().Value())
		}
		return err
	}
	b.AssignID(model.ID)
	return nil
}

// Update persists mutations of an already-persisted bond.
func (r *BondRepositoryImpl) Update(ctx context.Context, b *bond.Bond) error {
	db := dbFromContext(ctx, r.db)

	if err := db.Save(toBondModel(b)).Error; err != nil {
		if isUniqueConstraintError(err) {
			return bond.ErrBondAlreadyExists.WithContext("isin", b.Isin().Value())
		}
		return err
	}
	return nil
}

// FindByID loads a bond by surrogate key.
func (r *BondRepositoryImpl) FindByID(ctx context.Context, id int) (*bond.Bond, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByAPIID loads a bond by its external guid.
func (r *BondRepositoryImpl) FindByAPIID(ctx context.Context, apiID uuid.UUID) (*bond.Bond, error) {
	return r.findOne(ctx, "api_id = ?", apiID.String())
}

func (r *BondRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*bond.Bond, error) {
	db := dbFromContext(ctx, r.db)

	var model BondModel
	err := db.Where(query, arg).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bond.ErrBondNotFound
		}
		return nil, err
	}
	return model.toDomain()
}

// ExistsByIsin probes isin uniqueness with a COUNT.
func (r *BondRepositoryImpl) ExistsByIsin(ctx context.Context, isin bond.Isin) (bool, error) {
	db := dbFromContext(ctx, r.db)

	var count int64
	err := db.Model(&BondModel{}).Where("isin = ?", isin.Value()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ===========================
// BondDetailRepositoryImpl
// ===========================

// BondDetailRepositoryImpl implements bond.BondDetailRepository on GORM.
type BondDetailRepositoryImpl struct {
	db *gorm.DB
}

// NewBondDetailRepository wires the repository to a database handle.
func NewBondDetailRepository(db *gorm.DB) bond.BondDetailRepository {
	return &BondDetailRepositoryImpl{db: db}
}

// Add inserts the detail and assigns the generated id back.
func (r *BondDetailRepositoryImpl) Add(ctx context.Context, d *bond.BondDetail) error {
	db := dbFromContext(ctx, r.db)

	model := toBondDetailModel(d)
	if err := db.Create(model).Error; err != nil {
		return err
	}
	d.AssignID(model.ID)
	return nil
}

// Update persists mutations of an already-persisted detail.
func (r *BondDetailRepositoryImpl) Update(ctx context.Context, d *bond.BondDetail) error {
	db := dbFromContext(ctx, r.db)
	return db.Save(toBondDetailModel(d)).Error
}

// FindByID loads a detail by surrogate key.
func (r *BondDetailRepositoryImpl) FindByID(ctx context.Context, id int) (*bond.BondDetail, error) {
	db := dbFromContext(ctx, r.db)

	var model BondDetailModel
	err := db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bond.ErrBondDetailNotFound
		}
		return nil, err
	}
	return model.toDomain()
}
