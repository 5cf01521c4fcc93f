package bond

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fmartins/bond_crm/src/internal/application/result"
	"github.com/fmartins/bond_crm/src/internal/domain/bond"
	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// CreateBond
// ===========================

// CreateBondCommand is the input DTO. APIID is an optional GUID string; a
// fresh one is generated when it is empty.
type CreateBondCommand struct {
	Symbol       string
	Isin         string
	IssuanceAt   time.Time
	ExpirationAt time.Time
	APIID        string
}

// CreateBondHandler creates a bond after probing ISIN uniqueness.
type CreateBondHandler struct {
	bondRepo  bond.BondRepository
	txManager shared.TransactionManager
}

// NewCreateBondHandler wires the handler's collaborators.
func NewCreateBondHandler(bondRepo bond.BondRepository, txManager shared.TransactionManager) *CreateBondHandler {
	return &CreateBondHandler{bondRepo: bondRepo, txManager: txManager}
}

// Handle validates, checks ISIN uniqueness, persists and projects.
func (h *CreateBondHandler) Handle(ctx context.Context, cmd CreateBondCommand) result.Result[BondResponse] {
	apiID := uuid.Nil
	if cmd.APIID != "" {
		parsed, err := uuid.Parse(cmd.APIID)
		if err != nil || parsed == uuid.Nil {
			return result.Fail[BondResponse](result.NewError(
				CodeValidationFailed,
				"api id must be a valid non-nil guid",
			))
		}
		apiID = parsed
	}

	isin, err := bond.NewIsin(cmd.Isin)
	if err != nil {
		return result.Fail[BondResponse](toFailure(err))
	}

	var created *bond.Bond

	err = h.txManager.InTransaction(ctx, func(ctx context.Context) error {
		exists, txErr := h.bondRepo.ExistsByIsin(ctx, isin)
		if txErr != nil {
			return txErr
		}
		if exists {
			return bond.ErrBondAlreadyExists.WithContext("isin", isin.Value())
		}

		created, txErr = bond.NewBond(cmd.Symbol, cmd.Isin, cmd.IssuanceAt, cmd.ExpirationAt, apiID)
		if txErr != nil {
			return txErr
		}

		return h.bondRepo.Add(ctx, created)
	})
	if err != nil {
		return result.Fail[BondResponse](toFailure(err))
	}

	return result.Ok(toResponse(created))
}
