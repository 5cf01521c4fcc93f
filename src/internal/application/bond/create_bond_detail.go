package bond

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fmartins/bond_crm/src/internal/application/result"
	"github.com/fmartins/bond_crm/src/internal/domain/bond"
	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// CreateBondDetail
// ===========================

// CreateBondDetailCommand is the input DTO for a pricing detail.
type CreateBondDetailCommand struct {
	FantasyName             string
	DeadlineCalendarDays    int
	InitialUnitValue        decimal.Decimal
	BenchmarkPercentualRate decimal.Decimal
	FixedPercentualRate     decimal.Decimal
	IsAvailable             bool
	IsExemptDebenture       bool
	DaysToGracePeriod       int
	MarketIndexID           int
	BondBaseID              int
	BondEmitterID           int
}

// CreateBondDetailHandler creates a pricing detail. Referential integrity
// of the reference ids is the storage layer's concern; the aggregate only
// requires them to be positive.
type CreateBondDetailHandler struct {
	detailRepo bond.BondDetailRepository
	txManager  shared.TransactionManager
}

// NewCreateBondDetailHandler wires the handler's collaborators.
func NewCreateBondDetailHandler(
	detailRepo bond.BondDetailRepository,
	txManager shared.TransactionManager,
) *CreateBondDetailHandler {
	return &CreateBondDetailHandler{detailRepo: detailRepo, txManager: txManager}
}

// Handle validates, persists and projects.
func (h *CreateBondDetailHandler) Handle(ctx context.Context, cmd CreateBondDetailCommand) result.Result[BondDetailResponse] {
	var created *bond.BondDetail

	err := h.txManager.InTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = bond.NewBondDetail(
			cmd.FantasyName,
			cmd.DeadlineCalendarDays,
			cmd.InitialUnitValue,
			cmd.BenchmarkPercentualRate,
			cmd.FixedPercentualRate,
			cmd.IsAvailable,
			cmd.IsExemptDebenture,
			cmd.DaysToGracePeriod,
			cmd.MarketIndexID,
			cmd.BondBaseID,
			cmd.BondEmitterID,
		)
		if txErr != nil {
			return txErr
		}
		return h.detailRepo.Add(ctx, created)
	})
	if err != nil {
		return result.Fail[BondDetailResponse](toDetailFailure(err))
	}

	return result.Ok(toDetailResponse(created))
}
