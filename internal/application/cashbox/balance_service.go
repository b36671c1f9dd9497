package cashbox

import (
	"context"

	"github.com/cantina/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BalanceService exposes the general balance and its administrative
// adjustment operation. Adjustments run inside a transaction scope so a
// concurrent drawer close cannot interleave with the read-modify-write.
type BalanceService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(scope TransactionScope, logger *zap.Logger) *BalanceService {
	return &BalanceService{scope: scope, logger: logger}
}

// Get returns the current general balance, creating it at zero on first access
func (s *BalanceService) Get(ctx context.Context) (*GeneralBalanceResponse, error) {
	var resp GeneralBalanceResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		balance, err := repos.BalanceRepo().Get(ctx)
		if err != nil {
			return err
		}
		resp = toGeneralBalanceResponse(balance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Adjust applies an administrative set, add or subtract operation
func (s *BalanceService) Adjust(ctx context.Context, req AdjustBalanceRequest) (*GeneralBalanceResponse, error) {
	if req.Amount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Adjustment amount cannot be negative")
	}

	var resp GeneralBalanceResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		balance, err := repos.BalanceRepo().GetForUpdate(ctx)
		if err != nil {
			return err
		}

		switch req.Operation {
		case "set":
			balance.Set(req.Amount)
		case "add":
			balance.Add(req.Amount)
		case "subtract":
			balance.Subtract(req.Amount)
		default:
			return shared.NewDomainError("VALIDATION_ERROR", "Unknown balance operation")
		}

		if err := repos.BalanceRepo().Save(ctx, balance); err != nil {
			return err
		}
		resp = toGeneralBalanceResponse(balance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("general balance adjusted",
		zap.String("operation", req.Operation),
		zap.String("amount", req.Amount.String()),
		zap.String("balance", resp.Amount.String()))

	return &resp, nil
}
