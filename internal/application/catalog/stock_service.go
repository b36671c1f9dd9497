package catalog

import (
	"context"

	"github.com/cantina/backend/internal/domain/catalog"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockService records stock movements against the append-only ledger.
// The product quantity and the ledger entry are written in one transaction.
type StockService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(scope TransactionScope, logger *zap.Logger) *StockService {
	return &StockService{scope: scope, logger: logger}
}

// RecordMovement applies an In or Out movement to a product. Out movements
// larger than the on-hand quantity are rejected without writing anything.
func (s *StockService) RecordMovement(ctx context.Context, productID uuid.UUID, req RecordMovementRequest) (*StockMovementResponse, error) {
	var resp StockMovementResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		movement, err := product.RecordMovement(catalog.MovementType(req.Type), req.Quantity, req.Note)
		if err != nil {
			return err
		}

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		if err := repos.ProductRepo().SaveMovement(ctx, movement); err != nil {
			return err
		}

		resp = toStockMovementResponse(movement)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock movement recorded",
		zap.String("product_id", productID.String()),
		zap.String("type", resp.Type),
		zap.Int("quantity", resp.Quantity))

	return &resp, nil
}

// ListMovements returns a page of a product's ledger, newest first
func (s *StockService) ListMovements(ctx context.Context, productID uuid.UUID, page, pageSize int) (*shared.Paginated[StockMovementResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	var resp shared.Paginated[StockMovementResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ProductRepo().FindByID(ctx, productID); err != nil {
			return err
		}
		result, err := repos.ProductRepo().FindMovements(ctx, productID, filter)
		if err != nil {
			return err
		}
		items := make([]StockMovementResponse, 0, len(result.Items))
		for i := range result.Items {
			items = append(items, toStockMovementResponse(&result.Items[i]))
		}
		resp = shared.NewPaginated(items, result.Total, result.Page, result.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
