package services

import (
	"gorm.io/gorm"

	apperrors "investhub/internal/errors"
	"investhub/internal/models"
	"investhub/internal/pagination"
)

// portfolioService serves the static dashboard data: seeded holdings and
// past orders. There is no order placement or rebalancing; the rows are
// read-only for the process lifetime.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// GetSummary returns the aggregated allocation across the user's holdings.
// A user with no holdings gets a zero summary, not an error.
func (s *portfolioService) GetSummary(userID string) (*PortfolioSummary, error) {
	var holdings []models.Holding
	if err := s.db.Where("user_id = ?", userID).Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &PortfolioSummary{
		AllocationByType: make(map[models.AssetType]TypeAllocation),
	}

	for i := range holdings {
		h := &holdings[i]
		summary.TotalValue += h.CurrentValue
		summary.TotalInvested += h.InvestedAt

		alloc := summary.AllocationByType[h.AssetType]
		alloc.Label = h.Label
		alloc.Value += h.CurrentValue
		alloc.Count++
		summary.AllocationByType[h.AssetType] = alloc
	}

	summary.TotalGainLoss = summary.TotalValue - summary.TotalInvested
	if summary.TotalInvested > 0 {
		summary.GainLossPct = summary.TotalGainLoss / summary.TotalInvested * 100
	}

	return summary, nil
}

// ListOrders returns the user's orders, most recent first.
func (s *portfolioService) ListOrders(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Order], error) {
	page.Defaults()

	base := s.db.Model(&models.Order{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var orders []models.Order
	if err := base.Order("placed_at DESC").Scopes(pagination.Paginate(page)).Find(&orders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(orders, page.Page, page.PageSize, totalItems)
	return &result, nil
}
