package services

import (
	"investhub/internal/models"
	"investhub/internal/pagination"
)

// ProductFilter holds the filter criteria collected by the explorer view.
// Zero values mean "no constraint": an empty or "all" asset type, empty
// search text, and empty risk/provider sets all match everything. A fresh
// value is built on every interaction; nothing here is persisted.
type ProductFilter struct {
	AssetType   string             `json:"asset_type,omitempty"`
	SearchText  string             `json:"search_text,omitempty"`
	RiskLevels  []models.RiskLevel `json:"risk_levels,omitempty"`
	ProviderIDs []string           `json:"provider_ids,omitempty"`
}

// InvestmentProjection is the point estimate of principal and maturity value
// for buying UnitCount units of a product. Recomputed on every request,
// never stored.
type InvestmentProjection struct {
	ProductID       string  `json:"product_id"`
	UnitCount       int     `json:"unit_count"`
	UnitPrice       float64 `json:"unit_price"`
	Principal       float64 `json:"principal"`
	TenureYears     float64 `json:"tenure_years"`
	ProjectedReturn float64 `json:"projected_return"`
}

// CatalogServicer defines the contract for the read-only product catalog.
type CatalogServicer interface {
	GetAllProducts() ([]models.Product, error)
	ListProducts(filter ProductFilter) ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	ListProviders() ([]models.Provider, error)
	GetProviderByID(id string) (*models.Provider, error)
	ListAssetTypes() []models.AssetTypeInfo
}

// ProjectionServicer defines the contract for product-scoped return estimates.
type ProjectionServicer interface {
	ProjectForProduct(productID string, unitCount int) (*InvestmentProjection, error)
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, fullName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// TypeAllocation contains the dashboard slice for a single asset type.
type TypeAllocation struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// PortfolioSummary contains the aggregated dashboard data for a user.
type PortfolioSummary struct {
	TotalValue       float64                             `json:"total_value"`
	TotalInvested    float64                             `json:"total_invested"`
	TotalGainLoss    float64                             `json:"total_gain_loss"`
	GainLossPct      float64                             `json:"gain_loss_pct"`
	AllocationByType map[models.AssetType]TypeAllocation `json:"allocation_by_type"`
}

// PortfolioServicer defines the contract for the static dashboard data.
type PortfolioServicer interface {
	GetSummary(userID string) (*PortfolioSummary, error)
	ListOrders(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Order], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
