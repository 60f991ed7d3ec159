package services

import (
	"errors"

	"gorm.io/gorm"

	"investhub/internal/catalog"
	apperrors "investhub/internal/errors"
	"investhub/internal/models"
)

// catalogService serves the read-only product catalog. The tables it reads
// are seeded once at startup and never written again, so every method is
// safe for concurrent callers.
type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogServicer.
func NewCatalogService(db *gorm.DB) CatalogServicer {
	return &catalogService{db: db}
}

// GetAllProducts returns the full catalog in insertion order.
func (s *catalogService) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("position ASC").Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return products, nil
}

// ListProducts returns the ordered subsequence of the catalog matching the
// filter. Filtering happens in memory so the engine stays a pure,
// order-stable function of the product sequence; with fewer than ten
// products there is nothing to gain from pushing predicates into SQL.
func (s *catalogService) ListProducts(filter ProductFilter) ([]models.Product, error) {
	products, err := s.GetAllProducts()
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, filter), nil
}

// GetProductByID returns a single product or ErrProductNotFound.
func (s *catalogService) GetProductByID(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

// ListProviders returns all providers.
func (s *catalogService) ListProviders() ([]models.Provider, error) {
	var providers []models.Provider
	if err := s.db.Order("id ASC").Find(&providers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return providers, nil
}

// GetProviderByID returns a provider or ErrProviderNotFound. Callers
// resolving a product's provider reference should treat the not-found case
// as a displayable absence (omit branding), not a failure.
func (s *catalogService) GetProviderByID(id string) (*models.Provider, error) {
	var provider models.Provider
	if err := s.db.Where("id = ?", id).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &provider, nil
}

// ListAssetTypes returns the asset-type display metadata. The list is a
// compile-time constant and never touches the database.
func (s *catalogService) ListAssetTypes() []models.AssetTypeInfo {
	return catalog.AssetTypes()
}
