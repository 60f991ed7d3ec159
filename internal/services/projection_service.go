package services

// projectionService resolves a product and runs the projection engine on it.
type projectionService struct {
	catalog CatalogServicer
}

// NewProjectionService creates a new ProjectionServicer.
func NewProjectionService(catalog CatalogServicer) ProjectionServicer {
	return &projectionService{catalog: catalog}
}

// ProjectForProduct computes the investment projection for a catalog product.
// Returns ErrProductNotFound for an unknown product ID; unit counts below 1
// are clamped by the engine.
func (s *projectionService) ProjectForProduct(productID string, unitCount int) (*InvestmentProjection, error) {
	product, err := s.catalog.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	projection := ProjectInvestment(product, unitCount)
	return &projection, nil
}
