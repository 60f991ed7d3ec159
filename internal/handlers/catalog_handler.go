package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "investhub/internal/errors"
	"investhub/internal/models"
	"investhub/internal/services"
)

// CatalogHandler handles product catalog browsing requests.
type CatalogHandler struct {
	catalogService    services.CatalogServicer
	projectionService services.ProjectionServicer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService services.CatalogServicer, projectionService services.ProjectionServicer) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, projectionService: projectionService}
}

// ListProductsRequest represents the explorer filter query parameters.
// Absent parameters mean "no constraint"; `type=all` is equivalent to
// omitting the type.
type ListProductsRequest struct {
	Type      string   `form:"type" binding:"omitempty,asset_type_filter"`
	Search    string   `form:"search" binding:"omitempty,max=100"`
	Risks     []string `form:"risk" binding:"omitempty,dive,risk_level"`
	Providers []string `form:"provider" binding:"omitempty,dive,max=40"`
}

// ProjectionRequest represents the unit count for a projection. Zero is
// indistinguishable from an absent parameter and defaults to one unit;
// negative or non-numeric values are rejected rather than clamped, since
// HTTP callers are untrusted.
type ProjectionRequest struct {
	Units int `form:"units" binding:"omitempty,min=1"`
}

// ListProducts handles the explorer listing with filters.
// @Summary     List products
// @Description List catalog products matching the given filters, in catalog order
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       type     query string   false "Asset type or 'all'"
// @Param       search   query string   false "Case-insensitive substring matched against title and tags"
// @Param       risk     query []string false "Risk levels (repeatable)"
// @Param       provider query []string false "Provider IDs (repeatable)"
// @Success     200 {object} map[string]interface{} "Matching products"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.ProductFilter{
		AssetType:   req.Type,
		SearchText:  req.Search,
		ProviderIDs: req.Providers,
	}
	for _, r := range req.Risks {
		filter.RiskLevels = append(filter.RiskLevels, models.RiskLevel(r))
	}

	products, err := h.catalogService.ListProducts(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
		"filter":   filter,
	})
}

// GetProduct handles the product detail view.
// @Summary     Get product by ID
// @Description Get a product with its resolved provider and funding progress
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} map[string]interface{} "Product detail"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProductByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := gin.H{
		"product":          product,
		"funding_progress": services.ComputeFundingProgress(product.RaisedAmount, product.TotalGoal),
	}

	// A dangling provider reference is a displayable absence: the detail
	// page simply omits provider branding.
	provider, err := h.catalogService.GetProviderByID(product.ProviderID)
	switch {
	case err == nil:
		resp["provider"] = provider
	case errors.Is(err, apperrors.ErrProviderNotFound):
		// omit
	default:
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProjection handles the return calculator on the detail view.
// @Summary     Project investment returns
// @Description Compute principal and projected maturity value for a unit count
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       id    path  string true  "Product ID"
// @Param       units query int    false "Number of units (default 1)"
// @Success     200 {object} services.InvestmentProjection "Projection"
// @Failure     400 {object} ErrorResponse "Invalid unit count"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products/{id}/projection [get]
func (h *CatalogHandler) GetProjection(c *gin.Context) {
	var req ProjectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "units must be a positive integer"))
		return
	}
	if req.Units == 0 {
		req.Units = 1
	}

	projection, err := h.projectionService.ProjectForProduct(c.Param("id"), req.Units)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": projection})
}

// ListProviders handles listing all providers.
// @Summary     List providers
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string]interface{} "Providers"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /providers [get]
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	providers, err := h.catalogService.ListProviders()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProvider handles retrieving a single provider.
// @Summary     Get provider by ID
// @Tags        catalog
// @Produce     json
// @Param       id path string true "Provider ID"
// @Success     200 {object} models.Provider "Provider"
// @Failure     404 {object} ErrorResponse "Provider not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /providers/{id} [get]
func (h *CatalogHandler) GetProvider(c *gin.Context) {
	provider, err := h.catalogService.GetProviderByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": provider})
}

// ListAssetTypes handles the asset-type metadata for the explorer sidebar.
// @Summary     List asset types
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string]interface{} "Asset types"
// @Router      /asset-types [get]
func (h *CatalogHandler) ListAssetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"asset_types": h.catalogService.ListAssetTypes()})
}
