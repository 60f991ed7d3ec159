package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"investhub/internal/catalog"
	apperrors "investhub/internal/errors"
	"investhub/internal/models"
	"investhub/internal/services"
)

type mockCatalogService struct {
	getAllProductsFn  func() ([]models.Product, error)
	listProductsFn    func(filter services.ProductFilter) ([]models.Product, error)
	getProductByIDFn  func(id string) (*models.Product, error)
	listProvidersFn   func() ([]models.Provider, error)
	getProviderByIDFn func(id string) (*models.Provider, error)
}

func (m *mockCatalogService) GetAllProducts() ([]models.Product, error) {
	if m.getAllProductsFn != nil {
		return m.getAllProductsFn()
	}
	return catalog.Products(), nil
}

func (m *mockCatalogService) ListProducts(filter services.ProductFilter) ([]models.Product, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(filter)
	}
	return services.FilterProducts(catalog.Products(), filter), nil
}

func (m *mockCatalogService) GetProductByID(id string) (*models.Product, error) {
	if m.getProductByIDFn != nil {
		return m.getProductByIDFn(id)
	}
	for _, p := range catalog.Products() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperrors.ErrProductNotFound
}

func (m *mockCatalogService) ListProviders() ([]models.Provider, error) {
	if m.listProvidersFn != nil {
		return m.listProvidersFn()
	}
	return catalog.Providers(), nil
}

func (m *mockCatalogService) GetProviderByID(id string) (*models.Provider, error) {
	if m.getProviderByIDFn != nil {
		return m.getProviderByIDFn(id)
	}
	for _, p := range catalog.Providers() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperrors.ErrProviderNotFound
}

func (m *mockCatalogService) ListAssetTypes() []models.AssetTypeInfo {
	return catalog.AssetTypes()
}

type mockProjectionService struct {
	projectForProductFn func(productID string, unitCount int) (*services.InvestmentProjection, error)
}

func (m *mockProjectionService) ProjectForProduct(productID string, unitCount int) (*services.InvestmentProjection, error) {
	if m.projectForProductFn != nil {
		return m.projectForProductFn(productID, unitCount)
	}
	return &services.InvestmentProjection{ProductID: productID, UnitCount: unitCount}, nil
}

func setupCatalogRouter(handler *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/products", handler.ListProducts)
	r.GET("/products/:id", handler.GetProduct)
	r.GET("/products/:id/projection", handler.GetProjection)
	r.GET("/providers", handler.ListProviders)
	r.GET("/providers/:id", handler.GetProvider)
	r.GET("/asset-types", handler.ListAssetTypes)
	return r
}

func newCatalogHandler() *CatalogHandler {
	return NewCatalogHandler(&mockCatalogService{}, &mockProjectionService{})
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Run("returns full catalog without filters", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/products", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["count"].(float64) != float64(len(catalog.Products())) {
			t.Errorf("expected the full catalog, got count %v", result["count"])
		}
	})

	t.Run("passes filters through to the service", func(t *testing.T) {
		var got services.ProductFilter
		catalogSvc := &mockCatalogService{
			listProductsFn: func(filter services.ProductFilter) ([]models.Product, error) {
				got = filter
				return []models.Product{}, nil
			},
		}
		r := setupCatalogRouter(NewCatalogHandler(catalogSvc, &mockProjectionService{}))

		rec := doRequest(r, "GET", "/products?type=bond&search=agri&risk=low&risk=high&provider=p2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.AssetType != "bond" || got.SearchText != "agri" {
			t.Errorf("unexpected filter: %+v", got)
		}
		if len(got.RiskLevels) != 2 || got.RiskLevels[0] != models.RiskLow {
			t.Errorf("unexpected risk levels: %v", got.RiskLevels)
		}
		if len(got.ProviderIDs) != 1 || got.ProviderIDs[0] != "p2" {
			t.Errorf("unexpected provider IDs: %v", got.ProviderIDs)
		}
	})

	t.Run("type all is accepted", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/products?type=all", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on unknown asset type", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/products?type=crypto", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown risk level", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/products?risk=extreme", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Run("returns product with provider and funding progress", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/products/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		product := result["product"].(map[string]interface{})
		if product["id"] != "1" {
			t.Errorf("expected product 1, got %v", product["id"])
		}
		if result["provider"] == nil {
			t.Error("expected resolved provider")
		}
		progress := result["funding_progress"].(float64)
		if progress < 0 || progress > 100 {
			t.Errorf("funding progress %v outside [0, 100]", progress)
		}
	})

	t.Run("omits provider when the reference dangles", func(t *testing.T) {
		catalogSvc := &mockCatalogService{
			getProductByIDFn: func(id string) (*models.Product, error) {
				return &models.Product{ID: id, ProviderID: "p999"}, nil
			},
		}
		r := setupCatalogRouter(NewCatalogHandler(catalogSvc, &mockProjectionService{}))

		rec := doRequest(r, "GET", "/products/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if _, ok := result["provider"]; ok {
			t.Error("expected provider to be omitted")
		}
	})

	t.Run("returns 404 for unknown product", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/products/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PRODUCT_NOT_FOUND")
	})
}

func TestCatalogHandler_GetProjection(t *testing.T) {
	t.Run("passes units through", func(t *testing.T) {
		var gotUnits int
		projSvc := &mockProjectionService{
			projectForProductFn: func(productID string, unitCount int) (*services.InvestmentProjection, error) {
				gotUnits = unitCount
				return &services.InvestmentProjection{ProductID: productID, UnitCount: unitCount}, nil
			},
		}
		r := setupCatalogRouter(NewCatalogHandler(&mockCatalogService{}, projSvc))

		rec := doRequest(r, "GET", "/products/1/projection?units=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUnits != 3 {
			t.Errorf("expected 3 units, got %d", gotUnits)
		}
	})

	t.Run("defaults to one unit", func(t *testing.T) {
		var gotUnits int
		projSvc := &mockProjectionService{
			projectForProductFn: func(productID string, unitCount int) (*services.InvestmentProjection, error) {
				gotUnits = unitCount
				return &services.InvestmentProjection{ProductID: productID, UnitCount: unitCount}, nil
			},
		}
		r := setupCatalogRouter(NewCatalogHandler(&mockCatalogService{}, projSvc))

		rec := doRequest(r, "GET", "/products/1/projection", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUnits != 1 {
			t.Errorf("expected default of 1 unit, got %d", gotUnits)
		}
	})

	t.Run("treats zero units as absent", func(t *testing.T) {
		var gotUnits int
		projSvc := &mockProjectionService{
			projectForProductFn: func(productID string, unitCount int) (*services.InvestmentProjection, error) {
				gotUnits = unitCount
				return &services.InvestmentProjection{ProductID: productID, UnitCount: unitCount}, nil
			},
		}
		r := setupCatalogRouter(NewCatalogHandler(&mockCatalogService{}, projSvc))

		rec := doRequest(r, "GET", "/products/1/projection?units=0", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUnits != 1 {
			t.Errorf("expected default of 1 unit, got %d", gotUnits)
		}
	})

	t.Run("rejects negative or garbage units", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		for _, q := range []string{"units=-2", "units=abc"} {
			rec := doRequest(r, "GET", "/products/1/projection?"+q, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", q, rec.Code)
			}
		}
	})

	t.Run("returns 404 for unknown product", func(t *testing.T) {
		projSvc := &mockProjectionService{
			projectForProductFn: func(string, int) (*services.InvestmentProjection, error) {
				return nil, apperrors.ErrProductNotFound
			},
		}
		r := setupCatalogRouter(NewCatalogHandler(&mockCatalogService{}, projSvc))

		rec := doRequest(r, "GET", "/products/999/projection", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCatalogHandler_Providers(t *testing.T) {
	t.Run("lists providers", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/providers", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		providers := result["providers"].([]interface{})
		if len(providers) != len(catalog.Providers()) {
			t.Errorf("expected %d providers, got %d", len(catalog.Providers()), len(providers))
		}
	})

	t.Run("gets a provider by ID", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/providers/p1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 for unknown provider", func(t *testing.T) {
		r := setupCatalogRouter(newCatalogHandler())

		rec := doRequest(r, "GET", "/providers/p999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PROVIDER_NOT_FOUND")
	})
}

func TestCatalogHandler_ListAssetTypes(t *testing.T) {
	r := setupCatalogRouter(newCatalogHandler())

	rec := doRequest(r, "GET", "/asset-types", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	types := result["asset_types"].([]interface{})
	if len(types) == 0 {
		t.Fatal("expected asset type metadata")
	}
}
