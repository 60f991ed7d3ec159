package services

import (
	"slices"
	"strings"

	"investhub/internal/models"
)

// FilterProducts returns the subsequence of products matching every active
// filter criterion, preserving the input order. It is a pure function of its
// two arguments: criteria that eliminate everything yield an empty slice,
// never an error, and the input is left untouched.
func FilterProducts(products []models.Product, filter ProductFilter) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for i := range products {
		if matchesFilter(&products[i], filter) {
			matched = append(matched, products[i])
		}
	}
	return matched
}

// matchesFilter reports whether a product satisfies all active criteria.
func matchesFilter(p *models.Product, f ProductFilter) bool {
	if f.AssetType != "" && f.AssetType != models.AssetTypeAll && models.AssetType(f.AssetType) != p.AssetType {
		return false
	}
	if !matchesSearch(p, f.SearchText) {
		return false
	}
	if len(f.RiskLevels) > 0 && !slices.Contains(f.RiskLevels, p.Risk) {
		return false
	}
	if len(f.ProviderIDs) > 0 && !slices.Contains(f.ProviderIDs, p.ProviderID) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the product
// title and each tag. Not tokenized: "agri" matches the tag "Agri-Infra".
func matchesSearch(p *models.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
