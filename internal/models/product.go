package models

// AssetType represents the type of investment product.
type AssetType string

const (
	AssetTypeBond       AssetType = "bond"
	AssetTypeFD         AssetType = "fd"
	AssetTypeMutualFund AssetType = "mutual_fund"
	AssetTypeETF        AssetType = "etf"
	AssetTypeGovtScheme AssetType = "govt_scheme"
	AssetTypeSIP        AssetType = "sip"
	AssetTypeBasket     AssetType = "basket"
)

// AssetTypeAll is the filter sentinel meaning "no asset type constraint".
const AssetTypeAll = "all"

// RiskLevel represents the risk classification of a product.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Provider represents an institution issuing products on the platform.
type Provider struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Logo string `json:"logo"`
}

// KeyHighlight is a display metric shown on the product detail page.
type KeyHighlight struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Subtext  string `json:"subtext,omitempty"`
	ColorTag string `json:"color,omitempty"`
}

// RepaymentSchedule describes how interest and principal are paid out.
// Display-only; the projection engine does not consult it.
type RepaymentSchedule struct {
	Interest  string `json:"interest"`
	Principal string `json:"principal"`
}

// Product represents a single investment product in the catalog.
//
// The catalog is seeded once at startup and never mutated, so products have
// no create/update lifecycle. MinInvestment doubles as the unit price for
// unit-based products (bonds). A zero TenureMonths means open-ended; a zero
// ExpectedYield means no published yield.
type Product struct {
	ID                string             `gorm:"primaryKey" json:"id"`
	Position          int                `gorm:"not null;uniqueIndex" json:"-"`
	Title             string             `gorm:"not null" json:"title"`
	ProviderID        string             `gorm:"not null;index" json:"provider_id"`
	AssetType         AssetType          `gorm:"not null" json:"asset_type"`
	MinInvestment     float64            `gorm:"not null" json:"min_investment"`
	TenureMonths      int                `json:"tenure_months,omitempty"`
	ExpectedYield     float64            `json:"expected_yield,omitempty"`
	Risk              RiskLevel          `gorm:"not null" json:"risk"`
	CreditRating      string             `json:"credit_rating,omitempty"`
	Tags              []string           `gorm:"serializer:json" json:"tags"`
	Description       string             `json:"description"`
	RaisedAmount      float64            `json:"raised_amount,omitempty"`
	TotalGoal         float64            `json:"total_goal,omitempty"`
	ReasonsToInvest   []string           `gorm:"serializer:json" json:"reasons_to_invest,omitempty"`
	KeyHighlights     []KeyHighlight     `gorm:"serializer:json" json:"key_highlights,omitempty"`
	RepaymentSchedule *RepaymentSchedule `gorm:"serializer:json" json:"repayment_schedule,omitempty"`
}

// AssetTypeInfo is the display metadata for an asset type, used by the
// explorer sidebar and the homepage category grid.
type AssetTypeInfo struct {
	ID          AssetType `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}
