package models

import "time"

// Holding represents a position in the demo portfolio dashboard. Holdings are
// seeded alongside the catalog and are read-only for the process lifetime.
type Holding struct {
	Base
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Label        string    `gorm:"not null" json:"label"`
	AssetType    AssetType `gorm:"not null" json:"asset_type"`
	InvestedAt   float64   `gorm:"not null" json:"invested_amount"`
	CurrentValue float64   `gorm:"not null" json:"current_value"`
}

// OrderStatus represents the fulfilment state of a demo order.
type OrderStatus string

const (
	OrderCompleted  OrderStatus = "completed"
	OrderProcessing OrderStatus = "processing"
)

// Order represents a past purchase shown on the dashboard. Orders are static
// demo rows; there is no order placement flow.
type Order struct {
	Base
	UserID       string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Reference    string      `gorm:"uniqueIndex;not null" json:"reference"`
	ProductTitle string      `gorm:"not null" json:"product_title"`
	Amount       float64     `gorm:"not null" json:"amount"`
	Status       OrderStatus `gorm:"not null" json:"status"`
	PlacedAt     time.Time   `gorm:"not null" json:"placed_at"`
}
