package models

// KYCStatus represents the identity-verification state of a user.
// Verification itself is not implemented; the status is display-only.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
)

// User represents the user model in the database
type User struct {
	Base
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FullName  string    `json:"full_name"`
	KYCStatus KYCStatus `gorm:"default:'pending'" json:"kyc_status"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Holdings  []Holding `gorm:"foreignKey:UserID" json:"holdings,omitempty"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}
