package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"investhub/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		FullName:  fmt.Sprintf("Test User %d", nextID()),
		KYCStatus: models.KYCVerified,
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProvider creates a provider with a unique ID and name.
func CreateTestProvider(t *testing.T, db *gorm.DB) *models.Provider {
	t.Helper()

	n := nextID()
	provider := &models.Provider{
		ID:   fmt.Sprintf("tp%d", n),
		Name: fmt.Sprintf("Test Provider %d", n),
		Logo: "TP",
	}
	if err := db.Create(provider).Error; err != nil {
		t.Fatalf("failed to create test provider: %v", err)
	}
	return provider
}

// CreateTestProduct creates a bond product for the given provider with a
// unique ID and catalog position.
func CreateTestProduct(t *testing.T, db *gorm.DB, providerID string) *models.Product {
	t.Helper()

	n := nextID()
	product := &models.Product{
		ID:            fmt.Sprintf("prod-%d", n),
		Position:      int(n),
		Title:         fmt.Sprintf("Test Bond %d", n),
		ProviderID:    providerID,
		AssetType:     models.AssetTypeBond,
		MinInvestment: 10000,
		TenureMonths:  12,
		ExpectedYield: 9.5,
		Risk:          models.RiskLow,
		Tags:          []string{"Secured"},
		RaisedAmount:  5000000,
		TotalGoal:     10000000,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestHolding creates a portfolio holding for the given user.
func CreateTestHolding(t *testing.T, db *gorm.DB, userID string, assetType models.AssetType, invested, current float64) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		UserID:       userID,
		Label:        fmt.Sprintf("Test Holding %d", nextID()),
		AssetType:    assetType,
		InvestedAt:   invested,
		CurrentValue: current,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestOrder creates a completed order placed at the given time.
func CreateTestOrder(t *testing.T, db *gorm.DB, userID string, placedAt time.Time) *models.Order {
	t.Helper()

	n := nextID()
	order := &models.Order{
		UserID:       userID,
		Reference:    fmt.Sprintf("TST-%03d", n),
		ProductTitle: fmt.Sprintf("Test Bond %d", n),
		Amount:       10000,
		Status:       models.OrderCompleted,
		PlacedAt:     placedAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}
	return order
}
