package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"investhub/internal/catalog"
	"investhub/internal/logger"
	"investhub/internal/models"
)

// Seed populates the catalog tables and the demo account. It runs exactly
// once per database: if products already exist it is a no-op. Nothing writes
// to the catalog tables after this returns.
func (m *Manager) Seed(demoEmail, demoPassword string) error {
	var count int64
	if err := m.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if count > 0 {
		logger.Get().Info("Catalog already seeded, skipping")
		return nil
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		providers := catalog.Providers()
		if err := tx.Create(&providers).Error; err != nil {
			return fmt.Errorf("failed to seed providers: %w", err)
		}

		products := catalog.Products()
		for i := range products {
			products[i].Position = i + 1
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		user, err := seedDemoUser(tx, demoEmail, demoPassword)
		if err != nil {
			return err
		}
		if err := seedDemoPortfolio(tx, user.ID); err != nil {
			return err
		}

		logger.Get().Infow("Seeded catalog",
			"providers", len(catalog.Providers()),
			"products", len(products),
			"demo_user", demoEmail,
		)
		return nil
	})
}

func seedDemoUser(tx *gorm.DB, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		FullName:  "Demo Investor",
		KYCStatus: models.KYCVerified,
		IsActive:  true,
	}
	if err := tx.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to seed demo user: %w", err)
	}
	return user, nil
}

// seedDemoPortfolio creates the static holdings and recent orders shown on
// the dashboard. These rows are display fixtures, not real positions.
func seedDemoPortfolio(tx *gorm.DB, userID string) error {
	holdings := []models.Holding{
		{UserID: userID, Label: "Bonds", AssetType: models.AssetTypeBond, InvestedAt: 36000, CurrentValue: 40000},
		{UserID: userID, Label: "Mutual Funds", AssetType: models.AssetTypeMutualFund, InvestedAt: 30000, CurrentValue: 35000},
		{UserID: userID, Label: "FDs", AssetType: models.AssetTypeFD, InvestedAt: 14500, CurrentValue: 15000},
		{UserID: userID, Label: "ETFs", AssetType: models.AssetTypeETF, InvestedAt: 8400, CurrentValue: 10000},
	}
	if err := tx.Create(&holdings).Error; err != nil {
		return fmt.Errorf("failed to seed holdings: %w", err)
	}

	orders := []models.Order{
		{UserID: userID, Reference: "ORD-001", ProductTitle: "HDFC Bank Senior Bond", Amount: 10000, Status: models.OrderCompleted, PlacedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{UserID: userID, Reference: "ORD-002", ProductTitle: "Axis Bluechip Fund", Amount: 5000, Status: models.OrderProcessing, PlacedAt: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)},
		{UserID: userID, Reference: "ORD-003", ProductTitle: "SBI Tax Saving FD", Amount: 15000, Status: models.OrderCompleted, PlacedAt: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)},
	}
	if err := tx.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}
	return nil
}
