package migrations

import (
	"log"

	"fastfood_backend/internal/models"

	"gorm.io/gorm"
)

// Run creates or updates the schema for all models.
func Run(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}

// EnsureAdminRole promotes the configured admin account to the admin role.
// Accounts created before the role column existed default to customer.
func EnsureAdminRole(db *gorm.DB, adminEmail string) error {
	if adminEmail == "" {
		return nil
	}

	result := db.Model(&models.User{}).
		Where("email = ? AND role <> ?", adminEmail, string(models.RoleAdmin)).
		Update("role", string(models.RoleAdmin))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("Promoted %s to admin", adminEmail)
	}
	return nil
}
