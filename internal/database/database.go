package database

import (
	"fmt"
	"log"

	"sportsstore/internal/config"
	"sportsstore/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all catalog entities.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Role{},
		&models.User{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Seed populates an empty store with sample categories and products, a
// sample customer, and the Admin role plus the back-office admin account.
// It is idempotent: existing rows are left untouched.
func Seed(db *gorm.DB, adminUsername, adminPassword string) error {
	if err := seedCatalog(db); err != nil {
		return err
	}
	return seedAdmin(db, adminUsername, adminPassword)
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Soccer"},
		{Name: "Apparel"},
		{Name: "Tennis"},
		{Name: "Running"},
		{Name: "Basketball"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	products := []models.Product{
		{Name: "World Cup Match Ball", Description: "Official size and weight soccer ball", Price: 50.00, CategoryID: categories[0].ID, Featured: true},
		{Name: "Club Home Jersey", Description: "Replica jersey for supporters", Price: 75.50, CategoryID: categories[1].ID},
		{Name: "Pro Tennis Racket", Description: "Tournament grade racket", Price: 150.00, CategoryID: categories[2].ID, Featured: true},
		{Name: "Lightweight Running Shoes", Description: "Cushioned trainers for road running", Price: 99.99, CategoryID: categories[3].ID},
		{Name: "NBA Basketball", Description: "Regulation indoor basketball", Price: 45.00, CategoryID: categories[4].ID},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	customer := models.Customer{Name: "Sample Customer"}
	if err := db.Create(&customer).Error; err != nil {
		return fmt.Errorf("failed to seed customer: %w", err)
	}

	log.Printf("Seeded %d categories and %d products", len(categories), len(products))
	return nil
}

func seedAdmin(db *gorm.DB, username, password string) error {
	var role models.Role
	if err := db.Where(models.Role{Name: "Admin"}).FirstOrCreate(&role).Error; err != nil {
		return fmt.Errorf("failed to seed Admin role: %w", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Roles:        []models.Role{role},
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("Seeded admin user %q", username)
	return nil
}
