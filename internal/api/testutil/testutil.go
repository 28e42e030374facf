// Package testutil provides shared helpers for repository and service
// tests. Tests run against a file-backed SQLite database in a temp
// directory so unique constraints and transactions behave like the
// production store, including under concurrent writers.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Thiyagu2009/mindtales/internal/api/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB creates a fresh database with the full schema
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mindtales_test.db")
	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Menu{},
		&models.MenuItem{},
		&models.VoteSession{},
		&models.Vote{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CreateEmployee inserts an employee user
func CreateEmployee(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "not-a-real-hash",
		UserType: models.UserTypeEmployee,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}
	return user
}

// CreateRestaurant inserts a restaurant user
func CreateRestaurant(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()

	user := &models.User{
		Email:          email,
		Password:       "not-a-real-hash",
		UserType:       models.UserTypeRestaurant,
		RestaurantName: &name,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create restaurant: %v", err)
	}
	return user
}

// CreateMenu inserts a menu with a single item for the given day
func CreateMenu(t *testing.T, db *gorm.DB, restaurantID, day string, published bool) *models.Menu {
	t.Helper()

	menu := &models.Menu{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Date:         day,
		IsPublished:  published,
		Items: []models.MenuItem{
			{
				Name:     "Lunch special",
				Price:    9.50,
				Category: models.CategoryMainCourse,
			},
		},
	}
	if err := db.Create(menu).Error; err != nil {
		t.Fatalf("failed to create menu: %v", err)
	}
	return menu
}
