package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayLayout is the storage format for calendar days. Days are kept as
// plain YYYY-MM-DD strings so equality and unique indexes behave the
// same on every backend.
const DayLayout = "2006-01-02"

// Day formats t as a calendar day in UTC.
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

type Menu struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	RestaurantID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_menus_restaurant_date" json:"restaurant_id"`
	Date         string `gorm:"size:10;not null;index;uniqueIndex:idx_menus_restaurant_date" json:"date"` // YYYY-MM-DD
	// No gorm default tag: a default would make gorm omit false from the
	// INSERT and drafts would come back published. The service layer
	// decides the default.
	IsPublished bool `json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Restaurant User       `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE;"`
	Items      []MenuItem `json:"items,omitempty" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate hook to set UUID before creating a Menu
func (menu *Menu) BeforeCreate(tx *gorm.DB) (err error) {
	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}
	return
}

func (Menu) TableName() string {
	return "menus"
}

const (
	CategoryAppetizer  = "appetizer"
	CategoryMainCourse = "main_course"
	CategoryDessert    = "dessert"
	CategoryBeverage   = "beverage"
)

type MenuItem struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	MenuID      string  `gorm:"type:uuid;not null;index" json:"menu_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"type:decimal(6,2);not null" json:"price"`
	Category    string  `gorm:"size:20;not null" json:"category"`
	IsAvailable bool    `json:"is_available"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
