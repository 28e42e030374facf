package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserTypeRestaurant = "restaurant"
	UserTypeEmployee   = "employee"
)

type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	UserType string `gorm:"not null;index" json:"user_type"`        // "restaurant" or "employee"

	// Restaurant fields (nil for employees, so the unique index ignores
	// them). The business ids keep their column names but not the field
	// name RestaurantID: Menu declares foreignKey:RestaurantID, and a
	// same-named field here would make gorm parse that association as
	// has-one on users instead of belongs-to.
	RestaurantName *string `json:"restaurant_name,omitempty"`
	RestaurantCode *string `gorm:"column:restaurant_id;uniqueIndex" json:"restaurant_id,omitempty"` // business id, e.g. R-1A2B3C4D

	// Employee fields
	EmployeeCode *string `gorm:"column:employee_id;uniqueIndex" json:"employee_id,omitempty"` // business id, e.g. E-1A2B3C4D

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook to set UUID and the role-specific business id
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	switch user.UserType {
	case UserTypeRestaurant:
		if user.RestaurantCode == nil {
			id := generateBusinessID("R")
			user.RestaurantCode = &id
		}
	case UserTypeEmployee:
		if user.EmployeeCode == nil {
			id := generateBusinessID("E")
			user.EmployeeCode = &id
		}
	}
	return
}

func generateBusinessID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.New().String()[:8]))
}

func (User) TableName() string {
	return "users"
}
