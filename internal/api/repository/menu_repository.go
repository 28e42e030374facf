package repository

import (
	"github.com/Thiyagu2009/mindtales/internal/api/models"

	"gorm.io/gorm"
)

// MenuRepository handles database operations for menus. The voting core
// only reads menus; writes come from the restaurant-facing endpoints.
type MenuRepository interface {
	Create(menu *models.Menu) error
	GetByID(id string) (*models.Menu, error)
	GetByIDs(ids []string) ([]models.Menu, error)
	CountExisting(ids []string) (int64, error)
	PublishedOn(day string, page, pageSize int) ([]models.Menu, int64, error)
}

// menuRepository is the GORM implementation of MenuRepository
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new instance of MenuRepository
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// Create inserts a menu together with its items. The unique index on
// (restaurant_id, date) rejects a second menu for the same day.
func (r *menuRepository) Create(menu *models.Menu) error {
	return r.db.Create(menu).Error
}

func (r *menuRepository) GetByID(id string) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.Where("id = ?", id).
		Preload("Items").
		Preload("Restaurant").
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) GetByIDs(ids []string) ([]models.Menu, error) {
	var menus []models.Menu
	err := r.db.Where("id IN ?", ids).
		Preload("Items").
		Preload("Restaurant").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// CountExisting counts how many of the given menu ids actually exist
func (r *menuRepository) CountExisting(ids []string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Menu{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// PublishedOn retrieves all published menus for a day with pagination
func (r *menuRepository) PublishedOn(day string, page, pageSize int) ([]models.Menu, int64, error) {
	var menus []models.Menu
	var total int64

	query := r.db.Model(&models.Menu{}).Where("date = ? AND is_published = ?", day, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Items").
		Preload("Restaurant").
		Order("created_at ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&menus).Error
	if err != nil {
		return nil, 0, err
	}

	return menus, total, nil
}
