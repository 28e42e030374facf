package service

import (
	"errors"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/models"
	"github.com/Thiyagu2009/mindtales/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrMenuExists   = errors.New("menu already exists for this date")
	ErrMenuNotFound = errors.New("menu not found")
)

type MenuService interface {
	CreateMenu(restaurantID string, req *dto.CreateMenuRequest) (*dto.MenuResponse, error)
	GetMenu(menuID string) (*dto.MenuResponse, error)
	MenusPublishedOn(day string, page, pageSize int) (*dto.PaginatedMenuResponse, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

// CreateMenu publishes a restaurant's menu for a date. The storage
// unique index on (restaurant_id, date) rejects a second menu for the
// same restaurant and day.
func (s *menuService) CreateMenu(restaurantID string, req *dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	items := make([]models.MenuItem, 0, len(req.Items))
	for _, item := range req.Items {
		available := true
		if item.IsAvailable != nil {
			available = *item.IsAvailable
		}
		items = append(items, models.MenuItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			IsAvailable: available,
		})
	}

	menu := &models.Menu{
		RestaurantID: restaurantID,
		Date:         req.Date,
		IsPublished:  published,
		Items:        items,
	}

	if err := s.menuRepo.Create(menu); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMenuExists
		}
		return nil, err
	}

	// Reload with restaurant association for the response
	created, err := s.menuRepo.GetByID(menu.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToMenuResponse(created), nil
}

func (s *menuService) GetMenu(menuID string) (*dto.MenuResponse, error) {
	menu, err := s.menuRepo.GetByID(menuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return dto.FromModelToMenuResponse(menu), nil
}

// MenusPublishedOn lists every restaurant's published menu for the day
func (s *menuService) MenusPublishedOn(day string, page, pageSize int) (*dto.PaginatedMenuResponse, error) {
	menus, total, err := s.menuRepo.PublishedOn(day, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MenuResponse, 0, len(menus))
	for i := range menus {
		responses = append(responses, *dto.FromModelToMenuResponse(&menus[i]))
	}

	return dto.NewPaginatedMenuResponse(responses, int(total), page, pageSize), nil
}
