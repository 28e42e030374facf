package dto

import (
	"github.com/Thiyagu2009/mindtales/internal/api/models"
)

// CreateMenuItemDTO is one dish on a menu being published
type CreateMenuItemDTO struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,oneof=appetizer main_course dessert beverage"`
	IsAvailable *bool   `json:"is_available"`
}

// CreateMenuRequest: payload for a restaurant publishing a daily menu
type CreateMenuRequest struct {
	Date        string              `json:"date" binding:"required,datetime=2006-01-02"`
	IsPublished *bool               `json:"is_published"`
	Items       []CreateMenuItemDTO `json:"items" binding:"required,min=1,dive"`
}

// MenuItemResponse mirrors a stored menu item
type MenuItemResponse struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsAvailable bool    `json:"is_available"`
}

// MenuResponse mirrors a stored menu with its restaurant and items
type MenuResponse struct {
	ID             string             `json:"id"`
	RestaurantID   string             `json:"restaurant_id"`
	RestaurantName string             `json:"restaurant_name"`
	Date           string             `json:"date"`
	IsPublished    bool               `json:"is_published"`
	Items          []MenuItemResponse `json:"items"`
}

// FromModelToMenuResponse converts a Menu model to MenuResponse DTO
func FromModelToMenuResponse(menu *models.Menu) *MenuResponse {
	items := make([]MenuItemResponse, 0, len(menu.Items))
	for _, item := range menu.Items {
		items = append(items, MenuItemResponse{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			IsAvailable: item.IsAvailable,
		})
	}

	name := ""
	if menu.Restaurant.RestaurantName != nil {
		name = *menu.Restaurant.RestaurantName
	}

	return &MenuResponse{
		ID:             menu.ID,
		RestaurantID:   menu.RestaurantID,
		RestaurantName: name,
		Date:           menu.Date,
		IsPublished:    menu.IsPublished,
		Items:          items,
	}
}

// PaginatedMenuResponse for listing the day's menus
type PaginatedMenuResponse struct {
	Data       []MenuResponse `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// NewPaginatedMenuResponse creates a paginated menu response
func NewPaginatedMenuResponse(data []MenuResponse, total, page, pageSize int) *PaginatedMenuResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedMenuResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
