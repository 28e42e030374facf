package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/models"
	"github.com/Thiyagu2009/mindtales/internal/api/service"
	"github.com/Thiyagu2009/mindtales/internal/metrics"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService service.MenuService
	collector   *metrics.Collector
}

func NewMenuHandler(menuService service.MenuService, collector *metrics.Collector) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		collector:   collector,
	}
}

// RegisterRestaurantRoutes registers the restaurant-only menu routes
func (h *MenuHandler) RegisterRestaurantRoutes(router *gin.RouterGroup) {
	router.POST("/restaurant/menu", h.Create)
}

// RegisterPublicRoutes registers the authenticated read routes
func (h *MenuHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/menu/today", h.Today)
}

// Create handles POST /api/restaurant/menu
func (h *MenuHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail(dto.CodeUnauthorized, "User not authenticated"))
		return
	}

	var req dto.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.FailWith(dto.CodeValidationFailed, "Menu creation failed", err.Error()))
		return
	}

	menu, err := h.menuService.CreateMenu(userID.(string), &req)
	if err != nil {
		if errors.Is(err, service.ErrMenuExists) {
			c.JSON(http.StatusConflict, dto.Fail(dto.CodeMenuExists, "A menu already exists for this date"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Fail(dto.CodeInternal, "Menu creation failed"))
		return
	}

	h.collector.RecordMenuPublished()
	c.JSON(http.StatusCreated, dto.OK("Menu created successfully", menu))
}

// Today handles GET /api/menu/today?page=1&page_size=10
func (h *MenuHandler) Today(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	today := models.Day(time.Now())
	menus, err := h.menuService.MenusPublishedOn(today, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Fail(dto.CodeInternal, "Failed to fetch today's menus"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("Today's menus fetched successfully", menus))
}
