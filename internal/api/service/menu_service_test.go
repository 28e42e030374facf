package service_test

import (
	"testing"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/repository"
	"github.com/Thiyagu2009/mindtales/internal/api/service"
	"github.com/Thiyagu2009/mindtales/internal/api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuRequest(date string) *dto.CreateMenuRequest {
	return &dto.CreateMenuRequest{
		Date: date,
		Items: []dto.CreateMenuItemDTO{
			{Name: "Tomato soup", Price: 4.50, Category: "appetizer"},
			{Name: "Lunch special", Price: 11.90, Category: "main_course"},
		},
	}
}

func TestCreateMenu_Success(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewMenuService(repository.NewMenuRepository(db))
	restaurant := testutil.CreateRestaurant(t, db, "owner@example.com", "The Bistro")

	menu, err := svc.CreateMenu(restaurant.ID, newMenuRequest(testDay))
	require.NoError(t, err)
	assert.NotEmpty(t, menu.ID)
	assert.Equal(t, testDay, menu.Date)
	assert.Equal(t, "The Bistro", menu.RestaurantName)
	assert.True(t, menu.IsPublished)
	assert.Len(t, menu.Items, 2)
}

func TestCreateMenu_SecondMenuSameDayRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewMenuService(repository.NewMenuRepository(db))
	restaurant := testutil.CreateRestaurant(t, db, "owner@example.com", "The Bistro")

	_, err := svc.CreateMenu(restaurant.ID, newMenuRequest(testDay))
	require.NoError(t, err)

	_, err = svc.CreateMenu(restaurant.ID, newMenuRequest(testDay))
	assert.ErrorIs(t, err, service.ErrMenuExists)

	// A different day and a different restaurant are both fine
	_, err = svc.CreateMenu(restaurant.ID, newMenuRequest("2025-06-03"))
	assert.NoError(t, err)

	other := testutil.CreateRestaurant(t, db, "other@example.com", "Other Place")
	_, err = svc.CreateMenu(other.ID, newMenuRequest(testDay))
	assert.NoError(t, err)
}

func TestMenusPublishedOn_ExcludesDrafts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewMenuService(repository.NewMenuRepository(db))
	restaurant := testutil.CreateRestaurant(t, db, "owner@example.com", "The Bistro")
	other := testutil.CreateRestaurant(t, db, "other@example.com", "Other Place")

	_, err := svc.CreateMenu(restaurant.ID, newMenuRequest(testDay))
	require.NoError(t, err)

	draft := newMenuRequest(testDay)
	unpublished := false
	draft.IsPublished = &unpublished
	_, err = svc.CreateMenu(other.ID, draft)
	require.NoError(t, err)

	page, err := svc.MenusPublishedOn(testDay, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "The Bistro", page.Data[0].RestaurantName)
}

func TestGetMenu_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewMenuService(repository.NewMenuRepository(db))

	_, err := svc.GetMenu("11111111-2222-3333-4444-555555555555")
	assert.ErrorIs(t, err, service.ErrMenuNotFound)
}
