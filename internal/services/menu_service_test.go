package services

import (
	"context"
	"testing"

	"fastfood_backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateItemValidatesPrice(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())

	err := svc.CreateItem(context.Background(), &models.MenuItem{Name: "Free Lunch", Price: 0, Category: "Mains"})
	require.ErrorIs(t, err, ErrInvalidPrice)

	err = svc.CreateItem(context.Background(), &models.MenuItem{Name: "Dosa", Price: -10, Category: "Mains"})
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestRemoveItemIsSoftDelete(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)
	ctx := context.Background()

	burger := &models.MenuItem{Name: "Burger", Price: 120, Category: "Mains"}
	fries := &models.MenuItem{Name: "Fries", Price: 60, Category: "Sides"}
	require.NoError(t, svc.CreateItem(ctx, burger))
	require.NoError(t, svc.CreateItem(ctx, fries))

	require.NoError(t, svc.RemoveItem(ctx, fries.ID))

	available, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	require.Equal(t, "Burger", available[0].Name)

	// Soft-deleted items stay resolvable by id for historical orders.
	removed, err := svc.GetItem(ctx, fries.ID)
	require.NoError(t, err)
	require.Equal(t, "Fries", removed.Name)
	require.False(t, removed.IsAvailable)
}

func TestListAvailableSortedByCategoryThenName(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)
	ctx := context.Background()

	for _, item := range []*models.MenuItem{
		{Name: "Lassi", Price: 50, Category: "Drinks"},
		{Name: "Paneer Tikka", Price: 180, Category: "Appetizers"},
		{Name: "Chai", Price: 20, Category: "Drinks"},
	} {
		require.NoError(t, svc.CreateItem(ctx, item))
	}

	items, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "Paneer Tikka", items[0].Name)
	require.Equal(t, "Chai", items[1].Name)
	require.Equal(t, "Lassi", items[2].Name)
}

func TestUpdateItem(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)
	ctx := context.Background()

	item := &models.MenuItem{Name: "Thali", Price: 150, Category: "Mains"}
	require.NoError(t, svc.CreateItem(ctx, item))

	err := svc.UpdateItem(ctx, item.ID, &models.MenuItem{Name: "Special Thali", Price: 200, Category: "Mains"})
	require.NoError(t, err)

	updated, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, "Special Thali", updated.Name)
	require.Equal(t, 200.0, updated.Price)

	err = svc.UpdateItem(ctx, 999, &models.MenuItem{Name: "Ghost", Price: 10, Category: "Mains"})
	require.ErrorIs(t, err, ErrMenuItemNotFound)
}
