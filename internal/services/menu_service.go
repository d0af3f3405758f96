package services

import (
	"context"
	"errors"

	"fastfood_backend/internal/models"
	"fastfood_backend/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice     = errors.New("price must be greater than zero")
)

type MenuService interface {
	ListAvailable(ctx context.Context) ([]models.MenuItem, error)
	GetItem(ctx context.Context, id uint) (*models.MenuItem, error)
	CreateItem(ctx context.Context, item *models.MenuItem) error
	UpdateItem(ctx context.Context, id uint, item *models.MenuItem) error
	RemoveItem(ctx context.Context, id uint) error
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	return s.menuRepo.GetAvailable(ctx)
}

func (s *menuService) GetItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *menuService) CreateItem(ctx context.Context, item *models.MenuItem) error {
	if item.Price <= 0 {
		return ErrInvalidPrice
	}
	item.IsAvailable = true
	return s.menuRepo.Create(ctx, item)
}

func (s *menuService) UpdateItem(ctx context.Context, id uint, item *models.MenuItem) error {
	if item.Price <= 0 {
		return ErrInvalidPrice
	}

	existing, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	existing.Name = item.Name
	existing.Price = item.Price
	existing.Category = item.Category
	existing.Description = item.Description
	existing.Image = item.Image

	return s.menuRepo.Update(ctx, existing)
}

// RemoveItem soft-deletes: the row stays behind its availability flag so
// historical order lines can still resolve it.
func (s *menuService) RemoveItem(ctx context.Context, id uint) error {
	err := s.menuRepo.SetAvailability(ctx, id, false)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	return err
}
