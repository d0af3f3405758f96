package repository

import (
	"context"

	"fastfood_backend/internal/models"

	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id uint) (*models.MenuItem, error)
	GetAvailable(ctx context.Context) ([]models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
	SetAvailability(ctx context.Context, id uint, available bool) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID resolves any item, including soft-deleted ones, so historical
// order lines stay dereferenceable.
func (r *menuRepository) GetByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetAvailable(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("category, name").
		Find(&items).Error
	return items, err
}

func (r *menuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) SetAvailability(ctx context.Context, id uint, available bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Update("is_available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
