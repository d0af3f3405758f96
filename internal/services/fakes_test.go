package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"fastfood_backend/internal/events"
	"fastfood_backend/internal/models"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return errors.New("duplicate email")
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

type fakeMenuRepo struct {
	nextID uint
	items  map[uint]*models.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[uint]*models.MenuItem)}
}

func (f *fakeMenuRepo) Create(_ context.Context, item *models.MenuItem) error {
	f.nextID++
	item.ID = f.nextID
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeMenuRepo) GetByID(_ context.Context, id uint) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeMenuRepo) GetAvailable(_ context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range f.items {
		if item.IsAvailable {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (f *fakeMenuRepo) Update(_ context.Context, item *models.MenuItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeMenuRepo) SetAvailability(_ context.Context, id uint, available bool) error {
	item, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.IsAvailable = available
	return nil
}

type fakeOrderRepo struct {
	nextID uint
	orders map[uint]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	f.nextID++
	order.ID = f.nextID
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uint) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	return &cp, nil
}

func (f *fakeOrderRepo) GetByUserID(_ context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (f *fakeOrderRepo) GetLatest(_ context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (f *fakeOrderRepo) UpdatePaymentStatus(_ context.Context, id uint, status string) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.PaymentStatus = status
	return nil
}

func (f *fakeOrderRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, order := range f.orders {
		if !order.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

type fakePublisher struct {
	events []*events.OrderEvent
}

func (f *fakePublisher) PublishOrderEvent(_ context.Context, event *events.OrderEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

type fakeSender struct {
	phones   []string
	messages []string
	err      error
}

func (f *fakeSender) Send(phone, message string) error {
	if f.err != nil {
		return f.err
	}
	f.phones = append(f.phones, phone)
	f.messages = append(f.messages, message)
	return nil
}

type fakeStatsCache struct {
	stats *models.OrderStats
	sets  int
}

func (f *fakeStatsCache) GetOrderStats(_ context.Context) (*models.OrderStats, error) {
	return f.stats, nil
}

func (f *fakeStatsCache) SetOrderStats(_ context.Context, stats *models.OrderStats, _ time.Duration) error {
	f.stats = stats
	f.sets++
	return nil
}

func (f *fakeStatsCache) InvalidateOrderStats(_ context.Context) error {
	f.stats = nil
	return nil
}
