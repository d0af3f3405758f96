package services

import (
	"context"
	"errors"
	"math"
	"time"

	"fastfood_backend/internal/events"
	"fastfood_backend/internal/models"
	"fastfood_backend/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrItemUnavailable = errors.New("item not available")
	ErrTotalMismatch   = errors.New("order total does not match items")
	ErrOrderNotFound   = errors.New("order not found")
)

// OrderLine is one cart entry as submitted by the client. Price and name
// are resolved from the catalog server-side, never trusted from the cart.
type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

type CustomerInfo struct {
	Name  string
	Phone string
	Email string
}

// StatsCache caches dashboard counters; satisfied by the redis client.
type StatsCache interface {
	GetOrderStats(ctx context.Context) (*models.OrderStats, error)
	SetOrderStats(ctx context.Context, stats *models.OrderStats, ttl time.Duration) error
	InvalidateOrderStats(ctx context.Context) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID uint, lines []OrderLine, clientTotal float64, customer CustomerInfo) (*models.Order, error)
	GetOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error)
	GetLatestOrders(ctx context.Context, limit int) ([]models.Order, error)
	ConfirmPayment(ctx context.Context, orderID uint) (*models.Order, error)
	GetStats(ctx context.Context) (*models.OrderStats, error)
}

type orderService struct {
	orderRepo       repository.OrderRepository
	menuRepo        repository.MenuRepository
	notifier        NotificationService
	publisher       events.Publisher
	cache           StatsCache
	cacheTTL        time.Duration
	restaurantPhone string
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	notifier NotificationService,
	publisher events.Publisher,
	cache StatsCache,
	cacheTTL time.Duration,
	restaurantPhone string,
) OrderService {
	return &orderService{
		orderRepo:       orderRepo,
		menuRepo:        menuRepo,
		notifier:        notifier,
		publisher:       publisher,
		cache:           cache,
		cacheTTL:        cacheTTL,
		restaurantPhone: restaurantPhone,
	}
}

// PlaceOrder snapshots each line from the catalog, recomputes the total and
// writes order plus items atomically. Payment starts out pending; the
// payment webhook flips it to paid.
func (s *orderService) PlaceOrder(ctx context.Context, userID uint, lines []OrderLine, clientTotal float64, customer CustomerInfo) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var items []models.OrderItem
	var total float64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		menuItem, err := s.menuRepo.GetByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrItemUnavailable
			}
			return nil, err
		}
		if !menuItem.IsAvailable {
			return nil, ErrItemUnavailable
		}

		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			ItemName:   menuItem.Name,
			Quantity:   line.Quantity,
			Price:      menuItem.Price,
		})
		total += menuItem.Price * float64(line.Quantity)
	}

	if clientTotal != 0 && math.Abs(clientTotal-total) > 0.01 {
		return nil, ErrTotalMismatch
	}

	order := &models.Order{
		UserID:        userID,
		Total:         total,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		CustomerEmail: customer.Email,
		Status:        "pending",
		PaymentStatus: string(models.PaymentPending),
		Items:         items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to create order")
		return nil, err
	}

	s.publish(ctx, order, events.ActionCreated)
	s.invalidateStats(ctx)

	return order, nil
}

func (s *orderService) GetOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(ctx, userID)
}

func (s *orderService) GetLatestOrders(ctx context.Context, limit int) ([]models.Order, error) {
	return s.orderRepo.GetLatest(ctx, limit)
}

// ConfirmPayment marks the order paid and notifies the restaurant. Calling
// it again for an already paid order is a no-op.
func (s *orderService) ConfirmPayment(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.PaymentStatus == string(models.PaymentPaid) {
		return order, nil
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, string(models.PaymentPaid)); err != nil {
		return nil, err
	}
	order.PaymentStatus = string(models.PaymentPaid)

	s.publish(ctx, order, events.ActionPaid)

	if s.notifier != nil && s.restaurantPhone != "" {
		notification := &OrderNotification{
			OrderID:         order.ID,
			CustomerName:    order.CustomerName,
			CustomerPhone:   order.CustomerPhone,
			Total:           order.Total,
			RestaurantPhone: s.restaurantPhone,
		}
		for _, item := range order.Items {
			notification.Items = append(notification.Items, NotificationItem{
				Name:     item.ItemName,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
		// Delivery failures must not fail the payment confirmation.
		if err := s.notifier.NotifyOrder(notification); err != nil {
			logger.Warn().Err(err).Uint("order_id", order.ID).Msg("Order notification failed")
		}
	}

	return order, nil
}

func (s *orderService) GetStats(ctx context.Context) (*models.OrderStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetOrderStats(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	day, week, month, year := statsWindows(time.Now())

	stats := &models.OrderStats{}
	var err error
	if stats.Today, err = s.orderRepo.CountSince(ctx, day); err != nil {
		return nil, err
	}
	if stats.ThisWeek, err = s.orderRepo.CountSince(ctx, week); err != nil {
		return nil, err
	}
	if stats.ThisMonth, err = s.orderRepo.CountSince(ctx, month); err != nil {
		return nil, err
	}
	if stats.ThisYear, err = s.orderRepo.CountSince(ctx, year); err != nil {
		return nil, err
	}
	if stats.AllTime, err = s.orderRepo.Count(ctx); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetOrderStats(ctx, stats, s.cacheTTL); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache order stats")
		}
	}

	return stats, nil
}

// statsWindows returns inclusive lower bounds for the dashboard windows,
// all in UTC. Bounds are clamped so each wider window contains the narrower
// one: within the first week of a month or year, the month/year windows
// extend into the previous period. This keeps the counts monotone
// (today <= week <= month <= year <= allTime).
func statsWindows(now time.Time) (day, week, month, year time.Time) {
	now = now.UTC()

	day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	week = now.Add(-7 * 24 * time.Hour)

	month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if week.Before(month) {
		month = week
	}

	year = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if month.Before(year) {
		year = month
	}

	return day, week, month, year
}

func (s *orderService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateOrderStats(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate stats cache")
	}
}

func (s *orderService) publish(ctx context.Context, order *models.Order, action string) {
	if s.publisher == nil {
		return
	}
	event := &events.OrderEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		Total:         order.Total,
		PaymentStatus: order.PaymentStatus,
		Action:        action,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn().Err(err).Uint("order_id", order.ID).Str("action", action).Msg("Failed to publish order event")
	}
}
