package services

import (
	"fmt"
	"strconv"
	"strings"
)

// Sender is the delivery capability: push a text message to a phone number.
// Production wires the WhatsApp gateway client, development logs only.
type Sender interface {
	Send(phone, message string) error
}

type LogSender struct{}

func NewLogSender() Sender {
	return LogSender{}
}

func (LogSender) Send(phone, message string) error {
	logger.Info().Str("phone", phone).Str("body", message).Msg("WhatsApp message (log only)")
	return nil
}

type NotificationItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderNotification struct {
	OrderID         uint
	CustomerName    string
	CustomerPhone   string
	Items           []NotificationItem
	Total           float64
	RestaurantPhone string
}

type NotificationService interface {
	NotifyOrder(n *OrderNotification) error
}

type notificationService struct {
	sender Sender
}

func NewNotificationService(sender Sender) NotificationService {
	return &notificationService{sender: sender}
}

func (s *notificationService) NotifyOrder(n *OrderNotification) error {
	message := FormatOrderMessage(n)
	if err := s.sender.Send(n.RestaurantPhone, message); err != nil {
		logger.Error().Err(err).Uint("order_id", n.OrderID).Msg("Failed to send order notification")
		return err
	}
	return nil
}

// FormatOrderMessage renders the fixed kitchen notification template.
func FormatOrderMessage(n *OrderNotification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ NEW ORDER #%d\n\n", n.OrderID)
	fmt.Fprintf(&b, "👤 Customer: %s\n", n.CustomerName)
	fmt.Fprintf(&b, "📞 Phone: %s\n\n", n.CustomerPhone)
	b.WriteString("📋 Items:\n")
	for _, item := range n.Items {
		fmt.Fprintf(&b, "• %s x%d - ₹%s\n", item.Name, item.Quantity, formatAmount(item.Price*float64(item.Quantity)))
	}
	fmt.Fprintf(&b, "\n💰 Total: ₹%s\n", formatAmount(n.Total))
	b.WriteString("💳 Payment: Paid\n\n")
	b.WriteString("⏰ Estimated time: 15-20 minutes\n")
	fmt.Fprintf(&b, "📞 Customer contact: %s", n.CustomerPhone)
	return b.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
