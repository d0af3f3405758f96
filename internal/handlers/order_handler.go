package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"fastfood_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const adminOrderLimit = 50

type OrderHandler struct {
	orderService  services.OrderService
	webhookSecret string
}

func NewOrderHandler(orderService services.OrderService, webhookSecret string) *OrderHandler {
	return &OrderHandler{orderService: orderService, webhookSecret: webhookSecret}
}

func (h *OrderHandler) Place(c *gin.Context) {
	claims := currentClaims(c)

	var req struct {
		Items []struct {
			MenuItemID uint `json:"menuItemId" binding:"required"`
			Quantity   int  `json:"quantity" binding:"required"`
		} `json:"items" binding:"required"`
		Total        float64 `json:"total"`
		CustomerInfo struct {
			Name  string `json:"name" binding:"required"`
			Phone string `json:"phone"`
			Email string `json:"email"`
		} `json:"customerInfo" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	customer := services.CustomerInfo{
		Name:  req.CustomerInfo.Name,
		Phone: req.CustomerInfo.Phone,
		Email: req.CustomerInfo.Email,
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), claims.UserID, lines, req.Total, customer)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			respondError(c, http.StatusBadRequest, "Order has no items")
		case errors.Is(err, services.ErrInvalidQuantity):
			respondError(c, http.StatusBadRequest, "Item quantity must be positive")
		case errors.Is(err, services.ErrItemUnavailable):
			respondError(c, http.StatusBadRequest, "Item not available")
		case errors.Is(err, services.ErrTotalMismatch):
			respondError(c, http.StatusBadRequest, "Order total does not match items")
		default:
			respondError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondOK(c, gin.H{
		"id":            order.ID,
		"total":         order.Total,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
	})
}

func (h *OrderHandler) ListForUser(c *gin.Context) {
	claims := currentClaims(c)

	orders, err := h.orderService.GetOrdersByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	respondOK(c, orders)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orderService.GetLatestOrders(c.Request.Context(), adminOrderLimit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	respondOK(c, orders)
}

func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.orderService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	respondOK(c, stats)
}

// ConfirmPayment is the payment provider callback. It is authenticated by a
// shared webhook secret, not a user token: an order is only marked paid when
// the provider says so, never on the client's word.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	secret := c.GetHeader("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
		respondError(c, http.StatusForbidden, "Invalid webhook signature")
		return
	}

	var req struct {
		OrderID    uint   `json:"order_id" binding:"required"`
		PaymentRef string `json:"payment_ref"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := h.orderService.ConfirmPayment(c.Request.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	respondOK(c, gin.H{"id": order.ID, "paymentStatus": order.PaymentStatus})
}
