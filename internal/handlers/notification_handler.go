package handlers

import (
	"net/http"

	"fastfood_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// OrderNotification relays an order summary to the restaurant's phone.
func (h *NotificationHandler) OrderNotification(c *gin.Context) {
	var req struct {
		OrderID         uint                         `json:"orderId" binding:"required"`
		CustomerName    string                       `json:"customerName" binding:"required"`
		CustomerPhone   string                       `json:"customerPhone"`
		Items           []services.NotificationItem  `json:"items" binding:"required"`
		Total           float64                      `json:"total"`
		RestaurantPhone string                       `json:"restaurantPhone" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	notification := &services.OrderNotification{
		OrderID:         req.OrderID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Items:           req.Items,
		Total:           req.Total,
		RestaurantPhone: req.RestaurantPhone,
	}

	if err := h.notificationService.NotifyOrder(notification); err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	respondMessage(c, "Notification sent")
}
