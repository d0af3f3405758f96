package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fastfood_backend/internal/models"
	"fastfood_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type menuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.ListAvailable(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	respondOK(c, items)
}

func (h *MenuHandler) Create(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := h.menuService.CreateItem(c.Request.Context(), item); err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			respondError(c, http.StatusBadRequest, "Price must be greater than zero")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	respondOK(c, item)
}

func (h *MenuHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := h.menuService.UpdateItem(c.Request.Context(), id, item); err != nil {
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound):
			respondError(c, http.StatusNotFound, "Menu item not found")
		case errors.Is(err, services.ErrInvalidPrice):
			respondError(c, http.StatusBadRequest, "Price must be greater than zero")
		default:
			respondError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondMessage(c, "Menu item updated successfully")
}

func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.menuService.RemoveItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			respondError(c, http.StatusNotFound, "Menu item not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	respondMessage(c, "Menu item deleted successfully")
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
