package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-backend/internal/booking"
	"restaurant-backend/internal/catalog"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/storage"
	"restaurant-backend/internal/utils"
)

// AdminHandler serves the menu-editing and booking-review surface.
type AdminHandler struct {
	catalog  *catalog.Service
	bookings *booking.Service
}

func NewAdminHandler(catalogSvc *catalog.Service, bookings *booking.Service) *AdminHandler {
	return &AdminHandler{catalog: catalogSvc, bookings: bookings}
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req models.NewCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category payload", err.Error()))
		return
	}

	cat, err := h.catalog.WriteCategory(c.Request.Context(), req.Label, req.Slug)
	if err != nil {
		if errors.Is(err, catalog.ErrLabelRequired) {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Category label is required", ""))
			return
		}
		c.JSON(http.StatusBadGateway, utils.ErrorResponse("Failed to add category", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Category added", cat))
}

func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var req models.NewItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid menu item payload", err.Error()))
		return
	}

	item, err := h.catalog.WriteItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrFieldsRequired) {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Required fields are missing", ""))
			return
		}
		c.JSON(http.StatusBadGateway, utils.ErrorResponse("Failed to add menu item", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Menu item added", item))
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, utils.ErrorResponse("Failed to load bookings", err.Error()))
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Bookings retrieved", bookings))
}

func (h *AdminHandler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid booking id", c.Param("id")))
		return
	}

	b, lines, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Booking not found", ""))
			return
		}
		c.JSON(http.StatusBadGateway, utils.ErrorResponse("Failed to load booking", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Booking retrieved", gin.H{
		"reservation": b,
		"items":       lines,
	}))
}
