package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/internal/booking"
	"restaurant-backend/internal/cart"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/session"
	"restaurant-backend/internal/utils"
)

type BookingHandler struct {
	bookings *booking.Service
	engine   *cart.Engine
	sessions session.Store
}

func NewBookingHandler(bookings *booking.Service, engine *cart.Engine, sessions session.Store) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		engine:   engine,
		sessions: sessions,
	}
}

// GetBookingPage returns the data the booking form needs: the current
// priced cart view.
func (h *BookingHandler) GetBookingPage(c *gin.Context) {
	ctx := c.Request.Context()
	view := h.engine.BuildView(ctx, h.sessions.GetCart(ctx, sessionID(c)))
	c.JSON(http.StatusOK, utils.SuccessResponse("Booking page", gin.H{"cart": view}))
}

// SubmitBooking validates and persists a reservation snapshot. The session
// cart is cleared only after a successful persist; a failed submission
// leaves it intact for retry.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid booking payload", err.Error()))
		return
	}

	ctx := c.Request.Context()
	sid := sessionID(c)
	userCart := h.sessions.GetCart(ctx, sid)

	b, err := h.bookings.Submit(ctx, req, userCart)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   vErr.Message,
				"reason":  vErr.Reason,
			})
			return
		}
		c.JSON(http.StatusBadGateway, utils.ErrorResponse("Failed to save booking, please retry", err.Error()))
		return
	}

	// Submit cleared the cart value; persist the empty mapping.
	if err := h.sessions.SaveCart(ctx, sid, userCart); err != nil {
		c.JSON(http.StatusOK, utils.SuccessResponse("Booking created, cart not cleared", b))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Booking created", b))
}
