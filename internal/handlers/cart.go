package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/internal/cart"
	"restaurant-backend/internal/session"
	"restaurant-backend/internal/utils"
)

type CartHandler struct {
	engine   *cart.Engine
	sessions session.Store
}

func NewCartHandler(engine *cart.Engine, sessions session.Store) *CartHandler {
	return &CartHandler{engine: engine, sessions: sessions}
}

type cartActionRequest struct {
	Action string `json:"action" form:"action" binding:"required"`
	ItemID int64  `json:"item_id" form:"item_id"`
	Qty    int    `json:"qty" form:"qty"`
}

// GetCart returns the current priced view of the session cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	view := h.engine.BuildView(ctx, h.sessions.GetCart(ctx, sessionID(c)))
	c.JSON(http.StatusOK, utils.SuccessResponse("Cart retrieved", view))
}

// UpdateCart applies one mutation (add, inc, dec, remove, clear) to the
// session cart and returns the rebuilt view. Read-modify-write happens
// within this single request.
func (h *CartHandler) UpdateCart(c *gin.Context) {
	var req cartActionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid cart request", err.Error()))
		return
	}

	ctx := c.Request.Context()
	sid := sessionID(c)
	userCart := h.sessions.GetCart(ctx, sid)

	switch req.Action {
	case "add":
		qty := req.Qty
		if qty == 0 {
			qty = 1
		}
		userCart.Increment(req.ItemID, clampQty(qty))
	case "inc":
		userCart.Increment(req.ItemID, 1)
	case "dec":
		userCart.Decrement(req.ItemID)
	case "remove":
		userCart.Remove(req.ItemID)
	case "clear":
		userCart.Clear()
	default:
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Unknown cart action", req.Action))
		return
	}

	if err := h.sessions.SaveCart(ctx, sid, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to save cart", err.Error()))
		return
	}

	view := h.engine.BuildView(ctx, userCart)
	c.JSON(http.StatusOK, utils.SuccessResponse("Cart updated", view))
}
