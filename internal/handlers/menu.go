package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-backend/internal/cart"
	"restaurant-backend/internal/catalog"
	"restaurant-backend/internal/session"
	"restaurant-backend/internal/utils"
)

// defaultWineText is shown on dish pages that have no sommelier note yet.
const (
	defaultWineTitle = "Винное сопровождение"
	defaultWineText  = "Наш сомелье рекомендует сочетать это блюдо с избранными винами из нашей " +
		"тщательно подобранной винной карты. Спросите вашего официанта о персональных " +
		"рекомендациях для улучшения вашего гастрономического опыта."
)

var categoryBadges = map[string]string{
	"zakuski":  "Закуска",
	"mains":    "Основное блюдо",
	"desserts": "Десерт",
	"drinks":   "Напиток",
}

type MenuHandler struct {
	catalog  *catalog.Service
	engine   *cart.Engine
	sessions session.Store
}

func NewMenuHandler(catalogSvc *catalog.Service, engine *cart.Engine, sessions session.Store) *MenuHandler {
	return &MenuHandler{
		catalog:  catalogSvc,
		engine:   engine,
		sessions: sessions,
	}
}

// GetMenu returns the categories and items grouped by section. An unknown
// section falls back to the first category.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	ctx := c.Request.Context()
	snapshot, grouped := h.catalog.Grouped(ctx)

	section := c.Query("section")
	known := false
	for _, cat := range snapshot.Categories {
		if cat.Slug == section {
			known = true
			break
		}
	}
	if !known && len(snapshot.Categories) > 0 {
		section = snapshot.Categories[0].Slug
	}

	view := h.engine.BuildView(ctx, h.sessions.GetCart(ctx, sessionID(c)))

	c.JSON(http.StatusOK, utils.SuccessResponse("Menu retrieved", gin.H{
		"categories":     snapshot.Categories,
		"active_section": section,
		"grouped":        grouped,
		"cart":           view,
	}))
}

// GetDish returns one item's detail page data. The quantity query value is
// clamped to [1, 99].
func (h *MenuHandler) GetDish(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid dish id", c.Param("id")))
		return
	}

	item, err := h.catalog.GetItem(ctx, itemID)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Dish not found", ""))
		return
	}

	if item.Ingredients == nil {
		item.Ingredients = []string{}
	}
	if item.Allergens == nil {
		item.Allergens = []string{}
	}
	if item.WineTitle == "" {
		item.WineTitle = defaultWineTitle
	}
	if item.WineText == "" {
		item.WineText = defaultWineText
	}

	qty := 1
	if v, err := strconv.Atoi(c.DefaultQuery("qty", "1")); err == nil {
		qty = v
	}
	qty = clampQty(qty)

	badge, ok := categoryBadges[item.CategorySlug]
	if !ok {
		badge = "Блюдо"
	}

	view := h.engine.BuildView(ctx, h.sessions.GetCart(ctx, sessionID(c)))

	c.JSON(http.StatusOK, utils.SuccessResponse("Dish retrieved", gin.H{
		"item":           item,
		"qty":            qty,
		"category_badge": badge,
		"cart":           view,
	}))
}

func clampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > 99 {
		return 99
	}
	return qty
}
