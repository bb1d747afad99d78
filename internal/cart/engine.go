// Package cart derives a priced, denormalized view from the session's
// quantity mapping and the live catalog. The cart itself is never the
// source of pricing: the view is recomputed from current catalog state on
// every read, so stale prices cannot outlive catalog edits.
package cart

import (
	"context"
	"sort"
	"strconv"

	"restaurant-backend/internal/catalog"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/money"
)

// Engine prices carts against a catalog service.
type Engine struct {
	catalog *catalog.Service
}

func NewEngine(catalogSvc *catalog.Service) *Engine {
	return &Engine{catalog: catalogSvc}
}

// BuildView maps cart entries to priced lines. Entries with unparsable ids
// or non-positive quantities are dropped, and entries whose item has
// vanished from the catalog are silently skipped: a stale cart never
// renders a broken line, and totals cover surviving lines only.
func (e *Engine) BuildView(ctx context.Context, c models.Cart) models.CartView {
	view := models.CartView{Lines: []models.CartLine{}}

	// Map iteration order is random; render lines in stable item-id order.
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.ParseInt(keys[i], 10, 64)
		b, _ := strconv.ParseInt(keys[j], 10, 64)
		return a < b
	})

	for _, key := range keys {
		qty := c[key]
		itemID, err := strconv.ParseInt(key, 10, 64)
		if err != nil || qty <= 0 {
			continue
		}

		item, err := e.catalog.GetItem(ctx, itemID)
		if err != nil {
			continue
		}

		unitMinor := item.PriceMinorUnits
		if unitMinor <= 0 {
			unitMinor = money.ToMinorUnits(item.Price)
		}
		lineMinor := unitMinor * int64(qty)

		view.Lines = append(view.Lines, models.CartLine{
			ItemID:              itemID,
			Title:               item.Title,
			ImagePath:           item.ImagePath,
			UnitPriceMinorUnits: unitMinor,
			UnitPriceDisplay:    money.FormatMinor(unitMinor),
			Quantity:            qty,
			LineTotalMinorUnits: lineMinor,
			LineTotalDisplay:    money.FormatMinor(lineMinor),
		})

		view.TotalMinorUnits += lineMinor
		view.TotalQuantity += qty
	}

	view.TotalDisplay = money.FormatMinor(view.TotalMinorUnits)
	return view
}
