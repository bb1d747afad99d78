package models

import "strconv"

// Cart is the session-scoped quantity mapping, keyed by the item id as a
// string so it survives serialization round-trips. It is mutated through
// the methods below and serialized only at the session boundary.
type Cart map[string]int

// Increment adds qty to an item's entry, creating it if needed.
func (c Cart) Increment(itemID int64, qty int) {
	if qty <= 0 {
		return
	}
	key := strconv.FormatInt(itemID, 10)
	c[key] += qty
}

// Decrement lowers an item's quantity by one, removing the entry when it
// reaches zero. Entries with quantity <= 0 are never stored.
func (c Cart) Decrement(itemID int64) {
	key := strconv.FormatInt(itemID, 10)
	if cur, ok := c[key]; ok {
		if cur-1 <= 0 {
			delete(c, key)
		} else {
			c[key] = cur - 1
		}
	}
}

// Remove drops an item's entry entirely.
func (c Cart) Remove(itemID int64) {
	delete(c, strconv.FormatInt(itemID, 10))
}

// Clear empties the cart in place.
func (c Cart) Clear() {
	for k := range c {
		delete(c, k)
	}
}

// Clean purges invalid entries (unparsable keys, non-positive quantities).
func (c Cart) Clean() {
	for k, qty := range c {
		if qty <= 0 {
			delete(c, k)
			continue
		}
		if _, err := strconv.ParseInt(k, 10, 64); err != nil {
			delete(c, k)
		}
	}
}

// CartLine is one denormalized, priced row of the cart view. It is computed
// fresh on every read and never cached beyond a single request.
type CartLine struct {
	ItemID              int64  `json:"id"`
	Title               string `json:"title"`
	ImagePath           string `json:"img"`
	UnitPriceMinorUnits int64  `json:"unit_price_cents"`
	UnitPriceDisplay    string `json:"price_str"`
	Quantity            int    `json:"qty"`
	LineTotalMinorUnits int64  `json:"line_total_cents"`
	LineTotalDisplay    string `json:"line_str"`
}

// CartView is the priced rendering of a cart against the current catalog.
type CartView struct {
	Lines           []CartLine `json:"items"`
	TotalDisplay    string     `json:"total"`
	TotalQuantity   int        `json:"count"`
	TotalMinorUnits int64      `json:"total_cents"`
}
