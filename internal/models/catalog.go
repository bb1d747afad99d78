package models

// Category is a menu section. The slug is URL-safe, unique, and never
// deleted in-flow.
type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// MenuItem is a single dish or drink. PriceMinorUnits of zero means
// "unpriced"; display pricing then falls back to parsing Price.
type MenuItem struct {
	ID              int64    `json:"id"`
	CategorySlug    string   `json:"cat"`
	Title           string   `json:"title"`
	Description     string   `json:"desc"`
	Price           string   `json:"price,omitempty"`
	PriceMinorUnits int64    `json:"price_cents,omitempty"`
	ImagePath       string   `json:"img"`
	Ingredients     []string `json:"ingredients,omitempty"`
	Allergens       []string `json:"allergens,omitempty"`
	WineTitle       string   `json:"wine_title,omitempty"`
	WineText        string   `json:"wine_text,omitempty"`
}

// Catalog is one consistent snapshot of the menu.
type Catalog struct {
	Categories []Category `json:"categories"`
	Items      []MenuItem `json:"items"`
}

// NewCategoryRequest is the admin payload for adding a category.
type NewCategoryRequest struct {
	Label string `json:"label" binding:"required"`
	Slug  string `json:"slug"`
}

// NewItemRequest is the admin payload for adding a menu item. Price arrives
// as decimal text and is converted to minor units exactly once.
type NewItemRequest struct {
	CategorySlug string `json:"category_slug" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Price        string `json:"price" binding:"required"`
	ImagePath    string `json:"image_path"`
	Ingredients  string `json:"ingredients"`
	Allergens    string `json:"allergens"`
	WineTitle    string `json:"wine_title"`
	WineText     string `json:"wine_text"`
}
