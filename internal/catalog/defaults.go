package catalog

import "restaurant-backend/internal/models"

// DefaultCategories are seeded on first run (both backends). Items are
// never seeded: an operator curates the menu from empty.
func DefaultCategories() []models.Category {
	return []models.Category{
		{Slug: "zakuski", Label: "Закуски"},
		{Slug: "mains", Label: "Основные блюда"},
		{Slug: "desserts", Label: "Десерты"},
		{Slug: "drinks", Label: "Напитки"},
	}
}

// DefaultMenuItems is the bundled demo menu, served only as a read-side
// fallback when the remote store is unreachable and no snapshot has ever
// been fetched. Prices are hand-authored display strings on purpose: the
// money parser must keep handling this encoding.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID: 1, CategorySlug: "zakuski",
			Title:       "Escargots de Bourgogne",
			Price:       "₸18",
			Description: "Бургундские улитки с чесночным травяным маслом и свежей петрушкой",
			ImagePath:   "img/menu/zakuski_1.jpg",
		},
		{
			ID: 2, CategorySlug: "zakuski",
			Title:       "Foie Gras Terrine",
			Price:       "₸24",
			Description: "Террин из утиной печени с инжирным конфитюром и поджаренной бриошью",
			ImagePath:   "img/menu/zakuski_2.jpg",
			Ingredients: []string{"утиная печень", "инжир", "бриошь", "портвейн", "коньяк"},
			Allergens:   []string{"Молочные продукты", "Глютен", "Алкоголь"},
		},
		{
			ID: 3, CategorySlug: "zakuski",
			Title:       "Soupe à l'Oignon",
			Price:       "₸14",
			Description: "Классический луковый суп с сыром Грюйер и гренками из закваски",
			ImagePath:   "img/menu/zakuski_3.jpg",
		},
		{
			ID: 4, CategorySlug: "zakuski",
			Title:       "Huîtres",
			Price:       "₸22",
			Description: "Свежие устрицы с соусом миньонет и лимоном",
			ImagePath:   "img/menu/zakuski_4.jpg",
		},
		{
			ID: 5, CategorySlug: "mains",
			Title:       "Coq au Vin",
			Price:       "$38",
			Description: "Тушеная курица в красном вине с жемчужным луком и грибами",
			ImagePath:   "img/menu/mains_1.jpg",
		},
		{
			ID: 6, CategorySlug: "mains",
			Title:       "Boeuf Bourguignon",
			Price:       "₸42",
			Description: "Медленно тушеная говядина в бургундском винном соусе с корнеплодами",
			ImagePath:   "img/menu/mains_2.jpg",
		},
		{
			ID: 7, CategorySlug: "mains",
			Title:       "Sole Meunière",
			Price:       "$46",
			Description: "Жареная камбала со сливочным маслом, лимоном и каперсами",
			ImagePath:   "img/menu/mains_3.jpg",
		},
		{
			ID: 8, CategorySlug: "desserts",
			Title:       "Crème Brûlée",
			Price:       "₸12",
			Description: "Классический ванильный крем с карамелизированной сахарной корочкой",
			ImagePath:   "img/menu/desserts_1.jpg",
		},
		{
			ID: 9, CategorySlug: "desserts",
			Title:       "Tarte Tatin",
			Price:       "₸14",
			Description: "Перевернутый карамелизированный яблочный тарт с ванильным мороженым",
			ImagePath:   "img/menu/desserts_2.jpg",
		},
		{
			ID: 10, CategorySlug: "desserts",
			Title:       "Soufflé au Chocolat",
			Price:       "₸16",
			Description: "Легкое шоколадное суфле (время приготовления 20 мин)",
			ImagePath:   "img/menu/desserts_3.jpg",
		},
		{
			ID: 11, CategorySlug: "desserts",
			Title:       "Profiteroles",
			Price:       "₸13",
			Description: "Заварные пирожные с ванильным мороженым и теплым шоколадным соусом",
			ImagePath:   "img/menu/desserts_4.jpg",
		},
		{
			ID: 12, CategorySlug: "drinks",
			Title:       "Chardonnay (glass)",
			Price:       "₸11",
			Description: "Сухое белое вино, бокал",
			ImagePath:   "img/menu/drinks_1.jpg",
		},
		{
			ID: 13, CategorySlug: "drinks",
			Title:       "Bordeaux Rouge (glass)",
			Price:       "₸12",
			Description: "Красное вино, бокал",
			ImagePath:   "img/menu/drinks_2.jpg",
		},
		{
			ID: 14, CategorySlug: "drinks",
			Title:       "Espresso",
			Price:       "₸4",
			Description: "Классический эспрессо",
			ImagePath:   "img/menu/drinks_3.jpg",
		},
		{
			ID: 15, CategorySlug: "drinks",
			Title:       "Signature Cocktail",
			Price:       "₸14",
			Description: "Авторский коктейль бармена",
			ImagePath:   "img/menu/drinks_4.jpg",
		},
	}
}
