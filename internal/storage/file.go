package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

// FileCatalogStore keeps the whole catalog in one human-diffable JSON file
// of the shape {"categories": [...], "items": [...]}. Every mutation
// rewrites the file wholesale.
type FileCatalogStore struct {
	path     string
	seedCats []models.Category
	log      *logger.Logger
	mutex    sync.Mutex
}

func NewFileCatalogStore(path string, seedCats []models.Category, log *logger.Logger) *FileCatalogStore {
	return &FileCatalogStore{
		path:     path,
		seedCats: seedCats,
		log:      log,
	}
}

// load reads and validates the catalog file. A present file with a
// non-empty category list is trusted verbatim, including an empty item
// list, so an operator can curate the menu from empty. A missing or
// unparsable file seeds the default categories with no items; the demo
// dishes are intentionally never repopulated.
func (s *FileCatalogStore) load() models.Catalog {
	data, err := os.ReadFile(s.path)
	if err == nil {
		var cat models.Catalog
		if jsonErr := json.Unmarshal(data, &cat); jsonErr == nil && len(cat.Categories) > 0 {
			if cat.Items == nil {
				cat.Items = []models.MenuItem{}
			}
			return cat
		}
	}

	seeded := models.Catalog{
		Categories: append([]models.Category(nil), s.seedCats...),
		Items:      []models.MenuItem{},
	}
	if err := s.save(seeded); err != nil {
		s.log.Error("CATALOG", fmt.Sprintf("Failed to seed catalog file %s: %v", s.path, err))
	} else {
		s.log.LogDatabase("SEED", "file", fmt.Sprintf("Seeded %s with default categories", s.path))
	}
	return seeded
}

func (s *FileCatalogStore) save(cat models.Catalog) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

func (s *FileCatalogStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.load().Categories, nil
}

func (s *FileCatalogStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.load().Items, nil
}

func (s *FileCatalogStore) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, item := range s.load().Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *FileCatalogStore) UpsertCategory(ctx context.Context, cat models.Category) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	catalog := s.load()
	for i, existing := range catalog.Categories {
		if existing.Slug == cat.Slug {
			catalog.Categories[i].Label = cat.Label
			return s.save(catalog)
		}
	}
	catalog.Categories = append(catalog.Categories, cat)
	return s.save(catalog)
}

// InsertMenuItem assigns the next id above the current maximum and
// persists the item.
func (s *FileCatalogStore) InsertMenuItem(ctx context.Context, item *models.MenuItem) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	catalog := s.load()
	var maxID int64
	for _, existing := range catalog.Items {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	item.ID = maxID + 1
	catalog.Items = append(catalog.Items, *item)
	if err := s.save(catalog); err != nil {
		return 0, err
	}
	return item.ID, nil
}
