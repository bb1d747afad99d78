package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/money"
	"restaurant-backend/internal/storage"
)

var (
	ErrLabelRequired  = errors.New("category label is required")
	ErrFieldsRequired = errors.New("category, title, description and price are required")
)

// cacheWindow is how long a remote snapshot is served before re-fetching.
const cacheWindow = 30 * time.Second

// SeedLocker guards the one-time default seeding when several instances
// share the remote store. A nil locker means seeding is unguarded.
type SeedLocker interface {
	AcquireSeedLock(ctx context.Context) (bool, error)
}

// Service fronts the active catalog backend. In remote mode it holds an
// explicit time-windowed snapshot cache; read failures degrade to the last
// good snapshot, then to the bundled defaults. Storage errors never reach
// the page layer through the read paths.
type Service struct {
	store    storage.CatalogStore
	remote   bool
	log      *logger.Logger
	seedLock SeedLocker

	window time.Duration
	now    func() time.Time

	mutex    sync.RWMutex
	cache    models.Catalog
	cachedAt time.Time
	seeded   bool
}

func NewService(store storage.CatalogStore, remote bool, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		remote: remote,
		log:    log,
		window: cacheWindow,
		now:    time.Now,
	}
}

// SetSeedLock installs the distributed seeding guard.
func (s *Service) SetSeedLock(l SeedLocker) {
	s.seedLock = l
}

// ReadCatalog returns the current (categories, items) snapshot. In remote
// mode the cached snapshot is served while fresh unless force is set.
func (s *Service) ReadCatalog(ctx context.Context, force bool) models.Catalog {
	if !s.remote {
		return s.readLocal(ctx)
	}

	if !force {
		s.mutex.RLock()
		if len(s.cache.Categories) > 0 && s.now().Sub(s.cachedAt) < s.window {
			snapshot := s.cache
			s.mutex.RUnlock()
			return snapshot
		}
		s.mutex.RUnlock()
	}

	snapshot, err := s.fetchRemote(ctx)
	if err != nil {
		s.log.Warn("CATALOG", fmt.Sprintf("Remote fetch failed, serving fallback: %v", err))
		return s.fallback()
	}

	s.mutex.Lock()
	s.cache = snapshot
	s.cachedAt = s.now()
	s.mutex.Unlock()
	return snapshot
}

func (s *Service) readLocal(ctx context.Context) models.Catalog {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		s.log.Error("CATALOG", fmt.Sprintf("Local catalog read failed: %v", err))
		return models.Catalog{Categories: DefaultCategories(), Items: []models.MenuItem{}}
	}
	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		items = []models.MenuItem{}
	}
	return models.Catalog{Categories: cats, Items: items}
}

func (s *Service) fetchRemote(ctx context.Context) (models.Catalog, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return models.Catalog{}, err
	}

	if len(cats) == 0 {
		s.seedDefaults(ctx)
		if cats, err = s.store.ListCategories(ctx); err != nil {
			return models.Catalog{}, err
		}
	}

	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return models.Catalog{}, err
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return models.Catalog{Categories: cats, Items: items}, nil
}

// fallback serves the last good snapshot when one exists, so a remote
// outage never resurfaces the demo dishes over real data. The bundled
// defaults are used only before the first successful fetch, and are never
// written back to the store.
func (s *Service) fallback() models.Catalog {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if len(s.cache.Categories) > 0 {
		return s.cache
	}
	return models.Catalog{Categories: DefaultCategories(), Items: DefaultMenuItems()}
}

// seedDefaults writes the default categories exactly once. Demo menu items
// are never seeded. Failures are swallowed; the read path falls back.
func (s *Service) seedDefaults(ctx context.Context) {
	s.mutex.Lock()
	already := s.seeded
	s.seeded = true
	s.mutex.Unlock()
	if already {
		return
	}

	if s.seedLock != nil {
		ok, err := s.seedLock.AcquireSeedLock(ctx)
		if err != nil {
			s.log.Warn("CATALOG", fmt.Sprintf("Seed lock unavailable: %v", err))
		}
		if err != nil || !ok {
			return
		}
	}

	s.log.LogDatabase("SEED", "remote", "Seeding default categories")
	for _, cat := range DefaultCategories() {
		if err := s.store.UpsertCategory(ctx, cat); err != nil {
			s.log.Error("CATALOG", fmt.Sprintf("Failed to seed category %s: %v", cat.Slug, err))
			return
		}
	}
}

// GetItem resolves one menu item, first from the current snapshot. In
// remote mode a miss falls through to a direct point fetch, which covers
// the staleness window of the cache.
func (s *Service) GetItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	snapshot := s.ReadCatalog(ctx, false)
	for _, item := range snapshot.Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}

	if s.remote {
		item, err := s.store.GetMenuItem(ctx, id)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, storage.ErrItemNotFound) {
			s.log.Warn("CATALOG", fmt.Sprintf("Point fetch for item %d failed: %v", id, err))
		}
	}
	return nil, storage.ErrItemNotFound
}

// WriteCategory slugifies the label (or explicit slug hint), deduplicates
// against existing categories with a numeric suffix, and writes through.
func (s *Service) WriteCategory(ctx context.Context, label, slugHint string) (models.Category, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.Category{}, ErrLabelRequired
	}

	slug := Slugify(slugHint)
	if slug == placeholderSlug {
		slug = Slugify(label)
	}

	existing := make(map[string]bool)
	for _, cat := range s.ReadCatalog(ctx, false).Categories {
		existing[cat.Slug] = true
	}
	slug = uniqueSlug(slug, existing)

	cat := models.Category{Slug: slug, Label: label}
	if err := s.store.UpsertCategory(ctx, cat); err != nil {
		return models.Category{}, fmt.Errorf("failed to write category: %w", err)
	}

	s.invalidate(ctx)
	return cat, nil
}

// WriteItem converts the admin's decimal price text to minor units exactly
// once and writes the item through the active backend.
func (s *Service) WriteItem(ctx context.Context, req models.NewItemRequest) (models.MenuItem, error) {
	if strings.TrimSpace(req.CategorySlug) == "" || strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.Price) == "" {
		return models.MenuItem{}, ErrFieldsRequired
	}

	priceMinor := money.ToMinorUnits(req.Price)
	imagePath := strings.TrimPrefix(strings.TrimSpace(req.ImagePath), "/")
	if imagePath == "" {
		imagePath = "img/placeholder.jpg"
	}

	item := models.MenuItem{
		CategorySlug:    strings.TrimSpace(req.CategorySlug),
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		Price:           money.FormatMinor(priceMinor),
		PriceMinorUnits: priceMinor,
		ImagePath:       imagePath,
		Ingredients:     splitCSV(req.Ingredients),
		Allergens:       splitCSV(req.Allergens),
		WineTitle:       strings.TrimSpace(req.WineTitle),
		WineText:        strings.TrimSpace(req.WineText),
	}

	if _, err := s.store.InsertMenuItem(ctx, &item); err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to write menu item: %w", err)
	}

	s.invalidate(ctx)
	return item, nil
}

// Grouped returns the snapshot's items bucketed by category slug,
// preserving category order for known slugs.
func (s *Service) Grouped(ctx context.Context) (models.Catalog, map[string][]models.MenuItem) {
	snapshot := s.ReadCatalog(ctx, false)
	grouped := make(map[string][]models.MenuItem, len(snapshot.Categories))
	for _, cat := range snapshot.Categories {
		grouped[cat.Slug] = []models.MenuItem{}
	}
	for _, item := range snapshot.Items {
		grouped[item.CategorySlug] = append(grouped[item.CategorySlug], item)
	}
	return snapshot, grouped
}

func (s *Service) invalidate(ctx context.Context) {
	if s.remote {
		s.ReadCatalog(ctx, true)
	}
}

func splitCSV(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}
	var out []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
