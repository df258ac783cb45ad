package trendyol

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/cache"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/MichalMitros/feed-importer/internal/textnorm"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go

var breadcrumbSeparator = regexp.MustCompile(`\s*[>»]\s*`)

// Storage provides store's marketplace connections.
type Storage interface {
	ActiveConnections(ctx context.Context, storeID string) ([]models.MarketplaceConnection, error)
	GetConnection(ctx context.Context, storeID, connectionID string) (*models.MarketplaceConnection, error)
}

// categoryIndex maps folded category paths and names to category ids.
type categoryIndex struct {
	Paths map[string]int64 `json:"paths"`
	Names map[string]int64 `json:"names"`
}

// Service resolves Trendyol ids of store's brands and categories and checks store's connections.
// Resolved ids are cached, names unknown to Trendyol are cached as zero ids.
type Service struct {
	storage Storage
	clients *ClientFactory
	cache   cache.Cache
	ttl     time.Duration
}

// NewService returns new Service caching resolved ids for ttl.
func NewService(storage Storage, clients *ClientFactory, c cache.Cache, ttl time.Duration) *Service {
	return &Service{
		storage: storage,
		clients: clients,
		cache:   c,
		ttl:     ttl,
	}
}

// BrandID returns Trendyol id of brand or 0 when the brand is unknown or store has no active Trendyol connection.
func (s *Service) BrandID(ctx context.Context, storeID, brand string) (int64, error) {
	folded := textnorm.Fold(strings.TrimSpace(brand))
	if folded == "" {
		return 0, nil
	}

	key := cacheKey("brand", storeID, folded)

	var id int64
	err := s.cache.Get(ctx, key, &id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		return 0, fmt.Errorf("can't get cached brand: %w", err)
	}

	client, err := s.client(ctx, storeID)
	if err != nil || client == nil {
		return 0, err
	}

	brands, err := client.BrandsByName(ctx, strings.TrimSpace(brand))
	if err != nil {
		return 0, err
	}

	if match, ok := lo.Find(brands, func(b Brand) bool { return textnorm.Fold(b.Name) == folded }); ok {
		id = match.ID
	}

	if err := s.cache.Set(ctx, key, id, s.ttl); err != nil {
		return id, fmt.Errorf("can't cache brand: %w", err)
	}

	return id, nil
}

// CategoryID returns Trendyol id of category or 0 when the category is unknown
// or store has no active Trendyol connection.
// Breadcrumb paths are matched as a whole first, then by their last level.
func (s *Service) CategoryID(ctx context.Context, storeID, category string) (int64, error) {
	levels := lo.Compact(lo.Map(breadcrumbSeparator.Split(category, -1), func(level string, _ int) string {
		return textnorm.Fold(strings.TrimSpace(level))
	}))
	if len(levels) == 0 {
		return 0, nil
	}

	index, err := s.categories(ctx, storeID)
	if err != nil || index == nil {
		return 0, err
	}

	if id, ok := index.Paths[strings.Join(levels, " > ")]; ok {
		return id, nil
	}

	return index.Names[levels[len(levels)-1]], nil
}

// CheckConnection verifies credentials of store's Trendyol connection.
func (s *Service) CheckConnection(ctx context.Context, storeID, connectionID string) error {
	conn, err := s.storage.GetConnection(ctx, storeID, connectionID)
	if err != nil {
		return fmt.Errorf("can't get connection: %w", err)
	}

	if conn.Marketplace != Marketplace {
		return fmt.Errorf("marketplace %q can't be checked: %w", conn.Marketplace, platform.ErrInvalidInput)
	}

	return s.clients.Client(*conn).CheckCredentials(ctx)
}

func (s *Service) categories(ctx context.Context, storeID string) (*categoryIndex, error) {
	key := cacheKey("categories", storeID)

	var index categoryIndex
	err := s.cache.Get(ctx, key, &index)
	if err == nil {
		return &index, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		return nil, fmt.Errorf("can't get cached categories: %w", err)
	}

	client, err := s.client(ctx, storeID)
	if err != nil || client == nil {
		return nil, err
	}

	tree, err := client.Categories(ctx)
	if err != nil {
		return nil, err
	}

	index = newCategoryIndex(tree)
	if err := s.cache.Set(ctx, key, index, s.ttl); err != nil {
		return &index, fmt.Errorf("can't cache categories: %w", err)
	}

	return &index, nil
}

// client returns client of store's active Trendyol connection or nil if there is none.
func (s *Service) client(ctx context.Context, storeID string) (*Client, error) {
	connections, err := s.storage.ActiveConnections(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("can't get connections: %w", err)
	}

	conn, ok := lo.Find(connections, func(c models.MarketplaceConnection) bool {
		return c.Marketplace == Marketplace
	})
	if !ok {
		return nil, nil
	}

	return s.clients.Client(conn), nil
}

func cacheKey(parts ...string) string {
	return Marketplace + ":" + strings.Join(parts, ":")
}

// newCategoryIndex flattens category tree. Leaf categories win name collisions.
func newCategoryIndex(tree []Category) categoryIndex {
	index := categoryIndex{
		Paths: make(map[string]int64),
		Names: make(map[string]int64),
	}

	var walk func(categories []Category, prefix string)
	walk = func(categories []Category, prefix string) {
		for _, category := range categories {
			name := textnorm.Fold(strings.TrimSpace(category.Name))
			path := name
			if prefix != "" {
				path = prefix + " > " + name
			}

			index.Paths[path] = category.ID

			isLeaf := len(category.SubCategories) == 0
			if _, taken := index.Names[name]; isLeaf || !taken {
				index.Names[name] = category.ID
			}

			walk(category.SubCategories, path)
		}
	}
	walk(tree, "")

	return index
}
