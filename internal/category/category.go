// Package category finds or creates store categories by their free-text names.
package category

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/MichalMitros/feed-importer/internal/textnorm"
	"github.com/google/uuid"
)

//go:generate mockery --name Storage --filename storage.go

const (
	fallbackSlug  = "category"
	maxSlugLength = 100
	createRetries = 3
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	pathSeparators  = regexp.MustCompile(`\s*[>»]\s*`)
)

// Storage is categories storage.
type Storage interface {
	// FindCategory returns category with name (case-insensitive) under parent, nil parent means root level.
	// Returns platform.ErrNotFound if there is no such category.
	FindCategory(ctx context.Context, storeID string, parentID *string, name string) (*models.Category, error)
	// CategorySlugs returns store's slugs equal to base or starting with "base-".
	CategorySlugs(ctx context.Context, storeID, base string) ([]string, error)
	// CreateCategory stores new category. Returns platform.ErrDuplicate on unique constraint violation.
	CreateCategory(ctx context.Context, category *models.Category) error
}

// Resolver resolves category names to ids, creating missing categories.
type Resolver struct {
	storage Storage
}

// NewResolver returns new Resolver.
func NewResolver(storage Storage) *Resolver {
	return &Resolver{
		storage: storage,
	}
}

// ResolveOrCreate returns id of store's category named name under parent (root for nil parent).
// The category is created when it doesn't exist. Concurrent creation of the same category
// is detected by storage's unique constraint and resolved by fetching the winner.
func (r *Resolver) ResolveOrCreate(ctx context.Context, storeID, name string, parentID *string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty category name", platform.ErrInvalidInput)
	}

	for attempt := 0; attempt < createRetries; attempt++ {
		found, err := r.storage.FindCategory(ctx, storeID, parentID, name)
		if err == nil {
			return found.ID, nil
		}
		if !errors.Is(err, platform.ErrNotFound) {
			return "", fmt.Errorf("can't find category %q: %w", name, err)
		}

		base := Slugify(name)
		existing, err := r.storage.CategorySlugs(ctx, storeID, base)
		if err != nil {
			return "", fmt.Errorf("can't get category slugs: %w", err)
		}

		category := &models.Category{
			ID:       uuid.NewString(),
			StoreID:  storeID,
			ParentID: parentID,
			Name:     name,
			Slug:     uniqueSlug(base, existing),
		}

		err = r.storage.CreateCategory(ctx, category)
		if err == nil {
			return category.ID, nil
		}
		if !errors.Is(err, platform.ErrDuplicate) {
			return "", fmt.Errorf("can't create category %q: %w", name, err)
		}
	}

	return "", fmt.Errorf("can't create category %q: %w", name, platform.ErrDuplicate)
}

// ResolvePath resolves breadcrumb path ("Elektronik > Telefon") level by level
// and returns id of the last category.
func (r *Resolver) ResolvePath(ctx context.Context, storeID, path string) (string, error) {
	var (
		parentID *string
		id       string
	)

	levels := pathSeparators.Split(strings.TrimSpace(path), -1)
	for _, level := range levels {
		if strings.TrimSpace(level) == "" {
			continue
		}

		resolved, err := r.ResolveOrCreate(ctx, storeID, level, parentID)
		if err != nil {
			return "", err
		}

		id = resolved
		parentID = &resolved
	}

	if id == "" {
		return "", fmt.Errorf("%w: empty category path", platform.ErrInvalidInput)
	}

	return id, nil
}

// Slugify converts category name into URL slug ("Ev & Yaşam" becomes "ev-yasam").
func Slugify(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(textnorm.Fold(name), "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}

	if slug == "" {
		return fallbackSlug
	}

	return slug
}

func uniqueSlug(base string, existing []string) string {
	if !slices.Contains(existing, base) {
		return base
	}

	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !slices.Contains(existing, candidate) {
			return candidate
		}
	}
}
