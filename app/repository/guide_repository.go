package repository

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/example/learnhub/app/models"
	"github.com/example/learnhub/internal/pkg/constants"
)

// guideRepository implements the GuideRepository interface over a content
// directory laid out as <category>/<slug>.md. Documents are opaque: only
// file names are read, never file contents.
type guideRepository struct {
	root fs.FS
}

// NewGuideRepository creates a new guide repository over the given content
// file system.
func NewGuideRepository(root fs.FS) GuideRepository {
	return &guideRepository{root: root}
}

// GetAll retrieves the full catalog, ordered by category, then slug.
func (r *guideRepository) GetAll() ([]models.Guide, error) {
	var guides []models.Guide
	err := fs.WalkDir(r.root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		category := path.Dir(p)
		if category == "." {
			// Guides outside a category directory are not part of the catalog.
			return nil
		}
		slug := strings.TrimSuffix(d.Name(), ".md")
		guide := models.Guide{
			Slug:     slug,
			Title:    models.TitleFromSlug(slug),
			Category: category,
			Path:     constants.GuidesRoute + "/" + p,
		}
		if verr := guide.Validate(); verr != nil {
			return verr
		}
		guides = append(guides, guide)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(guides, func(i, j int) bool {
		if guides[i].Category != guides[j].Category {
			return guides[i].Category < guides[j].Category
		}
		return guides[i].Slug < guides[j].Slug
	})
	return guides, nil
}

// GetByCategory retrieves all guides within one category.
func (r *guideRepository) GetByCategory(category string) ([]models.Guide, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	var guides []models.Guide
	for _, g := range all {
		if g.Category == category {
			guides = append(guides, g)
		}
	}
	return guides, nil
}

// GetBySlug retrieves a guide by its slug.
func (r *guideRepository) GetBySlug(slug string) (*models.Guide, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for _, g := range all {
		if g.Slug == slug {
			return &g, nil
		}
	}
	return nil, ErrGuideNotFound
}

// Categories retrieves the distinct category names, sorted.
func (r *guideRepository) Categories() ([]string, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, g := range all {
		if !seen[g.Category] {
			seen[g.Category] = true
			categories = append(categories, g.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Count returns the number of guides in the catalog.
func (r *guideRepository) Count() (int, error) {
	all, err := r.GetAll()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
