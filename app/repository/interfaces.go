package repository

import (
	"errors"

	"github.com/example/learnhub/app/models"
)

// ErrGuideNotFound is returned when no guide matches the requested slug.
var ErrGuideNotFound = errors.New("guide not found")

// GuideRepository defines the interface for reading the guide catalog.
// The catalog is immutable at runtime: guides are authored on disk, there
// are no create/update/delete operations.
type GuideRepository interface {
	GetAll() ([]models.Guide, error)
	GetByCategory(category string) ([]models.Guide, error)
	GetBySlug(slug string) (*models.Guide, error)
	Categories() ([]string, error)
	Count() (int, error)
}
