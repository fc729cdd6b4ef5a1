package repository

import (
	"io/fs"
	"sync"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	content fs.FS
	repos   *Repositories
	once    sync.Once
}

// Repositories bundles all repository instances
type Repositories struct {
	Guide GuideRepository
}

// NewFactory creates a new repository factory over the content file system
func NewFactory(content fs.FS) *Factory {
	return &Factory{
		content: content,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = &Repositories{
			Guide: NewGuideRepository(f.content),
		}
	})
	return f.repos
}

// GetGuideRepository returns the guide repository instance
func (f *Factory) GetGuideRepository() GuideRepository {
	return f.GetRepositories().Guide
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(content fs.FS) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(content)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}
