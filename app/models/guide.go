package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Guide is one markdown document in the catalog. The document itself is
// opaque content served as a static file; only file-system metadata is
// modeled here.
type Guide struct {
	Slug     string `json:"slug" validate:"required,min=1,max=255"`
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"required,min=1,max=64"`
	Path     string `json:"path" validate:"required"`
}

func (g *Guide) Validate() error {
	v := validator.New()
	return v.Struct(g)
}

// Terms that stay upper/mixed case when a slug is turned into a title.
var titleCasing = map[string]string{
	"js":         "JS",
	"jsx":        "JSX",
	"api":        "API",
	"apis":       "APIs",
	"css":        "CSS",
	"html":       "HTML",
	"dom":        "DOM",
	"npm":        "npm",
	"cli":        "CLI",
	"ui":         "UI",
	"typescript": "TypeScript",
	"javascript": "JavaScript",
	"nodejs":     "Node.js",
	"graphql":    "GraphQL",
	"rest":       "REST",
	"vs":         "vs",
}

// TitleFromSlug derives a display title from a file slug, e.g.
// "event-loop" -> "Event Loop". File contents are never read.
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		if cased, ok := titleCasing[strings.ToLower(w)]; ok {
			words[i] = cased
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
