package viewmodel

import (
	"sort"

	"github.com/example/learnhub/app/models"
)

// GuideGroup is one catalog section on the home page.
type GuideGroup struct {
	Category string
	Label    string
	Guides   []models.Guide
}

// curriculumOrder is the fixed display order of the known categories.
// Categories not listed here sort alphabetically after the known ones.
var curriculumOrder = map[string]int{
	"javascript":   0,
	"typescript":   1,
	"nodejs":       2,
	"react":        3,
	"react-native": 4,
	"tooling":      5,
}

// GroupGuides turns the flat catalog into per-category sections in
// curriculum order.
func GroupGuides(guides []models.Guide) []GuideGroup {
	byCategory := make(map[string][]models.Guide)
	var categories []string
	for _, g := range guides {
		if _, ok := byCategory[g.Category]; !ok {
			categories = append(categories, g.Category)
		}
		byCategory[g.Category] = append(byCategory[g.Category], g)
	}

	sort.Slice(categories, func(i, j int) bool {
		oi, iKnown := curriculumOrder[categories[i]]
		oj, jKnown := curriculumOrder[categories[j]]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return categories[i] < categories[j]
		}
	})

	groups := make([]GuideGroup, 0, len(categories))
	for _, c := range categories {
		groups = append(groups, GuideGroup{
			Category: c,
			Label:    models.TitleFromSlug(c),
			Guides:   byCategory[c],
		})
	}
	return groups
}
