package insight_engine

import "github.com/gecf-kip/insight/internal/models"

// FilterResult holds the relevant pages in document order and the accumulated
// entity matches in registry definition order.
type FilterResult struct {
	Pages    []models.Page
	Entities []string
}

// RelevanceFilter selects pages whose text mentions at least one registry
// entity.
type RelevanceFilter struct {
	registry *EntityRegistry
}

func NewRelevanceFilter(registry *EntityRegistry) *RelevanceFilter {
	return &RelevanceFilter{registry: registry}
}

// Filter scans each page's text once. Page order is preserved; the entity
// list collapses duplicates and follows registry definition order regardless
// of where entities first appear.
func (f *RelevanceFilter) Filter(pages []models.Page) FilterResult {
	var result FilterResult
	seen := make(map[string]bool, f.registry.Len())

	for _, page := range pages {
		matched := f.registry.Match(page.Text)
		if len(matched) == 0 {
			continue
		}
		result.Pages = append(result.Pages, page)
		for _, e := range matched {
			seen[e] = true
		}
	}

	for _, e := range f.registry.Entities() {
		if seen[e] {
			result.Entities = append(result.Entities, e)
		}
	}
	return result
}
