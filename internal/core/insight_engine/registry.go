package insight_engine

import "strings"

// EntityRegistry is the ordered, read-only list of entity names the relevance
// filter scans for. Matching is case-insensitive substring containment, so
// "Iran" matches inside "Iranian" and "UAE" and "United Arab Emirates" are
// independent entries. Definition order is the canonical output order.
type EntityRegistry struct {
	entities []string
	lowered  []string
}

func NewEntityRegistry(entities []string) *EntityRegistry {
	r := &EntityRegistry{
		entities: make([]string, 0, len(entities)),
		lowered:  make([]string, 0, len(entities)),
	}
	for _, e := range entities {
		if e = strings.TrimSpace(e); e == "" {
			continue
		}
		r.entities = append(r.entities, e)
		r.lowered = append(r.lowered, strings.ToLower(e))
	}
	return r
}

// Entities returns the registry contents in definition order.
func (r *EntityRegistry) Entities() []string {
	out := make([]string, len(r.entities))
	copy(out, r.entities)
	return out
}

func (r *EntityRegistry) Len() int { return len(r.entities) }

// Match scans text once and returns the matched entity names in registry
// definition order.
func (r *EntityRegistry) Match(text string) []string {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)
	var matched []string
	for i, e := range r.lowered {
		if strings.Contains(lowered, e) {
			matched = append(matched, r.entities[i])
		}
	}
	return matched
}
