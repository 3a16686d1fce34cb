package insight_engine

import (
	"reflect"
	"testing"

	"github.com/gecf-kip/insight/internal/models"
)

func gecfTestRegistry() *EntityRegistry {
	return NewEntityRegistry([]string{"Algeria", "Iran", "Nigeria", "Qatar", "Russia", "Venezuela"})
}

func TestRelevanceFilter_OnlyPagesWithMatches(t *testing.T) {
	filter := NewRelevanceFilter(gecfTestRegistry())

	pages := []models.Page{
		{Ordinal: 1, Text: "General market overview with no country names."},
		{Ordinal: 2, Text: "Qatar announced new LNG capacity."},
		{Ordinal: 3, Text: "European storage levels recovered."},
	}

	got := filter.Filter(pages)

	if len(got.Pages) != 1 || got.Pages[0].Ordinal != 2 {
		t.Fatalf("expected only page 2 to be relevant, got %+v", got.Pages)
	}
	if want := []string{"Qatar"}; !reflect.DeepEqual(got.Entities, want) {
		t.Errorf("Entities = %v, want %v", got.Entities, want)
	}
}

func TestRelevanceFilter_EntityOrderFollowsRegistry(t *testing.T) {
	filter := NewRelevanceFilter(gecfTestRegistry())

	// Venezuela appears first in text but last in the registry.
	pages := []models.Page{
		{Ordinal: 1, Text: "Venezuela and Russia discussed output."},
		{Ordinal: 2, Text: "Algeria joined the talks."},
	}

	got := filter.Filter(pages)
	want := []string{"Algeria", "Russia", "Venezuela"}
	if !reflect.DeepEqual(got.Entities, want) {
		t.Errorf("Entities = %v, want %v", got.Entities, want)
	}
}

func TestRelevanceFilter_DuplicatesCollapse(t *testing.T) {
	filter := NewRelevanceFilter(gecfTestRegistry())

	pages := []models.Page{
		{Ordinal: 1, Text: "Qatar expanded."},
		{Ordinal: 2, Text: "Qatar signed contracts with Nigeria."},
	}

	got := filter.Filter(pages)
	want := []string{"Nigeria", "Qatar"}
	if !reflect.DeepEqual(got.Entities, want) {
		t.Errorf("Entities = %v, want %v", got.Entities, want)
	}
	if len(got.Pages) != 2 {
		t.Errorf("expected both pages relevant, got %d", len(got.Pages))
	}
}

func TestRelevanceFilter_PreservesDocumentAndPageOrder(t *testing.T) {
	filter := NewRelevanceFilter(gecfTestRegistry())

	pages := []models.Page{
		{DocumentID: "a", Ordinal: 1, Text: "Russia output steady."},
		{DocumentID: "a", Ordinal: 2, Text: "nothing relevant"},
		{DocumentID: "b", Ordinal: 1, Text: "Iran exports grew."},
		{DocumentID: "b", Ordinal: 2, Text: "Qatar too."},
	}

	got := filter.Filter(pages)
	var order []string
	for _, p := range got.Pages {
		order = append(order, p.DocumentID)
	}
	if want := []string{"a", "b", "b"}; !reflect.DeepEqual(order, want) {
		t.Errorf("page order = %v, want %v", order, want)
	}
}

func TestRelevanceFilter_NoRelevantPages(t *testing.T) {
	filter := NewRelevanceFilter(gecfTestRegistry())

	got := filter.Filter([]models.Page{
		{Ordinal: 1, Text: "Norway and the Netherlands."},
		{Ordinal: 2, Text: ""},
	})

	if len(got.Pages) != 0 {
		t.Errorf("expected no relevant pages, got %d", len(got.Pages))
	}
	if len(got.Entities) != 0 {
		t.Errorf("expected no entities, got %v", got.Entities)
	}
}
