package repository

import (
	"context"
	"errors"
	"testing"

	"encuestas/internal/domain"
)

func TestCatalogIsSealed(t *testing.T) {
	catalog := NewCatalog(domain.Survey{ID: "s1", Title: "Encuesta", IsActive: true})

	err := catalog.Insert(context.Background(), domain.Survey{ID: "s2"})
	if !errors.Is(err, ErrCatalogSealed) {
		t.Fatalf("expected ErrCatalogSealed, got %v", err)
	}
	if count, _ := catalog.Count(context.Background()); count != 1 {
		t.Fatalf("expected catalog unchanged, got %d surveys", count)
	}
}

func TestCatalogIgnoresDuplicateIDs(t *testing.T) {
	catalog := NewCatalog(
		domain.Survey{ID: "s1", Title: "Primera", IsActive: true},
		domain.Survey{ID: "s1", Title: "Duplicada", IsActive: true},
	)
	survey, err := catalog.GetByID(context.Background(), "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if survey.Title != "Primera" {
		t.Fatalf("expected first definition to win, got %q", survey.Title)
	}
}

func TestCatalogListActiveFiltersInactive(t *testing.T) {
	catalog := NewCatalog(
		domain.Survey{ID: "s1", IsActive: true},
		domain.Survey{ID: "s2", IsActive: false},
	)
	active, err := catalog.ListActive(context.Background())
	if err != nil || len(active) != 1 || active[0].ID != "s1" {
		t.Fatalf("expected only s1 active, got %+v err=%v", active, err)
	}
}
