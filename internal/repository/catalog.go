package repository

import (
	"context"
	"errors"

	"encuestas/internal/domain"
)

// ErrCatalogSealed se devuelve al intentar agregar encuestas a un catálogo
// ya inicializado.
var ErrCatalogSealed = errors.New("catalog is read-only after initialization")

// Catalog es un SurveyRepository en memoria, inmutable después de su
// construcción. Sirve como catálogo de definiciones para procesos que no
// usan Postgres y como doble de pruebas; al ser de solo lectura puede
// compartirse entre goroutines sin coordinación.
type Catalog struct {
	order   []string
	surveys map[string]domain.Survey
}

// NewCatalog construye el catálogo con las encuestas dadas, en orden.
// Es la única vía de inicialización: no hay registro global ambiente.
func NewCatalog(surveys ...domain.Survey) *Catalog {
	c := &Catalog{surveys: make(map[string]domain.Survey, len(surveys))}
	for _, s := range surveys {
		if _, exists := c.surveys[s.ID]; exists {
			continue
		}
		c.order = append(c.order, s.ID)
		c.surveys[s.ID] = s
	}
	return c
}

func (c *Catalog) GetByID(_ context.Context, id string) (*domain.Survey, error) {
	survey, ok := c.surveys[id]
	if !ok {
		return nil, domain.ErrSurveyNotFound
	}
	return &survey, nil
}

func (c *Catalog) ListActive(_ context.Context) ([]domain.Survey, error) {
	var surveys []domain.Survey
	for _, id := range c.order {
		if s := c.surveys[id]; s.IsActive {
			surveys = append(surveys, s)
		}
	}
	return surveys, nil
}

func (c *Catalog) Insert(_ context.Context, _ domain.Survey) error {
	return ErrCatalogSealed
}

func (c *Catalog) Count(_ context.Context) (int, error) {
	return len(c.surveys), nil
}
