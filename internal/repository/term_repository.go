package repository

import (
	"context"

	"github.com/honeynil/headless-broker/internal/models"
)

type TermRepository interface {
	GetTaxonomy(ctx context.Context, name string) (*models.Taxonomy, error)
	ListTaxonomies(ctx context.Context, publicOnly bool) ([]models.Taxonomy, error)
	// Ancestors returns parent ids nearest-first; empty for roots and unknown terms.
	Ancestors(ctx context.Context, taxonomy string, termID int64) ([]int64, error)
	// Create inserts the term. When a term with the same name already exists under the
	// same parent it returns the existing id together with ErrTermExists.
	Create(ctx context.Context, term *models.Term) (int64, error)
	ListTerms(ctx context.Context, taxonomy string, order models.TermOrder, limit int) ([]models.Term, error)
	// ExistingTerms returns the ids among termIDs that belong to taxonomy, in no particular order.
	ExistingTerms(ctx context.Context, taxonomy string, termIDs []int64) ([]int64, error)

	GetObjectTerms(ctx context.Context, objectID int64, taxonomy string) ([]int64, error)
	AddObjectTerms(ctx context.Context, objectID int64, taxonomy string, termIDs []int64) error
	SetObjectTerms(ctx context.Context, objectID int64, taxonomy string, termIDs []int64) error
}
