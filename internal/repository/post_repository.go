package repository

import (
	"context"

	"github.com/honeynil/headless-broker/internal/models"
)

type PostRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	ListPublished(ctx context.Context, types []string, limit int) ([]models.Post, error)
	PublicPostTypes(ctx context.Context) ([]string, error)
}
