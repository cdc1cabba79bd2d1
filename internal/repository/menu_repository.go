package repository

import (
	"context"

	"github.com/honeynil/headless-broker/internal/models"
)

type MenuRepository interface {
	List(ctx context.Context) ([]models.Menu, error)
	GetByID(ctx context.Context, id int64) (*models.Menu, error)
	GetBySlug(ctx context.Context, slug string) (*models.Menu, error)
	Items(ctx context.Context, menuID int64) ([]models.MenuItem, error)
}
