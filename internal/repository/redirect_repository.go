package repository

import (
	"context"

	"github.com/honeynil/headless-broker/internal/models"
)

type RedirectRepository interface {
	// ListEnabled returns enabled redirects with a url action, ordered by position.
	ListEnabled(ctx context.Context) ([]models.Redirect, error)
	GroupNames(ctx context.Context) (map[int64]string, error)
}
