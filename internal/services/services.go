package service

import (
	"context"

	"github.com/honeynil/headless-broker/internal/models"
	"github.com/honeynil/headless-broker/internal/repository"
)

const tracerName = "headless-broker"

// canEditPost grants access to holders of edit_others_<type>s, and to the post's
// author when they hold edit_<type>s.
func canEditPost(ctx context.Context, users repository.UserRepository, userID int64, post *models.Post) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	ok, err := users.HasCapability(ctx, userID, models.EditOthersCapability(post.Type))
	if err != nil || ok {
		return ok, err
	}
	if post.AuthorID != userID {
		return false, nil
	}
	return users.HasCapability(ctx, userID, models.EditCapability(post.Type))
}

// clampLimit maps an unset (zero) limit to def and keeps the rest within [1, max].
func clampLimit(limit, def, max int) int {
	switch {
	case limit == 0:
		return def
	case limit < 1:
		return 1
	case limit > max:
		return max
	}
	return limit
}
