package repository

import "context"

type UserRepository interface {
	HasCapability(ctx context.Context, userID int64, capability string) (bool, error)
}
