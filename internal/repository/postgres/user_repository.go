package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) HasCapability(ctx context.Context, userID int64, capability string) (ok bool, err error) {
	ctx, done := startCall(ctx, "HasCapability")
	defer func() { done(err) }()

	query := `SELECT EXISTS (SELECT 1 FROM user_capabilities WHERE user_id = $1 AND capability = $2)`
	if err = r.db.QueryRowContext(ctx, query, userID, capability).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check capability: %w", err)
	}
	return ok, nil
}
