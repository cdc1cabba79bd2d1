package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/honeynil/headless-broker/internal/models"
)

type PostgresRedirectRepository struct {
	db *sql.DB
}

func NewPostgresRedirectRepository(db *sql.DB) *PostgresRedirectRepository {
	return &PostgresRedirectRepository{db: db}
}

func (r *PostgresRedirectRepository) ListEnabled(ctx context.Context) (redirects []models.Redirect, err error) {
	ctx, done := startCall(ctx, "ListRedirects")
	defer func() { done(err) }()

	query := `
		SELECT id, source, target, status_code, regex, position, group_id
		FROM redirects
		WHERE enabled AND action_type = 'url'
		ORDER BY position, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list redirects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rd      models.Redirect
			groupID int64
		)
		if err = rows.Scan(&rd.ID, &rd.Source, &rd.Target, &rd.StatusCode, &rd.Regex, &rd.Position, &groupID); err != nil {
			return nil, fmt.Errorf("failed to scan redirect: %w", err)
		}
		if groupID != 0 {
			rd.GroupID = &groupID
		}
		redirects = append(redirects, rd)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate redirects: %w", err)
	}
	return redirects, nil
}

func (r *PostgresRedirectRepository) GroupNames(ctx context.Context) (groups map[int64]string, err error) {
	ctx, done := startCall(ctx, "RedirectGroups")
	defer func() { done(err) }()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM redirect_groups`)
	if err != nil {
		return nil, fmt.Errorf("failed to list redirect groups: %w", err)
	}
	defer rows.Close()

	groups = make(map[int64]string)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err = rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan redirect group: %w", err)
		}
		groups[id] = name
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate redirect groups: %w", err)
	}
	return groups, nil
}
