package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/honeynil/headless-broker/internal/models"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"github.com/lib/pq"
)

type PostgresPostRepository struct {
	db *sql.DB
}

func NewPostgresPostRepository(db *sql.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) GetByID(ctx context.Context, id int64) (post *models.Post, err error) {
	ctx, done := startCall(ctx, "GetPost")
	defer func() { done(err) }()

	query := `
		SELECT id, author_id, type, status, slug, uri, modified_gmt
		FROM posts
		WHERE id = $1
	`
	var p models.Post
	err = r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.AuthorID, &p.Type, &p.Status, &p.Slug, &p.URI, &p.ModifiedGMT)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}
	return &p, nil
}

func (r *PostgresPostRepository) ListPublished(ctx context.Context, types []string, limit int) (posts []models.Post, err error) {
	ctx, done := startCall(ctx, "ListPublishedPosts")
	defer func() { done(err) }()

	query := `
		SELECT id, author_id, type, status, slug, uri, modified_gmt
		FROM posts
		WHERE status = 'publish' AND type = ANY($1)
		ORDER BY modified_gmt DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(types), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Post
		if err = rows.Scan(&p.ID, &p.AuthorID, &p.Type, &p.Status, &p.Slug, &p.URI, &p.ModifiedGMT); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostgresPostRepository) PublicPostTypes(ctx context.Context) (types []string, err error) {
	ctx, done := startCall(ctx, "PublicPostTypes")
	defer func() { done(err) }()

	rows, err := r.db.QueryContext(ctx, `SELECT name FROM post_types WHERE public ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list post types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan post type: %w", err)
		}
		types = append(types, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post types: %w", err)
	}
	return types, nil
}
