package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/honeynil/headless-broker/internal/models"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// maxTermDepth bounds the ancestor walk so a corrupted parent cycle cannot loop forever.
const maxTermDepth = 64

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

type PostgresTermRepository struct {
	db *sql.DB
}

func NewPostgresTermRepository(db *sql.DB) *PostgresTermRepository {
	return &PostgresTermRepository{db: db}
}

func (r *PostgresTermRepository) GetTaxonomy(ctx context.Context, name string) (tax *models.Taxonomy, err error) {
	ctx, done := startCall(ctx, "GetTaxonomy")
	defer func() { done(err) }()

	query := `SELECT name, label, hierarchical, public, rewrite_slug FROM taxonomies WHERE name = $1`
	var t models.Taxonomy
	err = r.db.QueryRowContext(ctx, query, name).Scan(&t.Name, &t.Label, &t.Hierarchical, &t.Public, &t.RewriteSlug)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrTaxonomyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get taxonomy: %w", err)
	}
	return &t, nil
}

func (r *PostgresTermRepository) ListTaxonomies(ctx context.Context, publicOnly bool) (taxonomies []models.Taxonomy, err error) {
	ctx, done := startCall(ctx, "ListTaxonomies")
	defer func() { done(err) }()

	query := `
		SELECT name, label, hierarchical, public, rewrite_slug
		FROM taxonomies
		WHERE public OR NOT $1
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, publicOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxonomies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Taxonomy
		if err = rows.Scan(&t.Name, &t.Label, &t.Hierarchical, &t.Public, &t.RewriteSlug); err != nil {
			return nil, fmt.Errorf("failed to scan taxonomy: %w", err)
		}
		taxonomies = append(taxonomies, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate taxonomies: %w", err)
	}
	return taxonomies, nil
}

func (r *PostgresTermRepository) Ancestors(ctx context.Context, taxonomy string, termID int64) (ids []int64, err error) {
	ctx, done := startCall(ctx, "TermAncestors")
	defer func() { done(err) }()

	query := `
		WITH RECURSIVE chain AS (
			SELECT parent_id, 1 AS depth FROM terms WHERE id = $1 AND taxonomy = $2
			UNION ALL
			SELECT t.parent_id, c.depth + 1
			FROM terms t JOIN chain c ON t.id = c.parent_id
			WHERE t.taxonomy = $2 AND c.depth < $3
		)
		SELECT parent_id FROM chain WHERE parent_id <> 0 ORDER BY depth
	`
	rows, err := r.db.QueryContext(ctx, query, termID, taxonomy, maxTermDepth)
	if err != nil {
		return nil, fmt.Errorf("failed to get term ancestors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ancestor: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ancestors: %w", err)
	}
	return ids, nil
}

func (r *PostgresTermRepository) Create(ctx context.Context, term *models.Term) (id int64, err error) {
	ctx, done := startCall(ctx, "CreateTerm")
	defer func() {
		if stderrors.Is(err, pkgerrors.ErrTermExists) {
			done(nil)
			return
		}
		done(err)
	}()

	if term == nil || term.Name == "" {
		err = fmt.Errorf("%w: term name is required", pkgerrors.ErrInvalidInput)
		return 0, err
	}
	if term.Slug == "" {
		term.Slug = Slugify(term.Name)
	}

	query := `
		INSERT INTO terms (taxonomy, name, slug, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query, term.Taxonomy, term.Name, term.Slug, term.ParentID).Scan(&term.ID)
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		existing := `SELECT id FROM terms WHERE taxonomy = $1 AND parent_id = $2 AND name = $3`
		if lookupErr := r.db.QueryRowContext(ctx, existing, term.Taxonomy, term.ParentID, term.Name).Scan(&term.ID); lookupErr != nil {
			err = fmt.Errorf("failed to look up existing term: %w", lookupErr)
			return 0, err
		}
		err = pkgerrors.ErrTermExists
		return term.ID, err
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create term: %w", err)
	}
	return term.ID, nil
}

func (r *PostgresTermRepository) ListTerms(ctx context.Context, taxonomy string, order models.TermOrder, limit int) (terms []models.Term, err error) {
	ctx, done := startCall(ctx, "ListTerms")
	defer func() { done(err) }()

	orderBy := "name ASC"
	if order == models.OrderByIDDesc {
		orderBy = "id DESC"
	}
	query := `SELECT id, taxonomy, name, slug, parent_id FROM terms WHERE taxonomy = $1 ORDER BY ` + orderBy
	args := []any{taxonomy}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Term
		if err = rows.Scan(&t.ID, &t.Taxonomy, &t.Name, &t.Slug, &t.ParentID); err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		terms = append(terms, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate terms: %w", err)
	}
	return terms, nil
}

func (r *PostgresTermRepository) ExistingTerms(ctx context.Context, taxonomy string, termIDs []int64) (ids []int64, err error) {
	ctx, done := startCall(ctx, "ExistingTerms")
	defer func() { done(err) }()

	if len(termIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id FROM terms WHERE taxonomy = $1 AND id = ANY($2)`, taxonomy, pq.Array(termIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to look up terms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan term id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate term ids: %w", err)
	}
	return ids, nil
}

func (r *PostgresTermRepository) GetObjectTerms(ctx context.Context, objectID int64, taxonomy string) (ids []int64, err error) {
	ctx, done := startCall(ctx, "GetObjectTerms")
	defer func() { done(err) }()

	query := `
		SELECT term_id FROM object_terms
		WHERE object_id = $1 AND taxonomy = $2
		ORDER BY position, term_id
	`
	rows, err := r.db.QueryContext(ctx, query, objectID, taxonomy)
	if err != nil {
		return nil, fmt.Errorf("failed to get object terms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan object term: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate object terms: %w", err)
	}
	return ids, nil
}

// AddObjectTerms appends terms after the object's current ones; terms already attached are left alone.
func (r *PostgresTermRepository) AddObjectTerms(ctx context.Context, objectID int64, taxonomy string, termIDs []int64) (err error) {
	ctx, done := startCall(ctx, "AddObjectTerms")
	defer func() { done(err) }()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	query := `SELECT COALESCE(MAX(position) + 1, 0) FROM object_terms WHERE object_id = $1 AND taxonomy = $2`
	if err = tx.QueryRowContext(ctx, query, objectID, taxonomy).Scan(&next); err != nil {
		return fmt.Errorf("failed to get next term position: %w", err)
	}

	for i, termID := range termIDs {
		if _, err = tx.ExecContext(ctx, insertObjectTerm, objectID, taxonomy, termID, next+i); err != nil {
			return fmt.Errorf("failed to add object term %d: %w", termID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit object terms: %w", err)
	}
	return nil
}

// SetObjectTerms replaces the object's terms in the taxonomy, keeping the given order.
func (r *PostgresTermRepository) SetObjectTerms(ctx context.Context, objectID int64, taxonomy string, termIDs []int64) (err error) {
	ctx, done := startCall(ctx, "SetObjectTerms")
	defer func() { done(err) }()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM object_terms WHERE object_id = $1 AND taxonomy = $2`, objectID, taxonomy); err != nil {
		return fmt.Errorf("failed to clear object terms: %w", err)
	}
	for i, termID := range termIDs {
		if _, err = tx.ExecContext(ctx, insertObjectTerm, objectID, taxonomy, termID, i); err != nil {
			return fmt.Errorf("failed to set object term %d: %w", termID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit object terms: %w", err)
	}
	return nil
}

const insertObjectTerm = `
	INSERT INTO object_terms (object_id, taxonomy, term_id, position)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (object_id, term_id) DO NOTHING
`

// Slugify turns a term name into a lowercase, dash separated slug.
func Slugify(name string) string {
	return strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(name), "-"), "-")
}
