package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/honeynil/headless-broker/internal/models"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
)

const menuColumns = `
	SELECT m.id, m.name, m.slug, m.description,
	       (SELECT COUNT(*) FROM menu_items i WHERE i.menu_id = m.id)
	FROM menus m
`

type PostgresMenuRepository struct {
	db *sql.DB
}

func NewPostgresMenuRepository(db *sql.DB) *PostgresMenuRepository {
	return &PostgresMenuRepository{db: db}
}

func (r *PostgresMenuRepository) List(ctx context.Context) (menus []models.Menu, err error) {
	ctx, done := startCall(ctx, "ListMenus")
	defer func() { done(err) }()

	rows, err := r.db.QueryContext(ctx, menuColumns+` ORDER BY m.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Menu
		if err = rows.Scan(&m.ID, &m.Name, &m.Slug, &m.Description, &m.Count); err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menus: %w", err)
	}
	return menus, nil
}

func (r *PostgresMenuRepository) GetByID(ctx context.Context, id int64) (menu *models.Menu, err error) {
	ctx, done := startCall(ctx, "GetMenuByID")
	defer func() { done(err) }()

	return r.getOne(ctx, menuColumns+` WHERE m.id = $1`, id)
}

func (r *PostgresMenuRepository) GetBySlug(ctx context.Context, slug string) (menu *models.Menu, err error) {
	ctx, done := startCall(ctx, "GetMenuBySlug")
	defer func() { done(err) }()

	return r.getOne(ctx, menuColumns+` WHERE m.slug = $1`, slug)
}

func (r *PostgresMenuRepository) getOne(ctx context.Context, query string, arg any) (*models.Menu, error) {
	var m models.Menu
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&m.ID, &m.Name, &m.Slug, &m.Description, &m.Count)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return &m, nil
}

func (r *PostgresMenuRepository) Items(ctx context.Context, menuID int64) (items []models.MenuItem, err error) {
	ctx, done := startCall(ctx, "MenuItems")
	defer func() { done(err) }()

	query := `
		SELECT id, title, url, target, description, menu_order, parent_id, attr_title, classes, type, type_label
		FROM menu_items
		WHERE menu_id = $1
		ORDER BY menu_order ASC
	`
	rows, err := r.db.QueryContext(ctx, query, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	items = []models.MenuItem{}
	for rows.Next() {
		var (
			item    models.MenuItem
			classes string
		)
		if err = rows.Scan(&item.ID, &item.Title, &item.URL, &item.Target, &item.Description, &item.Order,
			&item.ParentID, &item.AttrTitle, &classes, &item.Type, &item.TypeLabel); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		item.Classes = strings.Fields(classes)
		if item.Classes == nil {
			item.Classes = []string{}
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	return items, nil
}
