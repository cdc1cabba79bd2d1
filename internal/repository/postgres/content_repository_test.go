package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/honeynil/headless-broker/internal/repository/postgres"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresMenuRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresMenuRepository(db)
	ctx := context.Background()
	menuCols := []string{"id", "name", "slug", "description", "count"}

	t.Run("GetBySlug", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE m.slug = $1`)).
			WithArgs("main").
			WillReturnRows(sqlmock.NewRows(menuCols).AddRow(3, "Main", "main", "", 2))

		menu, err := repo.GetBySlug(ctx, "main")
		require.NoError(t, err)
		assert.Equal(t, int64(3), menu.ID)
		assert.Equal(t, 2, menu.Count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE m.id = $1`)).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(menuCols))

		menu, err := repo.GetByID(ctx, 9)
		assert.Nil(t, menu)
		assert.ErrorIs(t, err, pkgerrors.ErrMenuNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ItemsSplitClasses", func(t *testing.T) {
		itemCols := []string{"id", "title", "url", "target", "description", "menu_order", "parent_id", "attr_title", "classes", "type", "type_label"}
		mock.ExpectQuery(regexp.QuoteMeta(`FROM menu_items WHERE menu_id = $1 ORDER BY menu_order ASC`)).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(itemCols).
				AddRow(10, "Home", "/", "", "", 1, 0, "", " nav  home ", "custom", "Custom Link").
				AddRow(11, "Fibres", "/fibres/", "_blank", "", 2, 10, "All fibres", "", "post_type", "Page"))

		items, err := repo.Items(ctx, 3)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, []string{"nav", "home"}, items[0].Classes)
		assert.Equal(t, []string{}, items[1].Classes)
		assert.Equal(t, int64(10), items[1].ParentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRedirectRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresRedirectRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE enabled AND action_type = 'url'`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "target", "status_code", "regex", "position", "group_id"}).
			AddRow(1, "/old", "/new", 301, false, 0, 2).
			AddRow(2, "^/a/(.*)", "/b/$1", 302, true, 1, 0))

	redirects, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, redirects, 2)
	require.NotNil(t, redirects[0].GroupID)
	assert.Equal(t, int64(2), *redirects[0].GroupID)
	assert.Nil(t, redirects[1].GroupID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM redirect_groups`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Legacy"))

	groups, err := repo.GroupNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{2: "Legacy"}, groups)
	assert.NoError(t, mock.ExpectationsWereMet())
}
