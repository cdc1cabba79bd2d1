package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/honeynil/headless-broker/internal/infrastructure/auth"
	"github.com/honeynil/headless-broker/internal/models"
	servicemocks "github.com/honeynil/headless-broker/internal/services/mocks"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	preview  *servicemocks.MockPreviewService
	taxonomy *servicemocks.MockTaxonomyService
	content  *servicemocks.MockContentService
}

// asUser stands in for AuthMiddleware.
func asUser(userID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID > 0 {
				r = r.WithContext(auth.WithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newTestRouter(t *testing.T, userID int64) (*mux.Router, handlerMocks) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		preview:  servicemocks.NewMockPreviewService(ctrl),
		taxonomy: servicemocks.NewMockTaxonomyService(ctrl),
		content:  servicemocks.NewMockContentService(ctrl),
	}
	h := NewHandler(m.preview, m.taxonomy, m.content)
	r := mux.NewRouter()
	h.RegisterPublicRoutes(r)
	h.RegisterProtectedRoutes(r, asUser(userID))
	return r, m
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestHandler_VerifyPreview(t *testing.T) {
	check := models.PreviewCheck{Token: "tok", ID: 42, Type: "material"}

	t.Run("json body", func(t *testing.T) {
		r, m := newTestRouter(t, 3)
		m.preview.EXPECT().Verify(gomock.Any(), int64(3), check).
			Return(&models.PreviewResult{Valid: true, ID: 42, Type: "material"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/preview/verify", strings.NewReader(`{"token":"tok","id":42,"type":"material"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := serve(r, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"valid":true,"id":42,"type":"material"}`, rec.Body.String())
	})

	t.Run("form body", func(t *testing.T) {
		r, m := newTestRouter(t, 3)
		m.preview.EXPECT().Verify(gomock.Any(), int64(3), check).
			Return(&models.PreviewResult{Valid: true, ID: 42, Type: "material"}, nil)

		form := url.Values{"token": {"tok"}, "id": {"42"}, "type": {"material"}}
		req := httptest.NewRequest(http.MethodPost, "/preview/verify", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := serve(r, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing data", func(t *testing.T) {
		r, _ := newTestRouter(t, 3)

		req := httptest.NewRequest(http.MethodPost, "/preview/verify", strings.NewReader(`{"id":42,"type":"material"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := serve(r, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing data", errorBody(t, rec))
	})

	t.Run("invalid token", func(t *testing.T) {
		r, m := newTestRouter(t, 3)
		m.preview.EXPECT().Verify(gomock.Any(), int64(3), check).Return(nil, pkgerrors.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodPost, "/preview/verify", strings.NewReader(`{"token":"tok","id":42,"type":"material"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := serve(r, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Invalid token", errorBody(t, rec))
	})

	t.Run("insufficient capability", func(t *testing.T) {
		r, m := newTestRouter(t, 3)
		m.preview.EXPECT().Verify(gomock.Any(), int64(3), check).Return(nil, pkgerrors.ErrInsufficientCapability)

		req := httptest.NewRequest(http.MethodPost, "/preview/verify", strings.NewReader(`{"token":"tok","id":42,"type":"material"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := serve(r, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Insufficient capability", errorBody(t, rec))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		r, _ := newTestRouter(t, 0)

		req := httptest.NewRequest(http.MethodPost, "/preview/verify", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := serve(r, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_PreviewLink(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t, 3)
		m.preview.EXPECT().PreviewLink(gomock.Any(), int64(3), int64(42)).Return("https://front/preview?id=42", nil)

		rec := serve(r, httptest.NewRequest(http.MethodPost, "/preview/link", strings.NewReader(`{"post_id":42}`)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"url":"https://front/preview?id=42"}`, rec.Body.String())
	})

	t.Run("validation", func(t *testing.T) {
		r, _ := newTestRouter(t, 3)

		rec := serve(r, httptest.NewRequest(http.MethodPost, "/preview/link", strings.NewReader(`{"post_id":0}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorBody(t, rec), "post_id is required")
	})

	t.Run("post not found", func(t *testing.T) {
		r, m := newTestRouter(t, 3)
		m.preview.EXPECT().PreviewLink(gomock.Any(), int64(3), int64(7)).Return("", pkgerrors.ErrPostNotFound)

		rec := serve(r, httptest.NewRequest(http.MethodPost, "/preview/link", strings.NewReader(`{"post_id":7}`)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unexpected error hides detail", func(t *testing.T) {
		r, m := newTestRouter(t, 3)
		m.preview.EXPECT().PreviewLink(gomock.Any(), int64(3), int64(7)).Return("", errors.New("pq: connection refused"))

		rec := serve(r, httptest.NewRequest(http.MethodPost, "/preview/link", strings.NewReader(`{"post_id":7}`)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", errorBody(t, rec))
	})
}

func TestHandler_Taxonomy(t *testing.T) {
	t.Run("set field terms", func(t *testing.T) {
		r, m := newTestRouter(t, 3)
		m.taxonomy.EXPECT().SetFieldTerms(gomock.Any(), int64(3), int64(42), "material_category", []int64{5, 3}).
			Return([]int64{1, 5, 3}, nil)

		rec := serve(r, httptest.NewRequest(http.MethodPut, "/posts/42/terms/material_category", strings.NewReader(`{"terms":[5,3]}`)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"terms":[1,5,3]}`, rec.Body.String())
	})

	t.Run("bad post id", func(t *testing.T) {
		r, _ := newTestRouter(t, 3)

		rec := serve(r, httptest.NewRequest(http.MethodPut, "/posts/abc/terms/material_category", strings.NewReader(`{"terms":[5]}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bulk insert", func(t *testing.T) {
		r, m := newTestRouter(t, 1)
		m.taxonomy.EXPECT().BulkInsert(gomock.Any(), int64(1), "material_category", "A\n-B", int64(0)).
			Return(&models.BulkInsertResult{Inserted: []string{"A", "  B"}, Notices: []string{}}, nil)

		rec := serve(r, httptest.NewRequest(http.MethodPost, "/taxonomies/material_category/bulk", strings.NewReader(`{"terms":"A\n-B"}`)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"inserted":["A","  B"],"notices":[]}`, rec.Body.String())
	})

	t.Run("bulk insert requires text", func(t *testing.T) {
		r, _ := newTestRouter(t, 1)

		rec := serve(r, httptest.NewRequest(http.MethodPost, "/taxonomies/material_category/bulk", strings.NewReader(`{"parent":2}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bulk insert unknown parent", func(t *testing.T) {
		r, m := newTestRouter(t, 1)
		m.taxonomy.EXPECT().BulkInsert(gomock.Any(), int64(1), "material_category", "A", int64(77)).
			Return(nil, fmt.Errorf("%w: parent 77", pkgerrors.ErrTermNotFound))

		rec := serve(r, httptest.NewRequest(http.MethodPost, "/taxonomies/material_category/bulk", strings.NewReader(`{"terms":"A","parent":77}`)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("taxonomy info", func(t *testing.T) {
		r, m := newTestRouter(t, 0)
		m.taxonomy.EXPECT().TaxonomyInfo(gomock.Any(), "material_category").
			Return(&models.Taxonomy{Name: "material_category", Label: "Category", Hierarchical: true, Public: true}, nil)

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/taxonomies/material_category", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"hierarchical":true`)
	})

	t.Run("unknown taxonomy", func(t *testing.T) {
		r, m := newTestRouter(t, 0)
		m.taxonomy.EXPECT().Terms(gomock.Any(), "nope").Return(nil, pkgerrors.ErrTaxonomyNotFound)

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/taxonomies/nope/terms", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Content(t *testing.T) {
	t.Run("menu by id", func(t *testing.T) {
		r, m := newTestRouter(t, 0)
		m.content.EXPECT().GetMenu(gomock.Any(), int64(3), "").Return(&models.Menu{ID: 3, Items: []models.MenuItem{}}, nil)

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/menus/3", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("menu by slug", func(t *testing.T) {
		r, m := newTestRouter(t, 0)
		m.content.EXPECT().GetMenu(gomock.Any(), int64(0), "main").Return(nil, pkgerrors.ErrMenuNotFound)

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/menus/main", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("redirect query", func(t *testing.T) {
		r, m := newTestRouter(t, 0)
		m.content.EXPECT().ListRedirects(gomock.Any(), models.RedirectQuery{Limit: 1, Search: "old", GroupID: 2}).
			Return([]models.Redirect{}, nil)

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/redirects?limit=0&search=old&group=2", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("redirects without limit", func(t *testing.T) {
		r, m := newTestRouter(t, 0)
		m.content.EXPECT().ListRedirects(gomock.Any(), models.RedirectQuery{}).Return([]models.Redirect{}, nil)

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/redirects", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		r, _ := newTestRouter(t, 0)

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/sitemap?limit=lots", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sitemap types", func(t *testing.T) {
		r, m := newTestRouter(t, 0)
		m.content.EXPECT().Sitemap(gomock.Any(), models.SitemapQuery{Types: []string{"material", "fibre", "page"}, Limit: 20}).
			Return([]models.SitemapEntry{{ID: "post-1", DatabaseID: 1, URI: "/a/"}}, nil)

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/sitemap?types=material,fibre&types=page&limit=20", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"uri":"/a/"`)
	})
}
