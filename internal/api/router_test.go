package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/headless-broker/internal/handler"
	"github.com/honeynil/headless-broker/internal/infrastructure/auth"
	"github.com/honeynil/headless-broker/internal/models"
	servicemocks "github.com/honeynil/headless-broker/internal/services/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *servicemocks.MockContentService) {
	ctrl := gomock.NewController(t)
	content := servicemocks.NewMockContentService(ctrl)
	h := handler.NewHandler(servicemocks.NewMockPreviewService(ctrl), servicemocks.NewMockTaxonomyService(ctrl), content)
	return SetupRouter(h, RouterConfig{JWTSecret: "jwt", CORSOrigin: "https://front.example.com"}), content
}

func TestSetupRouter_MetricsByTemplate(t *testing.T) {
	router, content := newTestRouter(t)
	content.EXPECT().GetMenu(gomock.Any(), int64(7), "").Return(&models.Menu{ID: 7}, nil)

	before := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/menus/{key}", "200"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menus/7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/menus/{key}", "200")))
}

func TestSetupRouter_ProtectedRoutesRequireBearer(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/preview/link", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetupRouter_ProtectedRouteWithBearer(t *testing.T) {
	ctrl := gomock.NewController(t)
	preview := servicemocks.NewMockPreviewService(ctrl)
	h := handler.NewHandler(preview, servicemocks.NewMockTaxonomyService(ctrl), servicemocks.NewMockContentService(ctrl))
	router := SetupRouter(h, RouterConfig{JWTSecret: "jwt", CORSOrigin: "https://front.example.com"})
	preview.EXPECT().PreviewLink(gomock.Any(), int64(5), int64(42)).Return("https://front.example.com/preview?id=42", nil)

	token, err := auth.GenerateJWT(5, "jwt", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/preview/link", strings.NewReader(`{"post_id":42}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/preview/verify", nil)
	req.Header.Set("Origin", "https://front.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://front.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSetupRouter_Metrics(t *testing.T) {
	router, _ := newTestRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
