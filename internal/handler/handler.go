package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/honeynil/headless-broker/internal/infrastructure/auth"
	"github.com/honeynil/headless-broker/internal/infrastructure/observability"
	"github.com/honeynil/headless-broker/internal/models"
	service "github.com/honeynil/headless-broker/internal/services"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
)

type Handler struct {
	preview   service.PreviewService
	taxonomy  service.TaxonomyService
	content   service.ContentService
	validator *requestValidator
}

func NewHandler(preview service.PreviewService, taxonomy service.TaxonomyService, content service.ContentService) *Handler {
	return &Handler{
		preview:   preview,
		taxonomy:  taxonomy,
		content:   content,
		validator: newRequestValidator(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service errors to a status code. Unexpected errors are
// logged and reported without detail.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, pkgerrors.ErrInvalidToken):
		h.writeError(w, http.StatusForbidden, "Invalid token")
	case errors.Is(err, pkgerrors.ErrInsufficientCapability):
		h.writeError(w, http.StatusForbidden, "Insufficient capability")
	case errors.Is(err, pkgerrors.ErrPostNotFound),
		errors.Is(err, pkgerrors.ErrTermNotFound),
		errors.Is(err, pkgerrors.ErrTaxonomyNotFound),
		errors.Is(err, pkgerrors.ErrMenuNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		observability.WithContext(r.Context()).Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/taxonomies/{taxonomy}", h.TaxonomyInfo).Methods("GET")
	r.HandleFunc("/taxonomies/{taxonomy}/terms", h.Terms).Methods("GET")
	r.HandleFunc("/menus", h.ListMenus).Methods("GET")
	r.HandleFunc("/menus/{key}", h.GetMenu).Methods("GET")
	r.HandleFunc("/redirects", h.ListRedirects).Methods("GET")
	r.HandleFunc("/sitemap", h.Sitemap).Methods("GET")
}

// RegisterProtectedRoutes registers the editor routes behind protect.
func (h *Handler) RegisterProtectedRoutes(r *mux.Router, protect func(http.Handler) http.Handler) {
	r.Handle("/preview/link", protect(http.HandlerFunc(h.PreviewLink))).Methods("POST")
	r.Handle("/preview/verify", protect(http.HandlerFunc(h.VerifyPreview))).Methods("POST")
	r.Handle("/posts/{id}/terms/{taxonomy}", protect(http.HandlerFunc(h.SetFieldTerms))).Methods("PUT")
	r.Handle("/taxonomies/{taxonomy}/bulk", protect(http.HandlerFunc(h.BulkInsert))).Methods("POST")
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok || userID <= 0 {
		h.writeError(w, http.StatusUnauthorized, "user not authenticated")
		return 0, false
	}
	return userID, true
}

func (h *Handler) PreviewLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req struct {
		PostID int64 `json:"post_id" validate:"required,gt=0"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	link, err := h.preview.PreviewLink(r.Context(), userID, req.PostID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

// VerifyPreview accepts token, id and type as a JSON body or as form fields.
func (h *Handler) VerifyPreview(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var check models.PreviewCheck
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&check); err != nil {
			h.writeError(w, http.StatusBadRequest, "Missing data")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			h.writeError(w, http.StatusBadRequest, "Missing data")
			return
		}
		check.Token = r.PostFormValue("token")
		check.Type = r.PostFormValue("type")
		check.ID, _ = strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	}
	if err := h.validator.Validate(check); err != nil {
		h.writeError(w, http.StatusBadRequest, "Missing data")
		return
	}

	res, err := h.preview.Verify(r.Context(), userID, check)
	if errors.Is(err, pkgerrors.ErrInvalidInput) {
		h.writeError(w, http.StatusBadRequest, "Missing data")
		return
	}
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) SetFieldTerms(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || postID <= 0 {
		h.writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req struct {
		Terms []int64 `json:"terms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	terms, err := h.taxonomy.SetFieldTerms(r.Context(), userID, postID, vars["taxonomy"], req.Terms)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]int64{"terms": terms})
}

func (h *Handler) BulkInsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req struct {
		Terms  string `json:"terms" validate:"required"`
		Parent int64  `json:"parent" validate:"gte=0"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.taxonomy.BulkInsert(r.Context(), userID, mux.Vars(r)["taxonomy"], req.Terms, req.Parent)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) TaxonomyInfo(w http.ResponseWriter, r *http.Request) {
	tax, err := h.taxonomy.TaxonomyInfo(r.Context(), mux.Vars(r)["taxonomy"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tax)
}

func (h *Handler) Terms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.taxonomy.Terms(r.Context(), mux.Vars(r)["taxonomy"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, terms)
}

func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.content.ListMenus(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, menus)
}

// GetMenu treats a numeric key as a menu id and anything else as a slug.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	var (
		id   int64
		slug string
	)
	if n, err := strconv.ParseInt(key, 10, 64); err == nil {
		id = n
	} else {
		slug = key
	}

	menu, err := h.content.GetMenu(r.Context(), id, slug)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) ListRedirects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, ok := h.limitParam(w, q.Get("limit"))
	if !ok {
		return
	}

	var groupID int64
	if raw := q.Get("group"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid group")
			return
		}
		groupID = n
	}

	redirects, err := h.content.ListRedirects(r.Context(), models.RedirectQuery{
		Limit:   limit,
		Search:  q.Get("search"),
		GroupID: groupID,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, redirects)
}

func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, ok := h.limitParam(w, q.Get("limit"))
	if !ok {
		return
	}

	var types []string
	for _, raw := range q["types"] {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	entries, err := h.content.Sitemap(r.Context(), models.SitemapQuery{Types: types, Limit: limit})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

// limitParam returns 0 for an absent limit so the service default applies.
// A present limit below 1 becomes 1.
func (h *Handler) limitParam(w http.ResponseWriter, raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid limit")
		return 0, false
	}
	return max(n, 1), true
}
