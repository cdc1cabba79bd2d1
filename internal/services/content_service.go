package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/honeynil/headless-broker/internal/infrastructure/redis"
	"github.com/honeynil/headless-broker/internal/models"
	"github.com/honeynil/headless-broker/internal/repository"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"github.com/honeynil/headless-broker/pkg/sanitize"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultRedirectLimit = 200
	maxRedirectLimit     = 1000
	defaultSitemapLimit  = 500
	maxSitemapLimit      = 2000
	sitemapCacheTTL      = time.Minute
	sitemapTimeLayout    = "2006-01-02 15:04:05"
)

type ContentService interface {
	ListMenus(ctx context.Context) ([]models.Menu, error)
	GetMenu(ctx context.Context, id int64, slug string) (*models.Menu, error)
	ListRedirects(ctx context.Context, query models.RedirectQuery) ([]models.Redirect, error)
	Sitemap(ctx context.Context, query models.SitemapQuery) ([]models.SitemapEntry, error)
}

type contentService struct {
	menuRepo     repository.MenuRepository
	redirectRepo repository.RedirectRepository
	postRepo     repository.PostRepository
	termRepo     repository.TermRepository
	redisClient  redis.RedisClient
}

func NewContentService(
	menuRepo repository.MenuRepository,
	redirectRepo repository.RedirectRepository,
	postRepo repository.PostRepository,
	termRepo repository.TermRepository,
	redisClient redis.RedisClient,
) *contentService {
	return &contentService{
		menuRepo:     menuRepo,
		redirectRepo: redirectRepo,
		postRepo:     postRepo,
		termRepo:     termRepo,
		redisClient:  redisClient,
	}
}

func (s *contentService) ListMenus(ctx context.Context) ([]models.Menu, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "ListMenus")
	defer span.End()

	menus, err := s.menuRepo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list menus")
		slog.Error("failed to list menus", "error", err)
		return nil, err
	}

	result := make([]models.Menu, 0, len(menus))
	for _, menu := range menus {
		items, err := s.menuRepo.Items(ctx, menu.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to load menu items")
			slog.Error("failed to load menu items", "menu_id", menu.ID, "error", err)
			return nil, err
		}
		menu.Items = items
		result = append(result, menu)
	}
	return result, nil
}

// GetMenu looks a menu up by id when id is positive, otherwise by slug.
func (s *contentService) GetMenu(ctx context.Context, id int64, slug string) (*models.Menu, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "GetMenu")
	defer span.End()

	var (
		menu *models.Menu
		err  error
	)
	switch {
	case id > 0:
		menu, err = s.menuRepo.GetByID(ctx, id)
	case sanitize.Key(slug) != "":
		menu, err = s.menuRepo.GetBySlug(ctx, sanitize.Key(slug))
	default:
		return nil, pkgerrors.ErrMenuNotFound
	}
	if err != nil {
		span.SetStatus(codes.Error, "menu lookup failed")
		return nil, err
	}

	items, err := s.menuRepo.Items(ctx, menu.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load menu items")
		slog.Error("failed to load menu items", "menu_id", menu.ID, "error", err)
		return nil, err
	}
	menu.Items = items
	return menu, nil
}

func (s *contentService) ListRedirects(ctx context.Context, query models.RedirectQuery) ([]models.Redirect, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "ListRedirects")
	defer span.End()

	limit := clampLimit(query.Limit, defaultRedirectLimit, maxRedirectLimit)
	search := strings.ToLower(strings.TrimSpace(query.Search))

	groups, err := s.redirectRepo.GroupNames(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load redirect groups")
		slog.Error("failed to load redirect groups", "error", err)
		return nil, err
	}

	redirects, err := s.redirectRepo.ListEnabled(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list redirects")
		slog.Error("failed to list redirects", "error", err)
		return nil, err
	}

	result := make([]models.Redirect, 0, min(limit, len(redirects)))
	for _, r := range redirects {
		if query.GroupID > 0 && (r.GroupID == nil || *r.GroupID != query.GroupID) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Source), search) &&
			!strings.Contains(strings.ToLower(r.Target), search) {
			continue
		}
		if r.GroupID != nil {
			if name, ok := groups[*r.GroupID]; ok {
				r.GroupName = &name
			}
		}
		result = append(result, r)
		if len(result) >= limit {
			break
		}
	}

	slog.Info("redirects listed", "count", len(result), "limit", limit)
	return result, nil
}

func (s *contentService) Sitemap(ctx context.Context, query models.SitemapQuery) ([]models.SitemapEntry, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "Sitemap")
	defer span.End()

	limit := clampLimit(query.Limit, defaultSitemapLimit, maxSitemapLimit)

	types := make([]string, 0, len(query.Types))
	for _, t := range query.Types {
		if key := sanitize.Key(t); key != "" {
			types = append(types, key)
		}
	}
	if len(types) == 0 {
		public, err := s.postRepo.PublicPostTypes(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to load post types")
			slog.Error("failed to load public post types", "error", err)
			return nil, err
		}
		types = public
	}

	cacheKey := fmt.Sprintf("sitemap:%s:%d", strings.Join(types, ","), limit)
	cached, err := s.redisClient.Get(ctx, cacheKey)
	if err == nil {
		var entries []models.SitemapEntry
		if err := json.Unmarshal([]byte(cached), &entries); err != nil {
			slog.Error("failed to unmarshal cached sitemap", "key", cacheKey, "error", err)
		} else {
			slog.Info("sitemap fetched from Redis", "key", cacheKey, "count", len(entries))
			return entries, nil
		}
	}

	entries, err := s.buildSitemap(ctx, types, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build sitemap")
		return nil, err
	}

	if data, err := json.Marshal(entries); err != nil {
		slog.Error("failed to marshal sitemap", "key", cacheKey, "error", err)
	} else if err := s.redisClient.Set(ctx, cacheKey, data, sitemapCacheTTL); err != nil {
		slog.Error("failed to cache sitemap", "key", cacheKey, "error", err)
	}

	slog.Info("sitemap built", "key", cacheKey, "count", len(entries))
	return entries, nil
}

func (s *contentService) buildSitemap(ctx context.Context, types []string, limit int) ([]models.SitemapEntry, error) {
	entries := make([]models.SitemapEntry, 0)

	posts, err := s.postRepo.ListPublished(ctx, types, limit)
	if err != nil {
		slog.Error("failed to list published posts", "types", types, "error", err)
		return nil, err
	}
	for _, p := range posts {
		if p.URI == "" {
			continue
		}
		modified := p.ModifiedGMT.UTC().Format(sitemapTimeLayout)
		entries = append(entries, models.SitemapEntry{
			ID:         fmt.Sprintf("post-%d", p.ID),
			DatabaseID: p.ID,
			URI:        p.URI,
			Slug:       p.Slug,
			Type:       p.Type,
			Modified:   &modified,
			Status:     p.Status,
		})
		if len(entries) >= limit {
			return entries, nil
		}
	}

	taxonomies, err := s.termRepo.ListTaxonomies(ctx, true)
	if err != nil {
		slog.Error("failed to list public taxonomies", "error", err)
		return nil, err
	}
	for _, tax := range taxonomies {
		if tax.RewriteSlug == "" {
			continue
		}
		terms, err := s.termRepo.ListTerms(ctx, tax.Name, models.OrderByIDDesc, limit)
		if err != nil {
			slog.Warn("skipping taxonomy in sitemap", "taxonomy", tax.Name, "error", err)
			continue
		}
		for _, term := range terms {
			if term.Slug == "" {
				continue
			}
			entries = append(entries, models.SitemapEntry{
				ID:         fmt.Sprintf("term-%d", term.ID),
				DatabaseID: term.ID,
				URI:        "/" + strings.Trim(tax.RewriteSlug, "/") + "/" + term.Slug + "/",
				Slug:       term.Slug,
				Type:       tax.Name,
				Status:     models.StatusPublish,
			})
			if len(entries) >= limit {
				return entries, nil
			}
		}
	}
	return entries, nil
}
