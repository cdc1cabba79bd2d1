package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	stderrors "errors"

	"github.com/google/uuid"
	"github.com/honeynil/headless-broker/internal/infrastructure/auth"
	"github.com/honeynil/headless-broker/internal/infrastructure/observability"
	"github.com/honeynil/headless-broker/internal/models"
	"github.com/honeynil/headless-broker/internal/repository"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type PreviewService interface {
	PreviewLink(ctx context.Context, userID, postID int64) (string, error)
	Verify(ctx context.Context, userID int64, check models.PreviewCheck) (*models.PreviewResult, error)
}

type TokenSigner interface {
	Issue(payload auth.Payload, ttl time.Duration) (string, error)
	Verify(token string) (auth.Payload, error)
}

type PreviewConfig struct {
	TTL         time.Duration
	FrontendURL string
	SiteURL     string
}

type previewService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	signer   TokenSigner
	cfg      PreviewConfig
	newNonce func() string
}

func NewPreviewService(posts repository.PostRepository, users repository.UserRepository, signer TokenSigner, cfg PreviewConfig) *previewService {
	return &previewService{
		posts:    posts,
		users:    users,
		signer:   signer,
		cfg:      cfg,
		newNonce: uuid.NewString,
	}
}

func (s *previewService) PreviewLink(ctx context.Context, userID, postID int64) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PreviewLink")
	defer span.End()
	span.SetAttributes(attribute.Int64("post_id", postID), attribute.Int64("user_id", userID))

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "post lookup failed")
		slog.Error("failed to load post for preview", "post_id", postID, "error", err)
		return "", err
	}

	ok, err := canEditPost(ctx, s.users, userID, post)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "capability check failed")
		slog.Error("failed to check edit capability", "post_id", postID, "user_id", userID, "error", err)
		return "", err
	}
	// Users who cannot edit the post keep the plain CMS preview link.
	if !ok {
		slog.Info("preview link without token", "post_id", postID, "user_id", userID)
		return s.cmsPreviewLink(post.ID), nil
	}

	if s.cfg.FrontendURL == "" {
		return s.cmsPreviewLink(post.ID), nil
	}

	payload := auth.Payload{
		"id":    post.ID,
		"type":  post.Type,
		"nonce": s.newNonce(),
		"user":  userID,
	}
	token, err := s.signer.Issue(payload, s.cfg.TTL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token issue failed")
		slog.Error("failed to issue preview token", "post_id", postID, "error", err)
		return "", err
	}

	query := url.Values{}
	query.Set("id", strconv.FormatInt(post.ID, 10))
	query.Set("type", post.Type)
	query.Set("token", token)

	sep := "?"
	if strings.Contains(s.cfg.FrontendURL, "?") {
		sep = "&"
	}

	slog.Info("preview link issued", "post_id", post.ID, "type", post.Type, "user_id", userID)
	return s.cfg.FrontendURL + sep + query.Encode(), nil
}

func (s *previewService) cmsPreviewLink(postID int64) string {
	return fmt.Sprintf("%s/?p=%d&preview=true", strings.TrimRight(s.cfg.SiteURL, "/"), postID)
}

func (s *previewService) Verify(ctx context.Context, userID int64, check models.PreviewCheck) (*models.PreviewResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "VerifyPreview")
	defer span.End()
	span.SetAttributes(attribute.Int64("post_id", check.ID), attribute.String("type", check.Type))

	if check.Token == "" || check.ID <= 0 || check.Type == "" {
		observability.PreviewVerifications.WithLabelValues("missing").Inc()
		return nil, fmt.Errorf("%w: token, id and type are required", pkgerrors.ErrInvalidInput)
	}

	payload, err := s.signer.Verify(check.Token)
	if err != nil {
		// The reason stays in the logs; callers only ever see ErrInvalidToken.
		observability.PreviewVerifications.WithLabelValues("invalid").Inc()
		span.SetStatus(codes.Error, "token rejected")
		slog.Warn("preview token rejected", "post_id", check.ID, "reason", err)
		return nil, pkgerrors.ErrInvalidToken
	}

	claims, ok := payload.PreviewClaims()
	if !ok || claims.ID != check.ID || claims.Type != check.Type {
		observability.PreviewVerifications.WithLabelValues("invalid").Inc()
		span.SetStatus(codes.Error, "token does not match post")
		slog.Warn("preview token does not match request",
			"post_id", check.ID,
			"token_post_id", claims.ID,
			"type", check.Type,
			"token_type", claims.Type)
		return nil, pkgerrors.ErrInvalidToken
	}

	post, err := s.posts.GetByID(ctx, check.ID)
	if stderrors.Is(err, pkgerrors.ErrPostNotFound) {
		observability.PreviewVerifications.WithLabelValues("forbidden").Inc()
		return nil, pkgerrors.ErrInsufficientCapability
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "post lookup failed")
		slog.Error("failed to load post for preview verification", "post_id", check.ID, "error", err)
		return nil, err
	}

	ok, err = canEditPost(ctx, s.users, userID, post)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "capability check failed")
		slog.Error("failed to check edit capability", "post_id", check.ID, "user_id", userID, "error", err)
		return nil, err
	}
	if !ok {
		observability.PreviewVerifications.WithLabelValues("forbidden").Inc()
		span.SetStatus(codes.Error, "cannot edit post")
		slog.Warn("preview verification denied", "post_id", check.ID, "user_id", userID)
		return nil, pkgerrors.ErrInsufficientCapability
	}

	observability.PreviewVerifications.WithLabelValues("valid").Inc()
	slog.Info("preview token verified", "post_id", check.ID, "type", check.Type, "user_id", userID, "issued_to", claims.User)
	return &models.PreviewResult{Valid: true, ID: check.ID, Type: check.Type}, nil
}
