package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/headless-broker/internal/infrastructure/auth"
	"github.com/honeynil/headless-broker/internal/models"
	repositorymocks "github.com/honeynil/headless-broker/internal/repository/mocks"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreviewService(t *testing.T, frontend string) (*previewService, *repositorymocks.MockPostRepository, *repositorymocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	postRepo := repositorymocks.NewMockPostRepository(ctrl)
	userRepo := repositorymocks.NewMockUserRepository(ctrl)
	svc := NewPreviewService(postRepo, userRepo, auth.NewPreviewSigner([]byte("preview-secret")), PreviewConfig{
		TTL:         5 * time.Minute,
		FrontendURL: frontend,
		SiteURL:     "https://cms.example.com/",
	})
	svc.newNonce = func() string { return "nonce-1" }
	return svc, postRepo, userRepo
}

func TestPreviewService_PreviewLink(t *testing.T) {
	ctx := context.Background()
	post := &models.Post{ID: 42, AuthorID: 7, Type: "material", Status: "draft"}

	t.Run("editor gets frontend link with token", func(t *testing.T) {
		svc, postRepo, userRepo := newTestPreviewService(t, "https://front.example.com/preview")
		postRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(post, nil)
		userRepo.EXPECT().HasCapability(gomock.Any(), int64(3), "edit_others_materials").Return(true, nil)

		link, err := svc.PreviewLink(ctx, 3, 42)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "front.example.com", u.Host)
		assert.Equal(t, "/preview", u.Path)
		assert.Equal(t, "42", u.Query().Get("id"))
		assert.Equal(t, "material", u.Query().Get("type"))

		payload, err := auth.VerifyToken(u.Query().Get("token"), []byte("preview-secret"))
		require.NoError(t, err)
		id, _ := payload.Int64("id")
		user, _ := payload.Int64("user")
		nonce, _ := payload.String("nonce")
		assert.Equal(t, int64(42), id)
		assert.Equal(t, int64(3), user)
		assert.Equal(t, "nonce-1", nonce)
	})

	t.Run("author with own capability", func(t *testing.T) {
		svc, postRepo, userRepo := newTestPreviewService(t, "https://front.example.com/preview?lang=en")
		postRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(post, nil)
		userRepo.EXPECT().HasCapability(gomock.Any(), int64(7), "edit_others_materials").Return(false, nil)
		userRepo.EXPECT().HasCapability(gomock.Any(), int64(7), "edit_materials").Return(true, nil)

		link, err := svc.PreviewLink(ctx, 7, 42)
		require.NoError(t, err)
		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "en", u.Query().Get("lang"))
		assert.NotEmpty(t, u.Query().Get("token"))
	})

	t.Run("default link without frontend", func(t *testing.T) {
		svc, postRepo, userRepo := newTestPreviewService(t, "")
		postRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(post, nil)
		userRepo.EXPECT().HasCapability(gomock.Any(), int64(3), "edit_others_materials").Return(true, nil)

		link, err := svc.PreviewLink(ctx, 3, 42)
		require.NoError(t, err)
		assert.Equal(t, "https://cms.example.com/?p=42&preview=true", link)
	})

	t.Run("non-author without capability gets cms link", func(t *testing.T) {
		svc, postRepo, userRepo := newTestPreviewService(t, "https://front.example.com/preview")
		postRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(post, nil)
		userRepo.EXPECT().HasCapability(gomock.Any(), int64(9), "edit_others_materials").Return(false, nil)

		link, err := svc.PreviewLink(ctx, 9, 42)
		require.NoError(t, err)
		assert.Equal(t, "https://cms.example.com/?p=42&preview=true", link)
		assert.NotContains(t, link, "token=")
	})

	t.Run("post not found", func(t *testing.T) {
		svc, postRepo, _ := newTestPreviewService(t, "https://front.example.com/preview")
		postRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, pkgerrors.ErrPostNotFound)

		_, err := svc.PreviewLink(ctx, 3, 5)
		assert.ErrorIs(t, err, pkgerrors.ErrPostNotFound)
	})
}

func TestPreviewService_Verify(t *testing.T) {
	ctx := context.Background()
	post := &models.Post{ID: 42, AuthorID: 7, Type: "material"}

	issue := func(t *testing.T, payload auth.Payload, ttl time.Duration) string {
		token, err := auth.IssueToken(payload, ttl, []byte("preview-secret"))
		require.NoError(t, err)
		return token
	}

	t.Run("valid token", func(t *testing.T) {
		svc, postRepo, userRepo := newTestPreviewService(t, "")
		token := issue(t, auth.Payload{"id": 42, "type": "material"}, time.Minute)
		postRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(post, nil)
		userRepo.EXPECT().HasCapability(gomock.Any(), int64(3), "edit_others_materials").Return(true, nil)

		res, err := svc.Verify(ctx, 3, models.PreviewCheck{Token: token, ID: 42, Type: "material"})
		require.NoError(t, err)
		assert.Equal(t, &models.PreviewResult{Valid: true, ID: 42, Type: "material"}, res)
	})

	t.Run("missing data", func(t *testing.T) {
		svc, _, _ := newTestPreviewService(t, "")
		_, err := svc.Verify(ctx, 3, models.PreviewCheck{ID: 42, Type: "material"})
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidInput)
	})

	t.Run("wrong signature collapses to invalid token", func(t *testing.T) {
		svc, _, _ := newTestPreviewService(t, "")
		token, err := auth.IssueToken(auth.Payload{"id": 42, "type": "material"}, time.Minute, []byte("other"))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, 3, models.PreviewCheck{Token: token, ID: 42, Type: "material"})
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidToken)
		assert.False(t, errors.Is(err, pkgerrors.ErrInvalidSignature))
	})

	t.Run("expired token", func(t *testing.T) {
		svc, _, _ := newTestPreviewService(t, "")
		token := issue(t, auth.Payload{"id": 42, "type": "material"}, time.Second)
		svc.signer = expiredSigner{}

		_, err := svc.Verify(ctx, 3, models.PreviewCheck{Token: token, ID: 42, Type: "material"})
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidToken)
	})

	t.Run("id mismatch", func(t *testing.T) {
		svc, _, _ := newTestPreviewService(t, "")
		token := issue(t, auth.Payload{"id": 41, "type": "material"}, time.Minute)

		_, err := svc.Verify(ctx, 3, models.PreviewCheck{Token: token, ID: 42, Type: "material"})
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidToken)
	})

	t.Run("type mismatch", func(t *testing.T) {
		svc, _, _ := newTestPreviewService(t, "")
		token := issue(t, auth.Payload{"id": 42, "type": "fibre"}, time.Minute)

		_, err := svc.Verify(ctx, 3, models.PreviewCheck{Token: token, ID: 42, Type: "material"})
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidToken)
	})

	t.Run("cannot edit", func(t *testing.T) {
		svc, postRepo, userRepo := newTestPreviewService(t, "")
		token := issue(t, auth.Payload{"id": 42, "type": "material"}, time.Minute)
		postRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(post, nil)
		userRepo.EXPECT().HasCapability(gomock.Any(), int64(9), "edit_others_materials").Return(false, nil)

		_, err := svc.Verify(ctx, 9, models.PreviewCheck{Token: token, ID: 42, Type: "material"})
		assert.ErrorIs(t, err, pkgerrors.ErrInsufficientCapability)
	})

	t.Run("deleted post", func(t *testing.T) {
		svc, postRepo, _ := newTestPreviewService(t, "")
		token := issue(t, auth.Payload{"id": 42, "type": "material"}, time.Minute)
		postRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, pkgerrors.ErrPostNotFound)

		_, err := svc.Verify(ctx, 3, models.PreviewCheck{Token: token, ID: 42, Type: "material"})
		assert.ErrorIs(t, err, pkgerrors.ErrInsufficientCapability)
	})
}

type expiredSigner struct{}

func (expiredSigner) Issue(auth.Payload, time.Duration) (string, error) { return "", nil }

func (expiredSigner) Verify(string) (auth.Payload, error) { return nil, pkgerrors.ErrExpiredToken }
