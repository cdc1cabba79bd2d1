package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	redismocks "github.com/honeynil/headless-broker/internal/infrastructure/redis/mocks"
	"github.com/honeynil/headless-broker/internal/models"
	servicemocks "github.com/honeynil/headless-broker/internal/services/mocks"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	calls []any
	url   string
	err   error
}

func (h *recordingHook) Post(_ context.Context, url string, body any) error {
	h.url = url
	h.calls = append(h.calls, body)
	return h.err
}

func TestDeployService_Trigger(t *testing.T) {
	ctx := context.Background()
	fixed := time.Unix(1700000000, 0)

	newService := func(t *testing.T, hookURL string, hook *recordingHook) (*deployService, *redismocks.MockRedisClient) {
		ctrl := gomock.NewController(t)
		redisClient := redismocks.NewMockRedisClient(ctrl)
		svc := NewDeployService(redisClient, hook, hookURL, "https://cms.example.com", time.Minute)
		svc.now = func() time.Time { return fixed }
		return svc, redisClient
	}

	t.Run("sends notification", func(t *testing.T) {
		hook := &recordingHook{}
		svc, redisClient := newService(t, "https://hooks.example.com/build", hook)
		redisClient.EXPECT().SetNX(gomock.Any(), "deploy:build:lock", fixed.Unix(), time.Minute).Return(true, nil)

		sent, err := svc.Trigger(ctx, "post:material")
		require.NoError(t, err)
		assert.True(t, sent)
		assert.Equal(t, "https://hooks.example.com/build", hook.url)
		require.Len(t, hook.calls, 1)
		assert.Equal(t, buildNotification{
			TriggeredBy: "post:material",
			Timestamp:   1700000000,
			SiteURL:     "https://cms.example.com",
		}, hook.calls[0])
	})

	t.Run("throttled", func(t *testing.T) {
		hook := &recordingHook{}
		svc, redisClient := newService(t, "https://hooks.example.com/build", hook)
		redisClient.EXPECT().SetNX(gomock.Any(), "deploy:build:lock", gomock.Any(), time.Minute).Return(false, nil)

		sent, err := svc.Trigger(ctx, "post:material")
		require.NoError(t, err)
		assert.False(t, sent)
		assert.Empty(t, hook.calls)
	})

	t.Run("no hook configured", func(t *testing.T) {
		hook := &recordingHook{}
		svc, _ := newService(t, "", hook)

		sent, err := svc.Trigger(ctx, "post:material")
		require.NoError(t, err)
		assert.False(t, sent)
		assert.Empty(t, hook.calls)
	})

	t.Run("lock error", func(t *testing.T) {
		hook := &recordingHook{}
		svc, redisClient := newService(t, "https://hooks.example.com/build", hook)
		redisClient.EXPECT().SetNX(gomock.Any(), "deploy:build:lock", gomock.Any(), time.Minute).Return(false, errors.New("redis down"))

		sent, err := svc.Trigger(ctx, "post:material")
		assert.EqualError(t, err, "redis down")
		assert.False(t, sent)
	})

	t.Run("hook failure", func(t *testing.T) {
		hook := &recordingHook{err: errors.New("build hook returned status 500")}
		svc, redisClient := newService(t, "https://hooks.example.com/build", hook)
		redisClient.EXPECT().SetNX(gomock.Any(), "deploy:build:lock", gomock.Any(), time.Minute).Return(true, nil)

		sent, err := svc.Trigger(ctx, "term:material_type")
		assert.Error(t, err)
		assert.False(t, sent)
	})
}

func TestEventService_HandleContentEvent(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*eventService, *servicemocks.MockDeployService, *servicemocks.MockTaxonomyService) {
		ctrl := gomock.NewController(t)
		deploy := servicemocks.NewMockDeployService(ctrl)
		taxonomy := servicemocks.NewMockTaxonomyService(ctrl)
		return NewEventService(deploy, taxonomy), deploy, taxonomy
	}

	t.Run("publish transition triggers deploy", func(t *testing.T) {
		svc, deploy, _ := newService(t)
		deploy.EXPECT().Trigger(gomock.Any(), "post:material").Return(true, nil)

		err := svc.HandleContentEvent(ctx, models.ContentEvent{
			Kind: models.EventPostStatus, PostType: "material", OldStatus: "draft", NewStatus: "publish",
		})
		assert.NoError(t, err)
	})

	t.Run("unpublish triggers deploy", func(t *testing.T) {
		svc, deploy, _ := newService(t)
		deploy.EXPECT().Trigger(gomock.Any(), "post:page").Return(false, nil)

		err := svc.HandleContentEvent(ctx, models.ContentEvent{
			Kind: models.EventPostStatus, PostType: "page", OldStatus: "publish", NewStatus: "trash",
		})
		assert.NoError(t, err)
	})

	t.Run("draft edits are ignored", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.HandleContentEvent(ctx, models.ContentEvent{
			Kind: models.EventPostStatus, PostType: "page", OldStatus: "draft", NewStatus: "pending",
		})
		assert.NoError(t, err)
	})

	t.Run("save syncs parents", func(t *testing.T) {
		svc, _, taxonomy := newService(t)
		taxonomy.EXPECT().SyncParents(gomock.Any(), int64(42)).Return(nil)

		assert.NoError(t, svc.HandleContentEvent(ctx, models.ContentEvent{Kind: models.EventPostSaved, PostID: 42}))
	})

	t.Run("autosave and revision skipped", func(t *testing.T) {
		svc, _, _ := newService(t)

		assert.NoError(t, svc.HandleContentEvent(ctx, models.ContentEvent{Kind: models.EventPostSaved, PostID: 42, Autosave: true}))
		assert.NoError(t, svc.HandleContentEvent(ctx, models.ContentEvent{Kind: models.EventPostSaved, PostID: 42, Revision: true}))
	})

	t.Run("term changes trigger deploy", func(t *testing.T) {
		svc, deploy, _ := newService(t)
		deploy.EXPECT().Trigger(gomock.Any(), "term:material_type").Return(true, nil).Times(3)

		for _, kind := range []models.EventKind{models.EventTermCreated, models.EventTermEdited, models.EventTermDeleted} {
			assert.NoError(t, svc.HandleContentEvent(ctx, models.ContentEvent{Kind: kind, TermID: 3, Taxonomy: "material_type"}))
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.HandleContentEvent(ctx, models.ContentEvent{Kind: "comment.created"})
		assert.ErrorIs(t, err, pkgerrors.ErrUnknownEvent)
	})
}
