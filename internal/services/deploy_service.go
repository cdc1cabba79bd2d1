package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/honeynil/headless-broker/internal/infrastructure/observability"
	"github.com/honeynil/headless-broker/internal/infrastructure/redis"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const deployLockKey = "deploy:build:lock"

type DeployService interface {
	// Trigger notifies the build hook unless one was sent within the throttle
	// window. It reports whether a notification went out.
	Trigger(ctx context.Context, reason string) (bool, error)
}

type HookPoster interface {
	Post(ctx context.Context, url string, body any) error
}

type deployService struct {
	redisClient redis.RedisClient
	hook        HookPoster
	hookURL     string
	siteURL     string
	throttle    time.Duration
	now         func() time.Time
}

func NewDeployService(redisClient redis.RedisClient, hook HookPoster, hookURL, siteURL string, throttle time.Duration) *deployService {
	return &deployService{
		redisClient: redisClient,
		hook:        hook,
		hookURL:     hookURL,
		siteURL:     siteURL,
		throttle:    throttle,
		now:         time.Now,
	}
}

type buildNotification struct {
	TriggeredBy string `json:"triggered_by"`
	Timestamp   int64  `json:"timestamp"`
	SiteURL     string `json:"site_url"`
}

func (s *deployService) Trigger(ctx context.Context, reason string) (bool, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "TriggerDeploy")
	defer span.End()
	span.SetAttributes(attribute.String("reason", reason))

	if s.hookURL == "" {
		observability.DeployTriggers.WithLabelValues("disabled").Inc()
		slog.Debug("build hook not configured, skipping deploy", "reason", reason)
		return false, nil
	}

	acquired, err := s.redisClient.SetNX(ctx, deployLockKey, s.now().Unix(), s.throttle)
	if err != nil {
		observability.DeployTriggers.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to acquire deploy lock")
		slog.Error("failed to acquire deploy lock", "reason", reason, "error", err)
		return false, err
	}
	if !acquired {
		observability.DeployTriggers.WithLabelValues("throttled").Inc()
		slog.Info("deploy throttled", "reason", reason, "window", s.throttle)
		return false, nil
	}

	body := buildNotification{
		TriggeredBy: reason,
		Timestamp:   s.now().Unix(),
		SiteURL:     s.siteURL,
	}
	if err := s.hook.Post(ctx, s.hookURL, body); err != nil {
		observability.DeployTriggers.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "build hook failed")
		slog.Error("failed to notify build hook", "reason", reason, "error", err)
		return false, err
	}

	observability.DeployTriggers.WithLabelValues("sent").Inc()
	slog.Info("deploy triggered", "reason", reason)
	return true, nil
}
