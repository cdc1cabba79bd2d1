package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/honeynil/headless-broker/internal/models"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
)

// eventService turns CMS content events into deploys and parent-term syncs.
type eventService struct {
	deploy   DeployService
	taxonomy TaxonomyService
}

func NewEventService(deploy DeployService, taxonomy TaxonomyService) *eventService {
	return &eventService{deploy: deploy, taxonomy: taxonomy}
}

func (s *eventService) HandleContentEvent(ctx context.Context, event models.ContentEvent) error {
	switch event.Kind {
	case models.EventPostStatus:
		if event.OldStatus != models.StatusPublish && event.NewStatus != models.StatusPublish {
			return nil
		}
		_, err := s.deploy.Trigger(ctx, "post:"+event.PostType)
		return err

	case models.EventPostSaved:
		if event.Autosave || event.Revision || event.PostID <= 0 {
			return nil
		}
		return s.taxonomy.SyncParents(ctx, event.PostID)

	case models.EventTermCreated, models.EventTermEdited, models.EventTermDeleted:
		_, err := s.deploy.Trigger(ctx, "term:"+event.Taxonomy)
		return err
	}

	slog.Warn("unknown content event", "kind", event.Kind)
	return fmt.Errorf("%w: %s", pkgerrors.ErrUnknownEvent, event.Kind)
}
