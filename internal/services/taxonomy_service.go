package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	stderrors "errors"

	"github.com/honeynil/headless-broker/internal/infrastructure/kafka"
	"github.com/honeynil/headless-broker/internal/models"
	"github.com/honeynil/headless-broker/internal/repository"
	"github.com/honeynil/headless-broker/internal/taxonomy"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type TaxonomyService interface {
	SetFieldTerms(ctx context.Context, userID, postID int64, taxName string, termIDs []int64) ([]int64, error)
	SyncParents(ctx context.Context, postID int64) error
	BulkInsert(ctx context.Context, userID int64, taxName, text string, parentID int64) (*models.BulkInsertResult, error)
	TaxonomyInfo(ctx context.Context, name string) (*models.Taxonomy, error)
	Terms(ctx context.Context, name string) ([]models.Term, error)
}

// TargetTaxonomies names the taxonomies whose selected terms always carry their ancestors.
type TargetTaxonomies interface {
	IsTargetTaxonomy(name string) bool
	TargetTaxonomyNames() []string
}

type taxonomyService struct {
	termRepo repository.TermRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	producer kafka.KafkaProducer
	topic    string
	targets  TargetTaxonomies
	now      func() time.Time
}

func NewTaxonomyService(
	termRepo repository.TermRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	producer kafka.KafkaProducer,
	topic string,
	targets TargetTaxonomies,
) *taxonomyService {
	return &taxonomyService{
		termRepo: termRepo,
		postRepo: postRepo,
		userRepo: userRepo,
		producer: producer,
		topic:    topic,
		targets:  targets,
		now:      time.Now,
	}
}

// ancestorLookup adapts TermRepository.Ancestors to taxonomy.AncestorFunc. The first
// repository error stops further lookups and is reported by the returned func.
func (s *taxonomyService) ancestorLookup(ctx context.Context, taxName string) (taxonomy.AncestorFunc, func() error) {
	var lookupErr error
	fn := func(termID int64) []int64 {
		if lookupErr != nil {
			return nil
		}
		ids, err := s.termRepo.Ancestors(ctx, taxName, termID)
		if err != nil {
			lookupErr = err
			return nil
		}
		return ids
	}
	return fn, func() error { return lookupErr }
}

func (s *taxonomyService) SetFieldTerms(ctx context.Context, userID, postID int64, taxName string, termIDs []int64) ([]int64, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "SetFieldTerms")
	defer span.End()
	span.SetAttributes(attribute.Int64("post_id", postID), attribute.String("taxonomy", taxName))

	if _, err := s.termRepo.GetTaxonomy(ctx, taxName); err != nil {
		span.SetStatus(codes.Error, "taxonomy lookup failed")
		slog.Warn("failed to load taxonomy", "taxonomy", taxName, "error", err)
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		span.SetStatus(codes.Error, "post lookup failed")
		slog.Warn("failed to load post", "post_id", postID, "error", err)
		return nil, err
	}

	ok, err := canEditPost(ctx, s.userRepo, userID, post)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "capability check failed")
		slog.Error("failed to check edit capability", "post_id", postID, "user_id", userID, "error", err)
		return nil, err
	}
	if !ok {
		span.SetStatus(codes.Error, "cannot edit post")
		return nil, pkgerrors.ErrInsufficientCapability
	}

	ids, err := s.knownTerms(ctx, taxName, termIDs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "term lookup failed")
		slog.Error("failed to look up submitted terms", "taxonomy", taxName, "post_id", postID, "error", err)
		return nil, err
	}

	if s.targets.IsTargetTaxonomy(taxName) {
		lookup, lookupErr := s.ancestorLookup(ctx, taxName)
		ids = taxonomy.BuildChain(ids, lookup)
		if err := lookupErr(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "ancestor lookup failed")
			slog.Error("failed to resolve term ancestors", "taxonomy", taxName, "post_id", postID, "error", err)
			return nil, err
		}
	}

	if err := s.termRepo.SetObjectTerms(ctx, postID, taxName, ids); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to store terms")
		slog.Error("failed to store field terms", "taxonomy", taxName, "post_id", postID, "error", err)
		return nil, err
	}

	slog.Info("field terms stored", "taxonomy", taxName, "post_id", postID, "terms", ids)
	return ids, nil
}

// knownTerms keeps the positive ids that exist in taxName, once each, in submitted order.
func (s *taxonomyService) knownTerms(ctx context.Context, taxName string, termIDs []int64) ([]int64, error) {
	candidates := make([]int64, 0, len(termIDs))
	seen := make(map[int64]bool, len(termIDs))
	for _, id := range termIDs {
		if id > 0 && !seen[id] {
			seen[id] = true
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return candidates, nil
	}

	existing, err := s.termRepo.ExistingTerms(ctx, taxName, candidates)
	if err != nil {
		return nil, err
	}
	found := make(map[int64]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}

	ids := make([]int64, 0, len(candidates))
	var dropped []int64
	for _, id := range candidates {
		if found[id] {
			ids = append(ids, id)
		} else {
			dropped = append(dropped, id)
		}
	}
	if len(dropped) > 0 {
		slog.Warn("dropped terms outside taxonomy", "taxonomy", taxName, "terms", dropped)
	}
	return ids, nil
}

func (s *taxonomyService) SyncParents(ctx context.Context, postID int64) error {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "SyncParents")
	defer span.End()
	span.SetAttributes(attribute.Int64("post_id", postID))

	for _, taxName := range s.targets.TargetTaxonomyNames() {
		if _, err := s.termRepo.GetTaxonomy(ctx, taxName); err != nil {
			if stderrors.Is(err, pkgerrors.ErrTaxonomyNotFound) {
				continue
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "taxonomy lookup failed")
			return err
		}

		selected, err := s.termRepo.GetObjectTerms(ctx, postID, taxName)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to load post terms")
			slog.Error("failed to load post terms", "post_id", postID, "taxonomy", taxName, "error", err)
			return err
		}
		if len(selected) == 0 {
			continue
		}

		lookup, lookupErr := s.ancestorLookup(ctx, taxName)
		missing := taxonomy.MissingAncestors(selected, lookup)
		if err := lookupErr(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "ancestor lookup failed")
			slog.Error("failed to resolve term ancestors", "post_id", postID, "taxonomy", taxName, "error", err)
			return err
		}
		if len(missing) == 0 {
			continue
		}

		if err := s.termRepo.AddObjectTerms(ctx, postID, taxName, missing); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to attach ancestors")
			slog.Error("failed to attach missing ancestors", "post_id", postID, "taxonomy", taxName, "error", err)
			return err
		}
		slog.Info("attached missing ancestors", "post_id", postID, "taxonomy", taxName, "terms", missing)
	}
	return nil
}

func (s *taxonomyService) BulkInsert(ctx context.Context, userID int64, taxName, text string, parentID int64) (*models.BulkInsertResult, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "BulkInsert")
	defer span.End()
	span.SetAttributes(attribute.String("taxonomy", taxName), attribute.Int64("user_id", userID))

	ok, err := s.userRepo.HasCapability(ctx, userID, models.CapManageCategories)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "capability check failed")
		slog.Error("failed to check capability", "user_id", userID, "error", err)
		return nil, err
	}
	if !ok {
		span.SetStatus(codes.Error, "cannot manage terms")
		slog.Warn("bulk insert denied", "user_id", userID, "taxonomy", taxName)
		return nil, pkgerrors.ErrInsufficientCapability
	}

	tax, err := s.termRepo.GetTaxonomy(ctx, taxName)
	if err != nil {
		span.SetStatus(codes.Error, "taxonomy lookup failed")
		return nil, err
	}

	entries := taxonomy.ParseOutline(text)
	if len(entries) == 0 {
		span.SetStatus(codes.Error, "empty outline")
		return nil, fmt.Errorf("%w: no terms to insert", pkgerrors.ErrInvalidInput)
	}
	if !tax.Hierarchical {
		parentID = 0
	}
	if parentID > 0 {
		found, err := s.termRepo.ExistingTerms(ctx, taxName, []int64{parentID})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "parent lookup failed")
			slog.Error("failed to look up parent term", "taxonomy", taxName, "parent_id", parentID, "error", err)
			return nil, err
		}
		if len(found) == 0 {
			span.SetStatus(codes.Error, "unknown parent")
			slog.Warn("bulk insert parent not found", "taxonomy", taxName, "parent_id", parentID)
			return nil, fmt.Errorf("%w: parent %d", pkgerrors.ErrTermNotFound, parentID)
		}
	}

	result := &models.BulkInsertResult{Inserted: []string{}, Notices: []string{}}
	parents := make(map[int]int64)
	var created []int64

	for _, entry := range entries {
		parent := parentID
		if tax.Hierarchical && entry.Depth > 0 {
			if id, ok := parents[entry.Depth-1]; ok {
				parent = id
			}
		}

		id, err := s.termRepo.Create(ctx, &models.Term{
			Taxonomy: taxName,
			Name:     entry.Name,
			ParentID: parent,
		})
		switch {
		case stderrors.Is(err, pkgerrors.ErrTermExists):
			parents[entry.Depth] = id
			result.Notices = append(result.Notices, fmt.Sprintf("%s: Already exists (reusing for hierarchy)", entry.Name))
		case err != nil:
			slog.Warn("failed to insert term", "taxonomy", taxName, "name", entry.Name, "error", err)
			result.Notices = append(result.Notices, fmt.Sprintf("%s: %v", entry.Name, err))
		default:
			parents[entry.Depth] = id
			result.Inserted = append(result.Inserted, entry.DisplayName())
			created = append(created, id)
		}

		for depth := range parents {
			if depth > entry.Depth {
				delete(parents, depth)
			}
		}
	}

	s.publishCreated(ctx, taxName, created)

	slog.Info("bulk insert finished",
		"taxonomy", taxName,
		"inserted", len(result.Inserted),
		"notices", len(result.Notices))
	return result, nil
}

func (s *taxonomyService) publishCreated(ctx context.Context, taxName string, termIDs []int64) {
	for _, id := range termIDs {
		event := models.ContentEvent{
			Kind:      models.EventTermCreated,
			TermID:    id,
			Taxonomy:  taxName,
			CreatedAt: s.now().UTC().Format(time.RFC3339),
		}
		if err := s.producer.Publish(ctx, s.topic, event); err != nil {
			slog.Error("failed to publish term event", "term_id", id, "taxonomy", taxName, "error", err)
		}
	}
}

func (s *taxonomyService) TaxonomyInfo(ctx context.Context, name string) (*models.Taxonomy, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "TaxonomyInfo")
	defer span.End()

	tax, err := s.termRepo.GetTaxonomy(ctx, name)
	if err != nil {
		span.SetStatus(codes.Error, "taxonomy lookup failed")
		return nil, err
	}
	return tax, nil
}

func (s *taxonomyService) Terms(ctx context.Context, name string) ([]models.Term, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "Terms")
	defer span.End()

	if _, err := s.termRepo.GetTaxonomy(ctx, name); err != nil {
		span.SetStatus(codes.Error, "taxonomy lookup failed")
		return nil, err
	}

	terms, err := s.termRepo.ListTerms(ctx, name, models.OrderByName, 0)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list terms")
		slog.Error("failed to list terms", "taxonomy", name, "error", err)
		return nil, err
	}

	slog.Info("terms listed", "taxonomy", name, "count", len(terms))
	return terms, nil
}
