package routines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jcmateus/kalisfit/internal/telemetry/metrics"
	"github.com/jcmateus/kalisfit/internal/telemetry/tracing"
	"github.com/jcmateus/kalisfit/internal/users"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// recommendedLimit caps the routines returned by Recommend.
const recommendedLimit = 5

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=routines_test

type routinesRepo interface {
	Query(ctx context.Context, levelFilter string) ([]Routine, error)
	GetHeader(ctx context.Context, id string) (*Routine, error)
	ListExercises(ctx context.Context, routineID string) ([]Exercise, error)
	Upsert(ctx context.Context, routine Routine) (*Routine, error)
}

type profileGetter interface {
	Get(ctx context.Context, uid string) (*users.UserProfile, error)
}

type Service struct {
	repo     routinesRepo
	profiles profileGetter

	// assembled routine details, keyed by routine id
	cache           *freecache.Cache
	cacheTTLSeconds int

	metrics *metrics.Manager
}

func NewService(
	repo routinesRepo,
	profiles profileGetter,
	cacheSizeBytes int,
	cacheTTLSeconds int,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:            repo,
		profiles:        profiles,
		cache:           freecache.NewCache(cacheSizeBytes),
		cacheTTLSeconds: cacheTTLSeconds,
		metrics:         metricsManager,
	}
}

// List returns the routines matching the given filter. The level predicate
// is pushed to storage, the rest is matched in memory.
func (s *Service) List(ctx context.Context, filter Filter) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	candidates, err := s.repo.Query(ctx, filter.Level)
	if err != nil {
		return nil, fmt.Errorf("query routines: %w", err)
	}

	matched := Match(candidates, filter)
	span.SetAttributes(attribute.Int("routines.matched", len(matched)))

	return matched, nil
}

// Recommend selects routines for the given user based on their profile
// (level, goals, training locations), capped at a few top entries.
func (s *Service) Recommend(ctx context.Context, uid string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.recommend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", uid))

	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	matched, err := s.List(ctx, Filter{
		Level:     profile.Level,
		Goals:     profile.Goals,
		Locations: profile.TrainingLocations,
	})
	if err != nil {
		return nil, err
	}

	if len(matched) > recommendedLimit {
		matched = matched[:recommendedLimit]
	}

	return matched, nil
}

// Detail assembles one full routine: header document plus the ordered
// exercise list. Not found is a normal outcome and yields (nil, nil).
// Assembled details are cached until the next upsert of that routine.
func (s *Service) Detail(ctx context.Context, id string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	if cached, cacheErr := s.cache.Get([]byte(id)); cacheErr == nil {
		var routine Routine
		unmarshalErr := json.Unmarshal(cached, &routine)
		if unmarshalErr == nil {
			s.metrics.CounterRoutineCacheHits.Inc()
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &routine, nil
		}
		log.Errorf("unmarshal cached routine %s: %s", id, unmarshalErr)
	}
	s.metrics.CounterRoutineCacheMisses.Inc()

	header, err := s.repo.GetHeader(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get routine: %w", err)
	}

	exercises, err := s.repo.ListExercises(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	routine := *header
	routine.Exercises = exercises

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("marshal routine %s for cache: %s", id, err)
	} else if err := s.cache.Set([]byte(id), routineJson, s.cacheTTLSeconds); err != nil {
		log.Errorf("cache routine %s: %s", id, err)
	}

	return &routine, nil
}

// Upsert stores the routine and drops its cached detail.
func (s *Service) Upsert(ctx context.Context, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stored, err := s.repo.Upsert(ctx, routine)
	if err != nil {
		return nil, fmt.Errorf("upsert routine: %w", err)
	}

	s.cache.Del([]byte(stored.ID))
	s.metrics.CounterRoutineUpserts.Inc()
	log.Debugf("routine upserted: %s [%s]", stored.Name, stored.ID)

	return stored, nil
}
