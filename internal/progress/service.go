package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/jcmateus/kalisfit/internal/telemetry/metrics"
	"github.com/jcmateus/kalisfit/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Badges awarded when the completed-routine counter crosses a milestone.
var badgeMilestones = map[int]string{
	1:  "Primera Rutina",
	10: "10 Rutinas",
	50: "50 Rutinas",
}

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type progressRepo interface {
	Add(ctx context.Context, userUID string, record Record) error
	List(ctx context.Context, userUID string) ([]Record, error)
}

type profileUpdater interface {
	IncrementCompletedRoutines(ctx context.Context, uid string) (int, error)
	AddBadge(ctx context.Context, uid, badge string) error
}

type Service struct {
	repo     progressRepo
	profiles profileUpdater
	metrics  *metrics.Manager

	// injectable for tests
	now func() time.Time
}

func NewService(repo progressRepo, profiles profileUpdater, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

// Record persists one completed-routine event. The record's date and id
// are stamped here, and the total duration is recomputed from the
// exercise durations. Milestone badge awarding is best effort: a failure
// there does not fail the recording.
func (s *Service) Record(ctx context.Context, uid string, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", uid))

	record.ID = uuid.NewString()
	record.Date = s.now().Format(time.RFC3339)
	if record.Goals == nil {
		record.Goals = []string{}
	}
	if record.Exercises == nil {
		record.Exercises = []ExerciseDone{}
	}

	record.TotalSeconds = 0
	for _, exercise := range record.Exercises {
		record.TotalSeconds += exercise.DurationSeconds
	}

	if err := s.repo.Add(ctx, uid, record); err != nil {
		return nil, fmt.Errorf("add progress record: %w", err)
	}
	s.metrics.CounterProgressRecords.Inc()

	completed, err := s.profiles.IncrementCompletedRoutines(ctx, uid)
	if err != nil {
		log.Errorf("increment completed routines for %s: %s", uid, err)
		return &record, nil
	}

	if badge, ok := badgeMilestones[completed]; ok {
		if err := s.profiles.AddBadge(ctx, uid, badge); err != nil {
			log.Errorf("add badge [%s] for %s: %s", badge, uid, err)
		} else {
			log.Debugf("badge awarded to %s: %s", uid, badge)
		}
	}

	return &record, nil
}

// History returns the user's full progress history (newest first)
// together with the derived weekly summary.
func (s *Service) History(ctx context.Context, uid string) (_ []Record, _ WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", uid))

	records, err := s.repo.List(ctx, uid)
	if err != nil {
		return nil, WeeklySummary{}, fmt.Errorf("list progress records: %w", err)
	}

	return records, Summarize(records, s.now()), nil
}
