package advisor

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ahertta/readyday/internal/errors"
	"github.com/ahertta/readyday/internal/sqlite"
)

// defaultHistoryLimit bounds history queries when the caller does not ask for
// a specific limit.
const defaultHistoryLimit = 50

// Service coordinates the decision engine with persistence. Engine functions
// stay pure; the service owns validation, storage and logging.
type Service struct {
	assessments  *assessmentRepository
	environments *environmentRepository
	logger       *slog.Logger
}

// NewService creates an advisor service backed by the given database.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		assessments:  newAssessmentRepository(db, logger),
		environments: newEnvironmentRepository(db, logger),
		logger:       logger,
	}
}

// Assess computes and persists a readiness assessment from raw proxy values.
func (s *Service) Assess(ctx context.Context, proxy Proxy) (AssessmentRecord, error) {
	if err := proxy.Validate(); err != nil {
		return AssessmentRecord{}, err
	}

	result := CalculateReadiness(proxy)
	record, err := s.assessments.Insert(ctx, result)
	if err != nil {
		return AssessmentRecord{}, errors.Wrap(err, "persist assessment")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "readiness assessed",
		slog.Int("score", result.ReadinessScore),
		slog.String("decision", result.Decision.String()))

	return record, nil
}

// AssessCheckIn derives proxy values from a 1-5 check-in and assesses them.
func (s *Service) AssessCheckIn(ctx context.Context, checkIn CheckIn) (AssessmentRecord, error) {
	if err := checkIn.Validate(); err != nil {
		return AssessmentRecord{}, err
	}
	return s.Assess(ctx, DeriveProxy(checkIn))
}

// RecordEnvironment computes and persists the impact of an environment
// submission.
func (s *Service) RecordEnvironment(ctx context.Context, input EnvironmentInput) (EnvironmentRecord, error) {
	if err := input.Validate(); err != nil {
		return EnvironmentRecord{}, err
	}

	impact := CalculateEnvironmentImpact(input)
	record, err := s.environments.Insert(ctx, input, impact)
	if err != nil {
		return EnvironmentRecord{}, errors.Wrap(err, "persist environment record")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "environment recorded",
		slog.String("severity", impact.Severity.String()),
		slog.Int("rules_fired", len(impact.Adjustments)))

	return record, nil
}

// AssessCombined computes the combined readiness and persists both the
// underlying assessment and the environment record.
func (s *Service) AssessCombined(
	ctx context.Context,
	proxy Proxy,
	input EnvironmentInput,
) (CombinedResult, error) {
	if err := proxy.Validate(); err != nil {
		return CombinedResult{}, err
	}
	if err := input.Validate(); err != nil {
		return CombinedResult{}, err
	}

	combined := CombinedReadiness(proxy, input)

	// Persist the biological assessment with its base decision so history
	// reflects what the body reported, independent of that day's environment.
	if _, err := s.assessments.Insert(ctx, Result{
		ReadinessScore: combined.ReadinessScore,
		Decision:       combined.BaseDecision,
		Explanation:    combined.ReadinessExplanation,
		SleepHours:     proxy.SleepHours,
		StressLevel:    proxy.StressLevel,
		FatigueLevel:   proxy.FatigueLevel,
		MuscleSoreness: proxy.MuscleSoreness,
		AvailableTime:  proxy.AvailableTime,
	}); err != nil {
		return CombinedResult{}, errors.Wrap(err, "persist assessment")
	}
	if _, err := s.environments.Insert(ctx, input, Impact{
		Constraints: combined.Constraints,
		Adjustments: combined.EnvironmentAdjustments,
		Severity:    combined.EnvironmentSeverity,
	}); err != nil {
		return CombinedResult{}, errors.Wrap(err, "persist environment record")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "combined readiness assessed",
		slog.Int("score", combined.ReadinessScore),
		slog.String("base_decision", combined.BaseDecision.String()),
		slog.String("final_decision", combined.FinalDecision.String()))

	return combined, nil
}

// AssessmentHistory returns the current user's assessments, newest first.
func (s *Service) AssessmentHistory(ctx context.Context, limit int) ([]AssessmentRecord, error) {
	return s.assessments.List(ctx, normalizeLimit(limit))
}

// EnvironmentHistory returns the current user's environment records, newest
// first.
func (s *Service) EnvironmentHistory(ctx context.Context, limit int) ([]EnvironmentRecord, error) {
	return s.environments.List(ctx, normalizeLimit(limit))
}

// LatestEnvironmentImpact recomputes the impact from the most recent stored
// environment inputs. Returns ErrNotFound when the user has no records.
func (s *Service) LatestEnvironmentImpact(ctx context.Context) (Impact, error) {
	record, err := s.environments.Latest(ctx)
	if err != nil {
		return Impact{}, err
	}
	return record.Impact, nil
}

// History bundles both record streams.
type History struct {
	Assessments  []AssessmentRecord  `json:"assessments"`
	Environments []EnvironmentRecord `json:"environment_records"`
}

// FullHistory fetches both record streams concurrently over the read pool.
func (s *Service) FullHistory(ctx context.Context, limit int) (History, error) {
	var history History

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.assessments.List(ctx, normalizeLimit(limit))
		if err != nil {
			return errors.Wrap(err, "list assessments")
		}
		history.Assessments = records
		return nil
	})
	g.Go(func() error {
		records, err := s.environments.List(ctx, normalizeLimit(limit))
		if err != nil {
			return errors.Wrap(err, "list environment records")
		}
		history.Environments = records
		return nil
	})
	if err := g.Wait(); err != nil {
		return History{}, err
	}

	return history, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return defaultHistoryLimit
	}
	return limit
}
