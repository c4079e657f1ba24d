package advisor

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ahertta/readyday/internal/contexthelpers"
	"github.com/ahertta/readyday/internal/errors"
	"github.com/ahertta/readyday/internal/sqlite"
)

// assessmentRepository persists readiness assessments.
type assessmentRepository struct {
	baseRepository
}

func newAssessmentRepository(db *sqlite.Database, logger *slog.Logger) *assessmentRepository {
	return &assessmentRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// Insert stores a readiness assessment for the current user.
func (r *assessmentRepository) Insert(ctx context.Context, result Result) (AssessmentRecord, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	createdAt := time.Now().UTC()

	explanationJSON, err := json.Marshal(result.Explanation)
	if err != nil {
		return AssessmentRecord{}, errors.Wrap(err, "marshal explanation")
	}

	res, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO readiness_assessments (
			user_id, created_at, sleep_hours, stress_level, fatigue_level,
			muscle_soreness, available_time, readiness_score, decision, explanation
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID,
		createdAt.Format(timestampFormat),
		result.SleepHours,
		result.StressLevel,
		result.FatigueLevel,
		result.MuscleSoreness,
		result.AvailableTime,
		result.ReadinessScore,
		result.Decision.String(),
		string(explanationJSON),
	)
	if err != nil {
		return AssessmentRecord{}, errors.Wrap(err, "insert readiness assessment")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return AssessmentRecord{}, errors.Wrap(err, "last insert id")
	}

	return AssessmentRecord{
		ID:        id,
		CreatedAt: createdAt,
		Result:    result,
	}, nil
}

// List retrieves the current user's assessments, newest first.
func (r *assessmentRepository) List(ctx context.Context, limit int) (_ []AssessmentRecord, err error) {
	userID := contexthelpers.CurrentUserID(ctx)

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, created_at, sleep_hours, stress_level, fatigue_level,
		       muscle_soreness, available_time, readiness_score, decision, explanation
		FROM readiness_assessments
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query readiness assessments")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	records := []AssessmentRecord{}
	for rows.Next() {
		var (
			record          AssessmentRecord
			createdAtStr    string
			decisionStr     string
			explanationJSON string
		)
		if err = rows.Scan(
			&record.ID,
			&createdAtStr,
			&record.SleepHours,
			&record.StressLevel,
			&record.FatigueLevel,
			&record.MuscleSoreness,
			&record.AvailableTime,
			&record.ReadinessScore,
			&decisionStr,
			&explanationJSON,
		); err != nil {
			return nil, errors.Wrap(err, "scan assessment row")
		}

		if record.CreatedAt, err = time.Parse(timestampFormat, createdAtStr); err != nil {
			return nil, errors.Wrap(err, "parse created_at")
		}
		if record.Decision, err = ParseDecision(decisionStr); err != nil {
			return nil, errors.Wrap(err, "parse decision")
		}
		if err = json.Unmarshal([]byte(explanationJSON), &record.Explanation); err != nil {
			return nil, errors.Wrap(err, "unmarshal explanation")
		}

		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate assessment rows")
	}

	return records, nil
}
