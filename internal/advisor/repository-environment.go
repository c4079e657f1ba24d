package advisor

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ahertta/readyday/internal/contexthelpers"
	"github.com/ahertta/readyday/internal/errors"
	"github.com/ahertta/readyday/internal/sqlite"
)

// environmentRepository persists environment submissions and their impact.
type environmentRepository struct {
	baseRepository
}

func newEnvironmentRepository(db *sqlite.Database, logger *slog.Logger) *environmentRepository {
	return &environmentRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// Insert stores an environment submission for the current user.
func (r *environmentRepository) Insert(
	ctx context.Context,
	input EnvironmentInput,
	impact Impact,
) (EnvironmentRecord, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	createdAt := time.Now().UTC()

	adjustmentsJSON, err := json.Marshal(impact.Adjustments)
	if err != nil {
		return EnvironmentRecord{}, errors.Wrap(err, "marshal adjustments")
	}

	res, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO environment_records (
			user_id, created_at, aqi, temperature_celsius, is_heatwave,
			lockdown_status, has_local_event, severity, allow_outdoor,
			max_intensity_percent, max_duration_minutes, recommended_location,
			adjustments
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID,
		createdAt.Format(timestampFormat),
		input.AQI,
		input.TemperatureC,
		input.IsHeatwave,
		string(input.LockdownStatus),
		input.HasLocalEvent,
		impact.Severity.String(),
		impact.Constraints.AllowOutdoor,
		impact.Constraints.MaxIntensityPercent,
		impact.Constraints.MaxDurationMinutes,
		string(impact.Constraints.RecommendedLocation),
		string(adjustmentsJSON),
	)
	if err != nil {
		return EnvironmentRecord{}, errors.Wrap(err, "insert environment record")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return EnvironmentRecord{}, errors.Wrap(err, "last insert id")
	}

	return EnvironmentRecord{
		ID:        id,
		CreatedAt: createdAt,
		Input:     input,
		Impact:    impact,
	}, nil
}

// List retrieves the current user's environment records, newest first.
func (r *environmentRepository) List(ctx context.Context, limit int) (_ []EnvironmentRecord, err error) {
	userID := contexthelpers.CurrentUserID(ctx)

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, created_at, aqi, temperature_celsius, is_heatwave,
		       lockdown_status, has_local_event
		FROM environment_records
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query environment records")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	records := []EnvironmentRecord{}
	for rows.Next() {
		var record EnvironmentRecord
		record, err = scanEnvironmentRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate environment rows")
	}

	return records, nil
}

// Latest retrieves the current user's most recent environment record, or
// ErrNotFound when none exists.
func (r *environmentRepository) Latest(ctx context.Context) (EnvironmentRecord, error) {
	userID := contexthelpers.CurrentUserID(ctx)

	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, created_at, aqi, temperature_celsius, is_heatwave,
		       lockdown_status, has_local_event
		FROM environment_records
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, userID)

	record, err := scanEnvironmentRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return EnvironmentRecord{}, ErrNotFound
	}
	if err != nil {
		return EnvironmentRecord{}, err
	}
	return record, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEnvironmentRow reads the stored inputs and recomputes the impact from
// them. The engine is deterministic, so recomputing keeps historical records
// consistent with the current rules rather than trusting stored derived data.
func scanEnvironmentRow(row rowScanner) (EnvironmentRecord, error) {
	var (
		record         EnvironmentRecord
		createdAtStr   string
		lockdownStatus string
	)
	if err := row.Scan(
		&record.ID,
		&createdAtStr,
		&record.Input.AQI,
		&record.Input.TemperatureC,
		&record.Input.IsHeatwave,
		&lockdownStatus,
		&record.Input.HasLocalEvent,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EnvironmentRecord{}, err
		}
		return EnvironmentRecord{}, errors.Wrap(err, "scan environment row")
	}

	createdAt, err := time.Parse(timestampFormat, createdAtStr)
	if err != nil {
		return EnvironmentRecord{}, errors.Wrap(err, "parse created_at")
	}
	record.CreatedAt = createdAt
	record.Input.LockdownStatus = LockdownStatus(lockdownStatus)
	record.Impact = CalculateEnvironmentImpact(record.Input)

	return record, nil
}
