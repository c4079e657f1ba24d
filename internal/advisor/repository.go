package advisor

import (
	"log/slog"
	"time"

	"github.com/ahertta/readyday/internal/errors"
	"github.com/ahertta/readyday/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// ErrNotFound marks a missing record.
var ErrNotFound = errors.NewSentinel("not found")

// baseRepository holds what every SQLite-backed repository needs.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{
		db:     db,
		logger: logger,
	}
}

// AssessmentRecord is a persisted readiness assessment.
type AssessmentRecord struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Result
}

// EnvironmentRecord is a persisted environment submission together with its
// derived impact at the time of recording.
type EnvironmentRecord struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Input     EnvironmentInput `json:"input"`
	Impact
}
