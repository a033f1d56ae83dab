package ports

import (
	"context"
	"time"
)

// AddExerciseInput carries everything needed to log an exercise. Date is the
// raw client value ("YYYY-MM-DD") and may be empty, in which case the server's
// current date is used.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    int
	Date        string
}

// ExerciseResult is the combined user+exercise projection returned after
// logging an exercise.
type ExerciseResult struct {
	UserID      string
	Username    string
	Description string
	Duration    int
	Date        time.Time
}

// GetLogsInput carries the raw query parameters for log retrieval. From, To
// and Limit are unparsed client strings; empty means "not provided".
type GetLogsInput struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// LogEntry is a single exercise in a retrieved log.
type LogEntry struct {
	Description string
	Duration    int
	Date        time.Time
}

// LogResult is returned by GetLogs. Count is the number of entries actually
// returned, after the limit is applied.
type LogResult struct {
	UserID   string
	Username string
	Count    int
	Log      []LogEntry
}

// ExerciseService defines use-case operations for exercise logging.
type ExerciseService interface {
	Add(ctx context.Context, input AddExerciseInput) (*ExerciseResult, error)
	GetLogs(ctx context.Context, input GetLogsInput) (*LogResult, error)
}
