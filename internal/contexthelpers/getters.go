package contexthelpers

import (
	"context"
)

// CurrentUserID returns the session user ID or 0 when no user has been
// resolved for the request.
func CurrentUserID(ctx context.Context) int64 {
	userID, ok := ctx.Value(CurrentUserIDContextKey).(int64)
	if !ok {
		return 0
	}
	return userID
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}
	return currentPath
}

func TraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
