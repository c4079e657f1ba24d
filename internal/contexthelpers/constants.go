package contexthelpers

type contextKey string

const CurrentUserIDContextKey = contextKey("currentUserID")
const CurrentPathContextKey = contextKey("currentPath")
const TraceIDContextKey = contextKey("traceID")
