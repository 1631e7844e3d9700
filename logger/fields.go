package logger

// Standard field key constants for structured logging.
const (
	FieldComponent  = "component"
	FieldPath       = "path"
	FieldOutcome    = "outcome"
	FieldReason     = "reason"
	FieldFallback   = "fallback"
	FieldDecisionID = "decision_id"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("denied", logger.Fields(logger.FieldPath, "users.get", logger.FieldReason, "not authenticated"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
