package logschema

// Log schema constants for structured logs emitted by the simulation pipeline.
const (
	SchemaID    = "splitbar.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
	FieldRunID     = "run_id"
	FieldSimName   = "sim_name"
	FieldTask      = "task"
	FieldSimTime   = "sim_time"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}
