package log

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	ModeDebug      = "debug"
	ModeProduction = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)
