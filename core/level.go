package core

// Level specifies the severity of a log record, following the RFC 5424
// severity ladder used by structured log records.
type Level int

const (
	// DebugLevel is for detailed debugging information.
	DebugLevel Level = iota

	// InfoLevel is for interesting events.
	InfoLevel

	// NoticeLevel is for normal but significant events.
	NoticeLevel

	// WarningLevel is for exceptional occurrences that are not errors.
	WarningLevel

	// ErrorLevel is for runtime errors that do not require immediate action.
	ErrorLevel

	// CriticalLevel is for critical conditions.
	CriticalLevel

	// AlertLevel is for conditions requiring immediate action.
	AlertLevel

	// EmergencyLevel is for an unusable system.
	EmergencyLevel
)

// String returns the level name in upper case.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case NoticeLevel:
		return "NOTICE"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case AlertLevel:
		return "ALERT"
	case EmergencyLevel:
		return "EMERGENCY"
	default:
		return "UNKNOWN"
	}
}
