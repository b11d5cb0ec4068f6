package core

import "time"

// Entry is the strongly-typed log record shape. It mirrors the structured
// record generation of modern logging pipelines: a message, a severity, a
// channel, caller-supplied context, and processor-populated extra.
//
// Entries are treated as immutable values by processors. An updated entry is
// derived with With; the original is never modified in place.
type Entry struct {
	// Datetime is when the record was created.
	Datetime time.Time

	// Channel identifies the logger the record came from.
	Channel string

	// Level is the severity of the record.
	Level Level

	// Message is the log message.
	Message string

	// Context contains the caller-supplied structured data.
	Context map[string]any

	// Extra contains data attached by processors.
	Extra map[string]any
}

// With returns a copy of the entry with its context and extra replaced.
// All other fields carry over unchanged.
func (e *Entry) With(context, extra map[string]any) *Entry {
	clone := *e
	clone.Context = context
	clone.Extra = extra
	return &clone
}
