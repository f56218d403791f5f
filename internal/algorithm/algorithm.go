package algorithm

// Algorithm decides whether a source value constitutes an alarm condition
// and renders the alarm message for it.
type Algorithm interface {
	// IsAlarm reports whether the value is alarmable.
	IsAlarm(value any) bool
	// Message renders the human-readable alarm message for the value.
	Message(value any) string
}
