package algorithm

import (
	"fmt"
	"strings"
)

// Boolean raises alarms when a source value's truthiness equals AlarmValue.
// Booleans are taken as-is, numbers are true when non-zero, and strings are
// matched against well-known spellings of true and false. Values with no
// recognizable truthiness are never alarms.
type Boolean struct {
	// AlarmValue is the truth value considered alarmable.
	AlarmValue bool
}

var _ Algorithm = (*Boolean)(nil)

// IsAlarm reports whether the value's truthiness equals the configured
// alarm value.
func (b *Boolean) IsAlarm(value any) bool {
	truth, ok := truthiness(value)

	return ok && truth == b.AlarmValue
}

// Message renders the alarm message for the value.
func (b *Boolean) Message(value any) string {
	return fmt.Sprintf("Value = %v", value)
}

// truthiness maps a source value to a boolean, reporting whether the value
// has a recognizable truth interpretation at all.
func truthiness(value any) (truth, ok bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case int:
		return v != 0, true
	case int64:
		return v != 0, true
	case float64:
		return v != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "on", "active":
			return true, true
		case "false", "0", "off", "inactive":
			return false, true
		}

		return false, false
	default:
		return false, false
	}
}
