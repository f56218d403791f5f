package memory

import (
	"github.com/google/uuid"

	"github.com/oshokin/alarm-record-store/internal/domain/alarm"
)

// alarmCursor filters a frozen record snapshot. Forward-only, single pass:
// Next advances, Record exposes a cursor-owned copy of the match. A nil
// snap marks the cursor exhausted for good.
type alarmCursor struct {
	snap     []alarm.Record
	pos      int
	class    *alarm.Class
	openOnly bool
	// Half-open window [from, to) over created time, in epoch millis.
	from, to int64
	current  alarm.Record
}

// Next advances to the next matching record and reports whether one was
// found. Records before the window are skipped; the first record at or past
// the upper bound ends the scan, since the snapshot is non-decreasing in
// created time.
func (c *alarmCursor) Next() bool {
	for c.snap != nil && c.pos < len(c.snap) {
		record := &c.snap[c.pos]
		c.pos++

		if c.openOnly && record.Closed {
			continue
		}

		if !c.class.Matches(record.Class) {
			continue
		}

		if record.CreatedTime < c.from {
			continue
		}

		if record.CreatedTime >= c.to {
			break
		}

		c.current = *record

		return true
	}

	c.snap = nil

	return false
}

// Record returns the cursor's result buffer, valid until the next call to
// Next. Callers never see the stored record itself.
func (c *alarmCursor) Record() *alarm.Record {
	return &c.current
}

// Close releases the snapshot reference. Idempotent.
func (c *alarmCursor) Close() {
	c.snap = nil
}

// noteCursor linearly scans a frozen note snapshot for one record's notes.
type noteCursor struct {
	snap     []alarm.Note
	pos      int
	recordID uuid.UUID
	current  alarm.Note
}

// Next advances to the next note referencing the target record.
func (c *noteCursor) Next() bool {
	for c.snap != nil && c.pos < len(c.snap) {
		note := &c.snap[c.pos]
		c.pos++

		if note.RecordID != c.recordID {
			continue
		}

		c.current = *note

		return true
	}

	c.snap = nil

	return false
}

// Note returns the cursor's result buffer, valid until the next call to Next.
func (c *noteCursor) Note() *alarm.Note {
	return &c.current
}

// Close releases the snapshot reference. Idempotent.
func (c *noteCursor) Close() {
	c.snap = nil
}
