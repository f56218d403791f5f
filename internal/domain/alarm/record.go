package alarm

import (
	"bytes"

	"github.com/google/uuid"
)

// Record represents one alarm occurrence.
//
// ID, CreatedTime and Class are fixed at creation; the remaining fields are
// mutable and updated in place via CopyFrom so that object identity stays
// stable for anyone already holding the record.
type Record struct {
	// ID uniquely identifies the record within a store.
	ID uuid.UUID
	// Class is the classification tag of the record. Shared, never owned.
	Class *Class
	// CreatedTime is when the alarm was raised, in epoch milliseconds.
	CreatedTime int64
	// SourcePath names the data source that raised the alarm.
	SourcePath string
	// Message is the human-readable alarm description.
	Message string
	// CurrentValue is the source value rendered as text at the last update.
	CurrentValue string
	// Closed is true once the alarm condition has cleared.
	Closed bool
	// NormalTime is when the condition cleared, in epoch milliseconds.
	// Zero while the alarm is open.
	NormalTime int64
	// AckTime is when the alarm was acknowledged, in epoch milliseconds.
	// Zero while unacknowledged.
	AckTime int64
	// AckUser is who acknowledged the alarm.
	AckUser string
}

// CopyFrom overwrites all mutable fields of r with the values from src.
// ID, CreatedTime and Class are identity and never change after creation.
func (r *Record) CopyFrom(src *Record) {
	r.SourcePath = src.SourcePath
	r.Message = src.Message
	r.CurrentValue = src.CurrentValue
	r.Closed = src.Closed
	r.NormalTime = src.NormalTime
	r.AckTime = src.AckTime
	r.AckUser = src.AckUser
}

// Clone returns a copy of the record. The Class pointer is shared on
// purpose: classes are reference entities, not part of the record's state.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	cloned := *r

	return &cloned
}

// IsOpen reports whether the alarm condition is still active.
func (r *Record) IsOpen() bool {
	return !r.Closed
}

// Compare defines the total order used by the store's scan index:
// records with equal identifiers are equal regardless of field state,
// otherwise ascending created time, with identifier byte order breaking
// created-time ties so the order stays strict.
func Compare(a, b *Record) int {
	if a == b || a.ID == b.ID {
		return 0
	}

	switch {
	case a.CreatedTime < b.CreatedTime:
		return -1
	case a.CreatedTime > b.CreatedTime:
		return 1
	}

	return bytes.Compare(a.ID[:], b.ID[:])
}
