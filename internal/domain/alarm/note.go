package alarm

import "github.com/google/uuid"

// Note is a timestamped free-text annotation attached to a record.
// It references the record by identifier and is immutable once created.
// Notes are created only through the store's note-append operation and are
// removed only when the record they reference is deleted.
type Note struct {
	// RecordID identifies the record the note annotates.
	RecordID uuid.UUID
	// Timestamp is when the note was written, in epoch milliseconds.
	Timestamp int64
	// User is who wrote the note.
	User string
	// Text is the note body.
	Text string
}

// Clone returns a copy of the note.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}

	cloned := *n

	return &cloned
}
