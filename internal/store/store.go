package store

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/alarm-record-store/internal/domain/alarm"
)

// ErrDuplicateID is returned when a record is inserted under an identifier
// that is already present. Rejecting instead of overwriting prevents a stored
// record from silently aliasing the caller's object.
var ErrDuplicateID = errors.New("duplicate record identifier")

// Provider is the storage contract consumed by the surrounding platform.
//
// Absent results are ordinary: Get reports absence through its boolean,
// Delete on a missing identifier is a silent no-op, and queries over an
// empty store yield exhausted cursors. Errors are reserved for contract
// violations such as duplicate inserts.
type Provider interface {
	// Add inserts a new record. The identifier must not be present yet;
	// ErrDuplicateID is returned otherwise.
	Add(ctx context.Context, record *alarm.Record) error

	// Save updates the stored record with the same identifier in place,
	// copying the mutable fields of the argument onto it. An absent
	// identifier is inserted.
	Save(ctx context.Context, record *alarm.Record) error

	// Delete removes the record and every note referencing it.
	// No-op when the identifier is absent.
	Delete(ctx context.Context, id uuid.UUID)

	// DeleteAll removes every record and every note.
	DeleteAll(ctx context.Context)

	// Get returns a copy of the record with the given identifier,
	// or (nil, false) when absent.
	Get(ctx context.Context, id uuid.UUID) (*alarm.Record, bool)

	// AddNote appends a note to the note log.
	AddNote(ctx context.Context, note *alarm.Note)

	// Notes returns a cursor over the notes referencing the identifier,
	// in append order.
	Notes(ctx context.Context, id uuid.UUID) NoteCursor

	// Query returns a cursor over records matching the parameters,
	// ordered by created time.
	Query(ctx context.Context, params QueryParams) AlarmCursor

	// OpenAlarms returns a cursor over open records of the given class
	// (nil matches any class), ordered by created time.
	OpenAlarms(ctx context.Context, class *alarm.Class) AlarmCursor
}

// QueryParams filters an alarm query. The zero value matches every record.
type QueryParams struct {
	// Class restricts results to a classification tag; nil matches any.
	Class *alarm.Class
	// OpenOnly drops records whose alarm condition has cleared.
	OpenOnly bool
	// From is the inclusive lower bound on created time; nil is unbounded.
	From *time.Time
	// To is the exclusive upper bound on created time; nil is unbounded.
	To *time.Time
}

// Window converts the optional time bounds to the half-open millisecond
// interval [from, to) used by cursors, with absent bounds widened to the
// full range of representable timestamps.
func (p QueryParams) Window() (from, to int64) {
	from, to = math.MinInt64, math.MaxInt64
	if p.From != nil {
		from = p.From.UnixMilli()
	}

	if p.To != nil {
		to = p.To.UnixMilli()
	}

	return from, to
}

// AlarmCursor is a single-pass, forward-only iterator over query results.
//
// Next advances the cursor and reports whether a record was found; Record
// then exposes a cursor-owned copy that stays valid until the next call to
// Next. Once Next returns false it returns false forever. The iteration
// sequence is frozen when the cursor is opened: writes issued afterwards are
// only visible to cursors opened later.
type AlarmCursor interface {
	Next() bool
	Record() *alarm.Record
	// Close releases the underlying view. Idempotent. The in-memory
	// provider holds no external resources, but durable variants will,
	// so callers should always close cursors.
	Close()
}

// NoteCursor iterates the notes attached to one record, in append order,
// with the same advance-then-read and exhaustion semantics as AlarmCursor.
type NoteCursor interface {
	Next() bool
	Note() *alarm.Note
	Close()
}
