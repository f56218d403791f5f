package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/oshokin/alarm-record-store/internal/domain/alarm"
	"github.com/oshokin/alarm-record-store/internal/logger"
	"github.com/oshokin/alarm-record-store/internal/store"
)

// Provider is the in-memory record store.
//
// The keyed map and the ordered index hold the single authoritative copy of
// every record; snapshot views and query results only ever expose copies, so
// stored state cannot be mutated from outside.
type Provider struct {
	// mu guards every field below. Mutations and snapshot rebuilds take
	// the write lock, snapshot reads the read lock.
	mu sync.RWMutex
	// records is the authoritative mapping from identifier to record.
	records map[uuid.UUID]*alarm.Record
	// ordered is the scan index, sorted by alarm.Compare.
	ordered []*alarm.Record
	// notes is the note log, in append order.
	notes []*alarm.Note
	// alarmView is the frozen record snapshot served to cursors.
	// Nil means stale; rebuilt on the first read after a write.
	alarmView []alarm.Record
	// noteView is the frozen note snapshot. Nil means stale.
	noteView []alarm.Note

	// Counters reported by the Prometheus collector.
	alarmRebuilds uint64
	noteRebuilds  uint64
	mutations     uint64
}

var _ store.Provider = (*Provider)(nil)

// NewProvider creates an empty in-memory store.
func NewProvider() *Provider {
	return &Provider{
		records: make(map[uuid.UUID]*alarm.Record),
	}
}

// Add inserts a new record into the table and the ordered index.
// The stored copy is owned by the provider; the caller keeps its argument.
// Inserting an identifier that is already present returns ErrDuplicateID.
func (p *Provider) Add(_ context.Context, record *alarm.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.records[record.ID]; ok {
		return store.ErrDuplicateID
	}

	p.insertLocked(record.Clone())

	return nil
}

// Save copy-assigns the mutable fields of record onto the stored record with
// the same identifier, preserving the stored object's identity for any
// snapshot already built from it. An absent identifier is inserted.
func (p *Provider) Save(_ context.Context, record *alarm.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	existing, ok := p.records[record.ID]
	if !ok {
		p.insertLocked(record.Clone())

		return nil
	}

	if existing != record {
		existing.CopyFrom(record)
	}

	p.alarmView = nil
	p.mutations++

	return nil
}

// Delete removes the record and every note referencing it.
// No-op when the identifier is absent.
func (p *Provider) Delete(_ context.Context, id uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	record, ok := p.records[id]
	if !ok {
		return
	}

	delete(p.records, id)

	if i, found := slices.BinarySearchFunc(p.ordered, record, alarm.Compare); found {
		p.ordered = slices.Delete(p.ordered, i, i+1)
	}

	p.notes = slices.DeleteFunc(p.notes, func(n *alarm.Note) bool {
		return n.RecordID == id
	})

	p.alarmView = nil
	p.noteView = nil
	p.mutations++
}

// DeleteAll clears the table, the index and the note log atomically.
func (p *Provider) DeleteAll(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	logger.DebugKV(ctx, "Deleting all records", "records", len(p.records), "notes", len(p.notes))

	p.records = make(map[uuid.UUID]*alarm.Record)
	p.ordered = nil
	p.notes = nil
	p.alarmView = nil
	p.noteView = nil
	p.mutations++
}

// Get returns a copy of the record with the given identifier.
// Absence is an ordinary result, reported through the boolean.
func (p *Provider) Get(_ context.Context, id uuid.UUID) (*alarm.Record, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	record, ok := p.records[id]
	if !ok {
		return nil, false
	}

	return record.Clone(), true
}

// AddNote appends a note to the note log.
func (p *Provider) AddNote(_ context.Context, note *alarm.Note) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notes = append(p.notes, note.Clone())
	p.noteView = nil
	p.mutations++
}

// Notes returns a cursor over the notes referencing the identifier.
func (p *Provider) Notes(ctx context.Context, id uuid.UUID) store.NoteCursor {
	return &noteCursor{
		snap:     p.noteSnapshot(ctx),
		recordID: id,
	}
}

// Query returns a cursor over records matching the parameters, in scan
// index order (ascending created time).
func (p *Provider) Query(ctx context.Context, params store.QueryParams) store.AlarmCursor {
	from, to := params.Window()

	return &alarmCursor{
		snap:     p.alarmSnapshot(ctx),
		class:    params.Class,
		openOnly: params.OpenOnly,
		from:     from,
		to:       to,
	}
}

// OpenAlarms returns a cursor over open records of the given class,
// nil matching any class.
func (p *Provider) OpenAlarms(ctx context.Context, class *alarm.Class) store.AlarmCursor {
	return p.Query(ctx, store.QueryParams{
		Class:    class,
		OpenOnly: true,
	})
}

// insertLocked adds a provider-owned record to the map and the ordered
// index. Caller holds the write lock and has checked uniqueness.
func (p *Provider) insertLocked(record *alarm.Record) {
	p.records[record.ID] = record

	i, _ := slices.BinarySearchFunc(p.ordered, record, alarm.Compare)
	p.ordered = slices.Insert(p.ordered, i, record)

	p.alarmView = nil
	p.mutations++
}

// alarmSnapshot returns the frozen record view, rebuilding it from the
// ordered index when stale. The view holds record values, not pointers, so
// in-place updates stay invisible to cursors already walking it.
func (p *Provider) alarmSnapshot(ctx context.Context) []alarm.Record {
	p.mu.RLock()
	view := p.alarmView
	p.mu.RUnlock()

	if view != nil {
		return view
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another writer may have rebuilt while we waited for the lock.
	if p.alarmView == nil {
		view = make([]alarm.Record, len(p.ordered))
		for i, record := range p.ordered {
			view[i] = *record
		}

		p.alarmView = view
		p.alarmRebuilds++

		logger.DebugKV(ctx, "Alarm snapshot rebuilt", "records", len(view))
	}

	return p.alarmView
}

// noteSnapshot returns the frozen note view, rebuilding it when stale.
func (p *Provider) noteSnapshot(ctx context.Context) []alarm.Note {
	p.mu.RLock()
	view := p.noteView
	p.mu.RUnlock()

	if view != nil {
		return view
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.noteView == nil {
		view = make([]alarm.Note, len(p.notes))
		for i, note := range p.notes {
			view[i] = *note
		}

		p.noteView = view
		p.noteRebuilds++

		logger.DebugKV(ctx, "Note snapshot rebuilt", "notes", len(view))
	}

	return p.noteView
}

// snapshot of the provider counters for the Prometheus collector.
type providerStats struct {
	records       int
	openRecords   int
	notes         int
	alarmRebuilds uint64
	noteRebuilds  uint64
	mutations     uint64
}

func (p *Provider) stats() providerStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	open := 0
	for _, record := range p.ordered {
		if record.IsOpen() {
			open++
		}
	}

	return providerStats{
		records:       len(p.records),
		openRecords:   open,
		notes:         len(p.notes),
		alarmRebuilds: p.alarmRebuilds,
		noteRebuilds:  p.noteRebuilds,
		mutations:     p.mutations,
	}
}
