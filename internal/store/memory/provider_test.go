package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-record-store/internal/domain/alarm"
	"github.com/oshokin/alarm-record-store/internal/store"
)

// newRecord builds a record for tests.
func newRecord(class *alarm.Class, createdTime int64) *alarm.Record {
	return &alarm.Record{
		ID:          uuid.New(),
		Class:       class,
		CreatedTime: createdTime,
		Message:     "raised",
	}
}

// TestAddAndGet verifies that Get returns the last stored state per
// identifier and that the returned copy cannot mutate the store.
func TestAddAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	record := newRecord(alarm.NewClass("hvac"), 10)
	require.NoError(t, p.Add(ctx, record))

	got, ok := p.Get(ctx, record.ID)
	require.True(t, ok)
	require.Equal(t, record.ID, got.ID)
	require.Equal(t, "raised", got.Message)

	// Mutating the returned copy must not touch stored state.
	got.Message = "tampered"

	again, ok := p.Get(ctx, record.ID)
	require.True(t, ok)
	require.Equal(t, "raised", again.Message)
}

// TestAddDuplicateID verifies that inserting an existing identifier fails
// loudly and leaves the stored record untouched.
func TestAddDuplicateID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	record := newRecord(nil, 10)
	require.NoError(t, p.Add(ctx, record))

	dup := record.Clone()
	dup.Message = "imposter"
	require.ErrorIs(t, p.Add(ctx, dup), store.ErrDuplicateID)

	got, ok := p.Get(ctx, record.ID)
	require.True(t, ok)
	require.Equal(t, "raised", got.Message)
}

// TestGetAbsent verifies that absence is an ordinary result, not an error.
func TestGetAbsent(t *testing.T) {
	t.Parallel()

	got, ok := NewProvider().Get(context.Background(), uuid.New())
	require.False(t, ok)
	require.Nil(t, got)
}

// TestSaveUpdatesInPlace verifies copy-assign update semantics and snapshot
// isolation: a cursor opened before the update surfaces the values frozen at
// snapshot time, a cursor opened after it surfaces the new ones.
func TestSaveUpdatesInPlace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	record := newRecord(nil, 10)
	require.NoError(t, p.Add(ctx, record))

	before := p.Query(ctx, store.QueryParams{})
	defer before.Close()

	update := record.Clone()
	update.Message = "updated"
	update.Closed = true
	require.NoError(t, p.Save(ctx, update))

	require.True(t, before.Next())
	require.Equal(t, "raised", before.Record().Message)
	require.False(t, before.Record().Closed)
	require.False(t, before.Next())

	after := p.Query(ctx, store.QueryParams{})
	defer after.Close()

	require.True(t, after.Next())
	require.Equal(t, "updated", after.Record().Message)
	require.True(t, after.Record().Closed)

	got, ok := p.Get(ctx, record.ID)
	require.True(t, ok)
	require.Equal(t, "updated", got.Message)
}

// TestSaveAbsentInserts verifies the documented upsert behavior of Save.
func TestSaveAbsentInserts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	record := newRecord(nil, 10)
	require.NoError(t, p.Save(ctx, record))

	got, ok := p.Get(ctx, record.ID)
	require.True(t, ok)
	require.Equal(t, record.ID, got.ID)
}

// TestDeleteCascadesNotes verifies that deleting a record removes every note
// referencing it and leaves other records' notes alone.
func TestDeleteCascadesNotes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	doomed := newRecord(nil, 10)
	kept := newRecord(nil, 20)
	require.NoError(t, p.Add(ctx, doomed))
	require.NoError(t, p.Add(ctx, kept))

	p.AddNote(ctx, &alarm.Note{RecordID: doomed.ID, Timestamp: 11, Text: "first"})
	p.AddNote(ctx, &alarm.Note{RecordID: kept.ID, Timestamp: 21, Text: "other"})
	p.AddNote(ctx, &alarm.Note{RecordID: doomed.ID, Timestamp: 12, Text: "second"})

	p.Delete(ctx, doomed.ID)

	_, ok := p.Get(ctx, doomed.ID)
	require.False(t, ok)

	gone := p.Notes(ctx, doomed.ID)
	defer gone.Close()
	require.False(t, gone.Next())

	remaining := p.Notes(ctx, kept.ID)
	defer remaining.Close()
	require.True(t, remaining.Next())
	require.Equal(t, "other", remaining.Note().Text)
	require.False(t, remaining.Next())
}

// TestDeleteAbsentIsNoOp verifies silent no-op deletion.
func TestDeleteAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	record := newRecord(nil, 10)
	require.NoError(t, p.Add(ctx, record))

	p.Delete(ctx, uuid.New())

	_, ok := p.Get(ctx, record.ID)
	require.True(t, ok)
}

// TestDeleteAllClearsEverything verifies that no prior state survives.
func TestDeleteAllClearsEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	a := newRecord(nil, 10)
	b := newRecord(nil, 20)
	require.NoError(t, p.Add(ctx, a))
	require.NoError(t, p.Add(ctx, b))
	p.AddNote(ctx, &alarm.Note{RecordID: a.ID, Timestamp: 11, Text: "note"})

	p.DeleteAll(ctx)

	_, ok := p.Get(ctx, a.ID)
	require.False(t, ok)
	_, ok = p.Get(ctx, b.ID)
	require.False(t, ok)

	alarms := p.Query(ctx, store.QueryParams{})
	defer alarms.Close()
	require.False(t, alarms.Next())

	notes := p.Notes(ctx, a.ID)
	defer notes.Close()
	require.False(t, notes.Next())
}

// TestCursorFrozenAgainstLaterWrites verifies the isolation contract: writes
// after a cursor is opened affect only future snapshots.
func TestCursorFrozenAgainstLaterWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	first := newRecord(nil, 10)
	require.NoError(t, p.Add(ctx, first))

	cursor := p.Query(ctx, store.QueryParams{})
	defer cursor.Close()

	require.NoError(t, p.Add(ctx, newRecord(nil, 20)))
	p.Delete(ctx, first.ID)

	require.True(t, cursor.Next())
	require.Equal(t, first.ID, cursor.Record().ID)
	require.False(t, cursor.Next())

	fresh := p.Query(ctx, store.QueryParams{})
	defer fresh.Close()

	require.True(t, fresh.Next())
	require.EqualValues(t, 20, fresh.Record().CreatedTime)
	require.False(t, fresh.Next())
}

// TestScanOrder verifies ascending created-time order regardless of
// insertion order.
func TestScanOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewProvider()

	times := []int64{30, 10, 20, 20, 40}
	for _, ts := range times {
		require.NoError(t, p.Add(ctx, newRecord(nil, ts)))
	}

	cursor := p.Query(ctx, store.QueryParams{})
	defer cursor.Close()

	var got []int64
	for cursor.Next() {
		got = append(got, cursor.Record().CreatedTime)
	}

	require.Equal(t, []int64{10, 20, 20, 30, 40}, got)
}
