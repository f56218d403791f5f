package algorithm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/alarm-record-store/internal/domain/alarm"
	"github.com/oshokin/alarm-record-store/internal/logger"
)

// Recorder is the narrow slice of the store contract a watch needs to raise
// and clear alarms.
type Recorder interface {
	Add(ctx context.Context, record *alarm.Record) error
	Get(ctx context.Context, id uuid.UUID) (*alarm.Record, bool)
	Save(ctx context.Context, record *alarm.Record) error
}

// Watch binds one data source to an algorithm and a store. It tracks the
// identifier of its open alarm record, raises a new record on a
// normal-to-alarm transition and closes it on the way back.
//
// A watch is not safe for concurrent use; each source has exactly one owner
// feeding it values. Re-evaluation after an algorithm parameter change is
// the owner's responsibility: call Update again with the last value.
type Watch struct {
	// source names the data source being watched.
	source string
	// class is the classification assigned to records this watch raises.
	class *alarm.Class
	// algorithm decides when a value is alarmable.
	algorithm Algorithm
	// recorder is the store the watch writes records to.
	recorder Recorder

	// alarmID is the identifier of the open record, valid while open.
	alarmID uuid.UUID
	// open tracks whether this watch currently has an open alarm.
	open bool
}

// NewWatch creates a watch for the given source.
func NewWatch(source string, class *alarm.Class, algorithm Algorithm, recorder Recorder) *Watch {
	return &Watch{
		source:    source,
		class:     class,
		algorithm: algorithm,
		recorder:  recorder,
	}
}

// IsOpen reports whether the watch currently has an open alarm record.
func (w *Watch) IsOpen() bool {
	return w.open
}

// AlarmID returns the identifier of the current alarm record. Only
// meaningful while IsOpen reports true.
func (w *Watch) AlarmID() uuid.UUID {
	return w.alarmID
}

// Update feeds a new source value to the watch and applies the resulting
// state transition to the store, if any.
func (w *Watch) Update(ctx context.Context, value any) error {
	isAlarm := w.algorithm.IsAlarm(value)

	switch {
	case isAlarm && !w.open:
		return w.raise(ctx, value)
	case isAlarm && w.open:
		return w.refresh(ctx, value)
	case !isAlarm && w.open:
		return w.clear(ctx, value)
	default:
		return nil
	}
}

// raise inserts a new open record for the source.
func (w *Watch) raise(ctx context.Context, value any) error {
	record := &alarm.Record{
		ID:           uuid.New(),
		Class:        w.class,
		CreatedTime:  time.Now().UnixMilli(),
		SourcePath:   w.source,
		Message:      w.algorithm.Message(value),
		CurrentValue: fmt.Sprint(value),
	}

	if err := w.recorder.Add(ctx, record); err != nil {
		return fmt.Errorf("raise alarm for %s: %w", w.source, err)
	}

	w.alarmID = record.ID
	w.open = true

	logger.InfoKV(ctx, "Alarm raised", "source", w.source, "record_id", record.ID)

	return nil
}

// refresh updates the current value on the open record without changing
// its state.
func (w *Watch) refresh(ctx context.Context, value any) error {
	record, ok := w.recorder.Get(ctx, w.alarmID)
	if !ok {
		// The record was deleted out from under us; treat as closed.
		w.open = false

		return nil
	}

	record.CurrentValue = fmt.Sprint(value)
	record.Message = w.algorithm.Message(value)

	if err := w.recorder.Save(ctx, record); err != nil {
		return fmt.Errorf("refresh alarm for %s: %w", w.source, err)
	}

	return nil
}

// clear closes the open record.
func (w *Watch) clear(ctx context.Context, value any) error {
	record, ok := w.recorder.Get(ctx, w.alarmID)
	w.open = false

	if !ok {
		return nil
	}

	record.Closed = true
	record.NormalTime = time.Now().UnixMilli()
	record.CurrentValue = fmt.Sprint(value)

	if err := w.recorder.Save(ctx, record); err != nil {
		return fmt.Errorf("clear alarm for %s: %w", w.source, err)
	}

	logger.InfoKV(ctx, "Alarm cleared", "source", w.source, "record_id", record.ID)

	return nil
}
