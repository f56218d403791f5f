// Package alarm contains the core domain types of the record store.
//
// It defines Record (one alarm occurrence), Note (a free-text annotation on a
// record), Class (a shared classification tag) and the total order used by
// the store's scan index, with Clone/CopyFrom helpers to avoid leaking
// internal references.
package alarm
