// Package memory implements the store contract with in-process Go
// collections: a keyed record table with an ordered scan index, an
// append-mostly note log, and lazily rebuilt snapshot views that isolate
// open cursors from concurrent writes.
//
// Synchronization is one read-write lock per provider. Every mutation and
// every snapshot rebuild runs under the write lock; reads of a fresh
// snapshot take the read lock; cursor iteration takes no lock at all since
// it walks an immutable copy.
package memory
