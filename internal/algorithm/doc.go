// Package algorithm contains the alarm-detection side of the system: the
// Algorithm contract deciding when a source value is alarmable, a boolean
// truthiness implementation, and the Watch lifecycle that raises and clears
// records through the store.
//
// The store itself stays ignorant of detection; it only sees the inserts and
// updates a Watch issues on state transitions.
package algorithm
