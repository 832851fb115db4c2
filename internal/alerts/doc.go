// Package alerts schedules crash alerts for users. A single background
// worker serializes recompute requests so that cancel-then-schedule cycles
// for a user never interleave.
package alerts
