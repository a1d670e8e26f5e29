// Package processor runs queued action runs on a pool of workers and keeps
// the run history up to date.
package processor
