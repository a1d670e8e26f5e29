// Package scheduler simulates round-robin CPU scheduling over a ready queue.
//
// Each dequeued process runs for at most one quantum on a simulated clock;
// unfinished processes are re-enqueued at the tail, finished ones are
// reported with the clock value at which they completed.
package scheduler
