// Package container defines the shared contract of the fixed-capacity
// containers: the sentinel errors returned on capacity or occupancy misuse and
// the names of the storage variants that can be selected at construction time.
//
// The containers themselves live in sub-packages:
//
//   - slot  – fixed block of cells classified empty or occupied
//   - stack – bounded LIFO over slot storage (or a growable-backed variant)
//   - queue – bounded FIFO over slot storage (plus ring and growable variants)
//
// None of the containers is safe for concurrent use.
package container
