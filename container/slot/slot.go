// Package slot provides a fixed-length block of storage cells. Each cell is
// either empty or holds exactly one live value.
//
// Storage performs no bounds or occupancy checks: the owning container decides
// when a cell may be written or taken, based on its own counters.
package slot

type cell[T any] struct {
	value    T
	occupied bool
}

// Storage is a block of N cells allocated once at construction.
type Storage[T any] struct {
	cells []cell[T]
}

// Write stores value at index and marks the cell occupied. The caller must
// have classified the cell as empty.
func (s *Storage[T]) Write(index int, value T) {
	c := &s.cells[index]
	c.value = value
	c.occupied = true
}

// Take moves the value out of index and marks the cell empty. The caller must
// have classified the cell as occupied.
func (s *Storage[T]) Take(index int) T {
	c := &s.cells[index]
	value := c.value
	var zero T
	c.value = zero
	c.occupied = false
	return value
}

// Occupied reports whether the cell at index holds a live value.
func (s *Storage[T]) Occupied(index int) bool {
	return s.cells[index].occupied
}

// Len returns the number of cells, zero for nil storage.
func (s *Storage[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Release empties every still occupied cell in [from, to). Empty cells are
// left untouched.
func (s *Storage[T]) Release(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		c := &s.cells[i]
		if !c.occupied {
			continue
		}
		c.value = zero
		c.occupied = false
	}
}

// New allocates storage with n empty cells.
func New[T any](n int) *Storage[T] {
	if n < 0 {
		n = 0
	}
	return &Storage[T]{cells: make([]cell[T], n)}
}
