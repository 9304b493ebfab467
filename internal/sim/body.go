package sim

import "github.com/snakelab/serpent/internal/grid"

// body is a ring buffer of cells ordered head-first: index 0 is the most
// recently occupied cell, the last index is the oldest. Push-front and
// pop-back are O(1); iteration order is stable for collision scans.
type body struct {
	cells []grid.Cell
	head  int // index of the head element
	n     int // number of occupied slots
}

const initialBodyCap = 8

func newBody(initial []grid.Cell) *body {
	capacity := initialBodyCap
	for capacity < len(initial) {
		capacity *= 2
	}

	b := &body{
		cells: make([]grid.Cell, capacity),
		n:     len(initial),
	}
	copy(b.cells, initial)
	return b
}

func (b *body) len() int {
	return b.n
}

// at returns the cell at position i, where 0 is the head.
func (b *body) at(i int) grid.Cell {
	return b.cells[(b.head+i)%len(b.cells)]
}

func (b *body) pushFront(c grid.Cell) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.head] = c
	b.n++
}

func (b *body) popBack() grid.Cell {
	c := b.at(b.n - 1)
	b.n--
	return c
}

func (b *body) contains(c grid.Cell) bool {
	for i := 0; i < b.n; i++ {
		if b.at(i) == c {
			return true
		}
	}
	return false
}

// snapshot returns the cells head-first as a fresh slice.
func (b *body) snapshot() []grid.Cell {
	out := make([]grid.Cell, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}

// grow doubles capacity, re-packing the ring so the head lands at index 0.
func (b *body) grow() {
	bigger := make([]grid.Cell, len(b.cells)*2)
	for i := 0; i < b.n; i++ {
		bigger[i] = b.at(i)
	}
	b.cells = bigger
	b.head = 0
}
