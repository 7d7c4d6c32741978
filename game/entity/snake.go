package entity

import "torus-snake/game/types"

const minBodyCapacity = 16

// Body is the ordered set of cells occupied by the snake.
// Cells are stored in a ring buffer: tail at buf[start], head at buf[start+n-1].
type Body struct {
	buf   []types.Point
	start int
	n     int
}

// NewBody returns an empty body with room for capacity cells before growing
func NewBody(capacity int) *Body {
	if capacity < minBodyCapacity {
		capacity = minBodyCapacity
	}
	return &Body{buf: make([]types.Point, capacity)}
}

// Len returns the number of cells in the body
func (b *Body) Len() int {
	return b.n
}

// PushHead appends p as the new head
func (b *Body) PushHead(p types.Point) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.buf[(b.start+b.n)%len(b.buf)] = p
	b.n++
}

// PopTail removes and returns the tail cell. It panics on an empty body.
func (b *Body) PopTail() types.Point {
	if b.n == 0 {
		panic("entity: PopTail on empty body")
	}
	p := b.buf[b.start]
	b.start = (b.start + 1) % len(b.buf)
	b.n--
	return p
}

// Head returns the most recently added cell
func (b *Body) Head() types.Point {
	if b.n == 0 {
		panic("entity: Head on empty body")
	}
	return b.buf[(b.start+b.n-1)%len(b.buf)]
}

// Tail returns the oldest cell
func (b *Body) Tail() types.Point {
	if b.n == 0 {
		panic("entity: Tail on empty body")
	}
	return b.buf[b.start]
}

// Contains scans the body from tail to head for p
func (b *Body) Contains(p types.Point) bool {
	for i := 0; i < b.n; i++ {
		if b.buf[(b.start+i)%len(b.buf)] == p {
			return true
		}
	}
	return false
}

// Each calls fn for every cell from tail to head
func (b *Body) Each(fn func(i int, p types.Point)) {
	for i := 0; i < b.n; i++ {
		fn(i, b.buf[(b.start+i)%len(b.buf)])
	}
}

// Cells returns a copy of the body ordered tail to head
func (b *Body) Cells() []types.Point {
	cells := make([]types.Point, 0, b.n)
	b.Each(func(_ int, p types.Point) {
		cells = append(cells, p)
	})
	return cells
}

func (b *Body) grow() {
	buf := make([]types.Point, len(b.buf)*2)
	for i := 0; i < b.n; i++ {
		buf[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	b.buf = buf
	b.start = 0
}
