package storefront

import "sync"

// Line is one basket entry: a food snapshot plus a quantity. The snapshot is
// frozen at add-time, so later catalog edits do not change a held basket.
type Line struct {
	Food
	Quantity int
}

// Basket is the customer's in-progress selection, keyed by food ID with at
// most one line per food. It lives only for the page session.
type Basket struct {
	mu    sync.Mutex
	lines []Line
}

func NewBasket() *Basket {
	return &Basket{}
}

// Toggle adds the food with quantity 1 when absent and removes the line
// entirely when present. Re-adding never increments.
func (b *Basket) Toggle(food Food) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, line := range b.lines {
		if line.ID == food.ID {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			return
		}
	}
	b.lines = append(b.lines, Line{Food: food, Quantity: 1})
}

// SetQuantity applies a delta to the line's quantity, floored at 1. Unknown
// IDs are a no-op.
func (b *Basket) SetQuantity(id string, delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.lines {
		if b.lines[i].ID == id {
			quantity := b.lines[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			b.lines[i].Quantity = quantity
			return
		}
	}
}

func (b *Basket) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, line := range b.lines {
		if line.ID == id {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			return
		}
	}
}

func (b *Basket) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

func (b *Basket) Contains(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, line := range b.lines {
		if line.ID == id {
			return true
		}
	}
	return false
}

func (b *Basket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Lines returns the basket contents in insertion order.
func (b *Basket) Lines() []Line {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Total is recomputed on demand, never cached.
func (b *Basket) Total() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	var total int64
	for _, line := range b.lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}
