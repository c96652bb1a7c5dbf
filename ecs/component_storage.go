package ecs

import (
	"iter"
	"reflect"
)

// componentColumn is a type-erased column of components inside an archetype.
type componentColumn interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry maps component types to column factories. Every Storage
// owns one, so independent worlds never share column state.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentColumn
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentColumn),
	}
}

// RegisterComponent makes T usable as a component. Spawning an entity with an
// unregistered component type panics.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentColumn {
		return &blockColumn[T]{}
	}
}

func (r *ComponentRegistry) factory(t reflect.Type) func() componentColumn {
	return r.factories[t]
}

const blockSize = 64

// blockColumn stores components of type T in fixed-size blocks. Blocks are
// heap allocated individually so pointers handed out by Get survive growth.
type blockColumn[T any] struct {
	blocks    []*[blockSize]T
	filled    []*[blockSize]bool
	freeSlots []int
	nextIndex int
	live      int
}

func (c *blockColumn[T]) slot(index int) (int, int, bool) {
	if index < 0 {
		return 0, 0, false
	}
	b, s := index/blockSize, index%blockSize
	if b >= len(c.blocks) {
		return 0, 0, false
	}
	return b, s, true
}

// Append stores item and returns its slot. Freed slots are reused first.
func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.freeSlots); n > 0 {
		index = c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
	} else {
		index = c.nextIndex
		c.nextIndex++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([blockSize]T))
			c.filled = append(c.filled, new([blockSize]bool))
		}
	}

	b, s := index/blockSize, index%blockSize
	c.blocks[b][s] = value
	c.filled[b][s] = true
	c.live++
	return index
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (c *blockColumn[T]) Get(index int) any {
	b, s, ok := c.slot(index)
	if !ok || !c.filled[b][s] {
		return nil
	}
	return &c.blocks[b][s]
}

// Delete empties the slot and queues it for reuse.
func (c *blockColumn[T]) Delete(index int) {
	b, s, ok := c.slot(index)
	if !ok || !c.filled[b][s] {
		return
	}
	var zero T
	c.blocks[b][s] = zero
	c.filled[b][s] = false
	c.freeSlots = append(c.freeSlots, index)
	c.live--
}

func (c *blockColumn[T]) Has(index int) bool {
	b, s, ok := c.slot(index)
	return ok && c.filled[b][s]
}

func (c *blockColumn[T]) Len() int {
	return c.live
}

// Iter yields occupied slots in index order.
func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.nextIndex; i++ {
			if c.filled[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}
