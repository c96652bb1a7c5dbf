package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Archetype holds every entity that has exactly one particular set of
// component types. Each type gets its own column; a slot index addresses the
// same entity in every column.
type Archetype struct {
	id          uint32
	types       []reflect.Type
	columns     []componentColumn
	generations []uint8
}

func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
}

// NewArchetype creates an archetype for the already sorted component types.
// It panics if any type was not registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentColumn, len(types)),
	}
	for idx, typ := range types {
		factory := registry.factory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[idx] = factory()
	}
	return a
}

// Spawn appends one entity and returns its id. Columns are kept in lockstep
// so every column hands back the same slot.
func (a *Archetype) Spawn(components []any) EntityId {
	slot := -1
	for _, comp := range components {
		if idx := a.column(componentType(comp)); idx >= 0 {
			slot = a.columns[idx].Append(comp)
		}
	}
	if slot < 0 {
		panic("spawned entity has no component of its archetype")
	}
	if slot > indexMask {
		panic("archetype slot index overflow")
	}
	for len(a.generations) <= slot {
		a.generations = append(a.generations, 0)
	}
	return a.entityId(slot)
}

func (a *Archetype) entityId(slot int) EntityId {
	var gen uint8
	if slot < len(a.generations) {
		gen = a.generations[slot]
	}
	return NewEntityId(a.id, gen, uint32(slot))
}

func (a *Archetype) column(t reflect.Type) int {
	for idx, typ := range a.types {
		if typ == t {
			return idx
		}
	}
	return -1
}

// GetComponent returns a pointer to the entity's component of type compType,
// or nil if this archetype has no such column or id is no longer alive.
func (a *Archetype) GetComponent(id EntityId, compType reflect.Type) any {
	idx := a.column(compType)
	if idx < 0 || !a.Alive(id) {
		return nil
	}
	return a.columns[idx].Get(int(id.Index()))
}

// Delete frees the entity's slot in every column and retires its generation.
// Stale ids are ignored.
func (a *Archetype) Delete(id EntityId) {
	if !a.Alive(id) {
		return
	}
	slot := int(id.Index())
	for _, col := range a.columns {
		col.Delete(slot)
	}
	a.generations[slot]++
}

// Alive reports whether id still names the entity in its slot.
func (a *Archetype) Alive(id EntityId) bool {
	slot := int(id.Index())
	return len(a.columns) > 0 &&
		slot < len(a.generations) &&
		a.generations[slot] == id.Generation() &&
		a.columns[0].Has(slot)
}

func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types of this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len is the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Iter yields the ids of all live entities in slot order.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(a.entityId(index)) {
				return
			}
		}
	}
}
