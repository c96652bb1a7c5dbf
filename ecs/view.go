package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View matches entities by the component pointers declared in the struct T.
//
//	ecs.NewView[struct {
//		ecs.EntityId
//		*Body
//		Velocity *Velocity `ecs:"optional"`
//	}](storage)
//
// Embedded pointer fields are required. Named pointer fields tagged
// `ecs:"optional"` are nil when the entity lacks that component. An
// EntityId field, embedded or named, receives the entity's id.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	idOffset    uintptr
	hasId       bool
}

// NewView builds the field layout for T once. It panics if T is not a struct
// of component pointers.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or ecs.EntityId")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}
	return v
}

// Fill populates *ptr for the given entity and reports whether the entity
// has every required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype := v.storage.archetype(id.ArchetypeId())
	if archetype == nil || !archetype.Alive(id) || !v.matchesArchetype(archetype) {
		return false
	}
	return v.populateResult(unsafe.Pointer(ptr), archetype, int(id.Index()), v.buildStorageIndices(archetype))
}

// Get returns the populated struct, or nil when the entity does not match.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, required := range v.types {
		if !v.optional[i] && !archetype.HasComponent(required) {
			return false
		}
	}
	return true
}

// buildStorageIndices maps each view field to a column of archetype, -1 when
// the archetype lacks that (optional) component.
func (v *View[T]) buildStorageIndices(archetype *Archetype) []int {
	indices := make([]int, len(v.types))
	for i, t := range v.types {
		indices[i] = archetype.column(t)
	}
	return indices
}

func (v *View[T]) populateResult(resultPtr unsafe.Pointer, archetype *Archetype, entityIndex int, storageIndices []int) bool {
	if v.hasId {
		*(*EntityId)(unsafe.Add(resultPtr, v.idOffset)) = archetype.entityId(entityIndex)
	}

	for i, columnIdx := range storageIndices {
		fieldPtr := unsafe.Add(resultPtr, v.fieldOffset[i])

		var component any
		if columnIdx >= 0 {
			component = archetype.columns[columnIdx].Get(entityIndex)
		}
		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(archetype.columns) == 0 {
			return
		}
		indices := v.buildStorageIndices(archetype)

		var result T
		resultPtr := unsafe.Pointer(&result)
		for entityIndex := range archetype.columns[0].Iter() {
			if !v.populateResult(resultPtr, archetype, entityIndex, indices) {
				continue
			}
			if !yield(archetype.entityId(entityIndex), result) {
				return
			}
		}
	}
}

// Iter yields every matching entity. Spawning or deleting while iterating
// is not supported; queue those through Commands instead.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.Archetypes() {
			if !v.matchesArchetype(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values is Iter without the ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
