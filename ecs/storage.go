package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns every archetype and singleton of one world.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates an empty storage backed by the given registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// GetArchetype returns the archetype for exactly this set of components, if
// one has been created.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	archetype, _ := s.archetypes.Get(hashTypesToUint32(types))
	return archetype
}

// Archetypes returns all archetypes created so far.
func (s *Storage) Archetypes() []*Archetype {
	out := make([]*Archetype, 0, s.archetypes.Len())
	s.archetypes.ForEach(func(_ uint32, a *Archetype) bool {
		out = append(out, a)
		return true
	})
	return out
}

func (s *Storage) archetype(id uint32) *Archetype {
	a, _ := s.archetypes.Get(id)
	return a
}

// Spawn creates a new entity with the provided components and returns its id.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetypeId := hashTypesToUint32(types)

	archetype := s.archetype(archetypeId)
	if archetype == nil {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes.Put(archetypeId, archetype)
	}

	return archetype.Spawn(components)
}

// Delete removes the entity. Deleting an unknown or already deleted id is a
// no-op.
func (s *Storage) Delete(id EntityId) {
	if archetype := s.archetype(id.ArchetypeId()); archetype != nil {
		archetype.Delete(id)
	}
}

// Alive reports whether id refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype := s.archetype(id.ArchetypeId())
	return archetype != nil && archetype.Alive(id)
}

// GetComponent returns a pointer to the component, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype := s.archetype(id.ArchetypeId())
	if archetype == nil {
		return nil
	}
	return archetype.GetComponent(id, compType)
}

func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype := s.archetype(id.ArchetypeId())
	return archetype != nil && archetype.HasComponent(compType)
}

// AddSingleton stores value as the single instance of its type, replacing any
// previous instance. Pointers obtained earlier through Singleton keep pointing
// at the old value, so replace singletons only during setup.
func (s *Storage) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[typ] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

// ReadSingleton points *target at the stored singleton. target must be a
// pointer to a pointer, e.g. `var cfg *Config; storage.ReadSingleton(&cfg)`.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}
	entry := s.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	rv.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

func componentType(comp any) reflect.Type {
	compType := reflect.TypeOf(comp)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}
	return compType
}

// extractComponentTypes returns the sorted component types. Components must
// be values (or pointers to values); maps, channels and functions are
// rejected.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)
		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}
		types = append(types, compType)
	}
	sortTypes(types)
	return types
}

// hashTypesToUint32 is FNV-1a over the runtime type pointers of the sorted
// types.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		val := uint32(ptr)
		if unsafe.Sizeof(ptr) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}
		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent is the typed form of GetComponent.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
