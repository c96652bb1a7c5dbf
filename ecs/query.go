package ecs

import (
	"iter"
)

// Query is a View whose matches are snapshotted once per frame by Execute.
// Systems iterate the snapshot, so deletions queued through Commands never
// shift the entities a system is walking.
type Query[T any] struct {
	view               *View[T]
	storage            *Storage
	cachedArchetypes   []*Archetype
	lastArchetypeCount int

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage. The Scheduler calls it for every Query
// field of a registered system.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
	q.cacheValid = false
}

// Execute rebuilds the snapshot. The Scheduler calls it right before the
// owning system runs.
func (q *Query[T]) Execute() {
	if count := q.storage.archetypes.Len(); count != q.lastArchetypeCount {
		q.cachedArchetypes = nil
		q.lastArchetypeCount = count
	}
	if q.cachedArchetypes == nil {
		q.cachedArchetypes = make([]*Archetype, 0)
		for _, archetype := range q.storage.Archetypes() {
			if q.view.matchesArchetype(archetype) {
				q.cachedArchetypes = append(q.cachedArchetypes, archetype)
			}
		}
	}

	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]
	for _, archetype := range q.cachedArchetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.cachedEntities = append(q.cachedEntities, id)
			q.cachedComponents = append(q.cachedComponents, item)
		}
	}

	q.cacheValid = true
}

// Len is the number of entities in the current snapshot.
func (q *Query[T]) Len() int {
	if !q.cacheValid {
		panic("Query.Len() called before Query.Execute()")
	}
	return len(q.cachedEntities)
}

// Iter yields the snapshot built by the last Execute.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values yields only the component structs of the snapshot.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}
