package ecs

import (
	"slices"
	"strings"
)

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks every archetype and singleton. Archetypes are ordered by
// entity count, largest first; singleton type names alphabetically.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		SingletonCount: len(s.singletons),
	}

	for _, archetype := range s.Archetypes() {
		names := make([]string, len(archetype.types))
		for i, t := range archetype.types {
			names[i] = t.String()
		}
		count := archetype.Len()
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             archetype.id,
			ComponentTypes: names,
			EntityCount:    count,
		})
		stats.TotalEntityCount += count
	}
	stats.ArchetypeCount = len(stats.ArchetypeBreakdown)

	slices.SortFunc(stats.ArchetypeBreakdown, func(a, b ArchetypeStats) int {
		if a.EntityCount != b.EntityCount {
			return b.EntityCount - a.EntityCount
		}
		return strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
	})

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	slices.Sort(stats.SingletonTypes)

	return stats
}
