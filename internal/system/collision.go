package system

import (
	"sort"

	"go-tower-guard/internal/entity"
	"go-tower-guard/internal/types"
)

// CollisionSystem ищет врагов, пересекающихся с целью.
// Удаление найденных врагов остаётся за вызывающим кодом.
type CollisionSystem struct {
	ecs *entity.ECS
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

// Overlapping возвращает ID врагов, пересекающих цель, по возрастанию ID
func (s *CollisionSystem) Overlapping(target types.EntityID) []types.EntityID {
	targetRect, ok := s.ecs.Rect(target)
	if !ok {
		return nil
	}

	var hits []types.EntityID
	for id := range s.ecs.Enemies {
		r, ok := s.ecs.Rect(id)
		if ok && targetRect.Overlaps(r) {
			hits = append(hits, id)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })
	return hits
}
