// internal/entity/ecs.go
package entity

import (
	"go-tower-guard/internal/component"
	"go-tower-guard/internal/types"
	"go-tower-guard/internal/utils"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Bodies      map[types.EntityID]*component.Body
	Renderables map[types.EntityID]*component.Renderable
	Heroes      map[types.EntityID]*component.Hero
	Towers      map[types.EntityID]*component.Tower
	Enemies     map[types.EntityID]*component.Enemy
	GameState   *component.GameState
	Stats       *component.Stats
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Bodies:      make(map[types.EntityID]*component.Body),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Heroes:      make(map[types.EntityID]*component.Hero),
		Towers:      make(map[types.EntityID]*component.Tower),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		GameState:   &component.GameState{Phase: component.Running},
		Stats:       &component.Stats{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Bodies, id)
	delete(ecs.Renderables, id)
	delete(ecs.Heroes, id)
	delete(ecs.Towers, id)
	delete(ecs.Enemies, id)
}

// Rect собирает ограничивающий прямоугольник из позиции и тела.
// ok == false, если у сущности нет одного из компонентов.
func (ecs *ECS) Rect(id types.EntityID) (utils.Rect, bool) {
	pos, hasPos := ecs.Positions[id]
	body, hasBody := ecs.Bodies[id]
	if !hasPos || !hasBody {
		return utils.Rect{}, false
	}
	return utils.RectAt(pos.X, pos.Y, body.Width, body.Height), true
}
