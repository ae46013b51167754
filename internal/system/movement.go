// internal/system/movement.go
package system

import (
	"go-tower-guard/internal/entity"
	"go-tower-guard/internal/utils"
)

// MovementSystem двигает врагов по прямой, заданной при появлении
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update сдвигает каждого врага на speed × direction.
// Повторного наведения нет, за пределами экрана враги не удаляются.
func (s *MovementSystem) Update() {
	for id := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		step := utils.Scale(vel.Direction, vel.Speed)
		pos.X += step[0]
		pos.Y += step[1]
	}
}
