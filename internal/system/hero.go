// internal/system/hero.go
package system

import (
	"go-tower-guard/internal/component"
	"go-tower-guard/internal/entity"
	"go-tower-guard/internal/utils"
)

// HeroSystem двигает героя по нажатым клавишам и выбирает спрайт направления
type HeroSystem struct {
	ecs           *entity.ECS
	width, height float64
}

func NewHeroSystem(ecs *entity.ECS, width, height float64) *HeroSystem {
	return &HeroSystem{ecs: ecs, width: width, height: height}
}

// Update сдвигает героя на speed × сумму нажатых клавиш.
// Если новый прямоугольник выходит за экран, откатывается весь шаг, а не одна ось.
// Направление взгляда меняется при любой ненулевой сумме, даже если шаг откатили.
func (s *HeroSystem) Update(keys component.Keys) {
	dx, dy := keys.Delta()
	for id, hero := range s.ecs.Heroes {
		pos, hasPos := s.ecs.Positions[id]
		rect, ok := s.ecs.Rect(id)
		if !hasPos || !ok {
			continue
		}

		moved := rect.Moved(hero.Speed*float64(dx), hero.Speed*float64(dy))
		if horizontal, vertical := utils.CheckBound(moved, s.width, s.height); horizontal && vertical {
			pos.X, pos.Y = moved.CX, moved.CY
		}

		if dir, ok := component.DirectionFromDelta(dx, dy); ok {
			hero.Facing = dir
		}
	}
}

// ChangeImage переключает спрайт героя на fig/<num>.png
func (s *HeroSystem) ChangeImage(num int) {
	for id, hero := range s.ecs.Heroes {
		hero.SpriteNum = num
		if r, ok := s.ecs.Renderables[id]; ok {
			r.Num = num
		}
	}
}
