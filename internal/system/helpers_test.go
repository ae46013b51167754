package system

import (
	"go-tower-guard/internal/component"
	"go-tower-guard/internal/entity"
	"go-tower-guard/internal/types"
)

const (
	testWidth  = 1600
	testHeight = 900
)

func addHero(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Bodies[id] = &component.Body{Width: 10, Height: 10}
	ecs.Heroes[id] = &component.Hero{Facing: component.East, Speed: 10, SpriteNum: 3}
	ecs.Renderables[id] = &component.Renderable{Kind: component.SpriteHero, Num: 3}
	return id
}

func addTower(ecs *entity.ECS) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: testWidth / 2, Y: testHeight / 2}
	ecs.Bodies[id] = &component.Body{Width: 96, Height: 96}
	ecs.Towers[id] = &component.Tower{Life: 3, MaxLife: 3}
	return id
}

func addEnemy(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Bodies[id] = &component.Body{Width: 20, Height: 20}
	ecs.Enemies[id] = &component.Enemy{DefID: "normal", Variant: 1}
	return id
}
