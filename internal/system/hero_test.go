package system

import (
	"testing"

	"go-tower-guard/internal/component"
	"go-tower-guard/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestHeroMovesLeft(t *testing.T) {
	ecs := entity.NewECS()
	id := addHero(ecs, 900, 400)
	s := NewHeroSystem(ecs, testWidth, testHeight)

	s.Update(component.Keys{Left: true})

	assert.Equal(t, component.Position{X: 890, Y: 400}, *ecs.Positions[id])
	assert.Equal(t, component.West, ecs.Heroes[id].Facing)
}

func TestHeroMoveRevertedAtEdge(t *testing.T) {
	ecs := entity.NewECS()
	id := addHero(ecs, 5, 400)
	s := NewHeroSystem(ecs, testWidth, testHeight)

	s.Update(component.Keys{Left: true})

	assert.Equal(t, component.Position{X: 5, Y: 400}, *ecs.Positions[id])
	assert.Equal(t, component.West, ecs.Heroes[id].Facing, "facing follows keys even when the move is reverted")
}

func TestHeroDiagonalRevertedAsWhole(t *testing.T) {
	ecs := entity.NewECS()
	// Вверх упирается в край, вправо свободно: откатывается весь шаг
	id := addHero(ecs, 500, 8)
	s := NewHeroSystem(ecs, testWidth, testHeight)

	s.Update(component.Keys{Up: true, Right: true})

	assert.Equal(t, component.Position{X: 500, Y: 8}, *ecs.Positions[id])
	assert.Equal(t, component.NorthEast, ecs.Heroes[id].Facing)
}

func TestHeroDiagonal(t *testing.T) {
	ecs := entity.NewECS()
	id := addHero(ecs, 500, 500)
	s := NewHeroSystem(ecs, testWidth, testHeight)

	s.Update(component.Keys{Down: true, Left: true})

	assert.Equal(t, component.Position{X: 490, Y: 510}, *ecs.Positions[id])
	assert.Equal(t, component.SouthWest, ecs.Heroes[id].Facing)
}

func TestHeroOppositeKeysKeepFacing(t *testing.T) {
	ecs := entity.NewECS()
	id := addHero(ecs, 500, 500)
	ecs.Heroes[id].Facing = component.North
	s := NewHeroSystem(ecs, testWidth, testHeight)

	s.Update(component.Keys{Left: true, Right: true})
	assert.Equal(t, component.Position{X: 500, Y: 500}, *ecs.Positions[id])
	assert.Equal(t, component.North, ecs.Heroes[id].Facing)

	s.Update(component.Keys{})
	assert.Equal(t, component.North, ecs.Heroes[id].Facing)
}

func TestHeroChangeImage(t *testing.T) {
	ecs := entity.NewECS()
	id := addHero(ecs, 500, 500)
	NewHeroSystem(ecs, testWidth, testHeight).ChangeImage(7)

	assert.Equal(t, 7, ecs.Heroes[id].SpriteNum)
	assert.Equal(t, 7, ecs.Renderables[id].Num)
}
