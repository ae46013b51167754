// internal/ui/life_indicator.go
package ui

import (
	"go-tower-guard/internal/config"
	"go-tower-guard/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LifeCircleRadius  = 10.0
	LifeCircleSpacing = 6.0
)

// LifeIndicator отображает жизни башни рядом кружков.
type LifeIndicator struct {
	X, Y float32
}

// NewLifeIndicator создает новый индикатор жизней.
func NewLifeIndicator(x, y float32) *LifeIndicator {
	return &LifeIndicator{X: x, Y: y}
}

// Draw рисует по кружку на каждую жизнь, потерянные жизни затемнены.
func (i *LifeIndicator) Draw(screen *ebiten.Image, life, maxLife int) {
	lost := render.DarkenColor(render.DarkenColor(config.LifeFullColor))
	for j := 0; j < maxLife; j++ {
		cx := i.X + LifeCircleRadius + float32(j)*(LifeCircleRadius*2+LifeCircleSpacing)
		cy := i.Y + LifeCircleRadius

		c := config.LifeFullColor
		if j >= life {
			c = lost
		}
		vector.DrawFilledCircle(screen, cx, cy, LifeCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, LifeCircleRadius, 2, config.IndicatorStroke, true)
	}
}
