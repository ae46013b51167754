package render

import (
	"math"

	"go-tower-guard/internal/assets"
	"go-tower-guard/internal/component"
	"go-tower-guard/internal/config"
	"go-tower-guard/internal/entity"
	"go-tower-guard/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteRenderer рисует фон, героя, врагов и башню
type SpriteRenderer struct {
	ecs        *entity.ECS
	sprites    *assets.SpriteManager
	background *ebiten.Image
	heroFrames map[int]*[component.DirectionCount]*ebiten.Image // По номеру спрайта
	towers     map[int]*ebiten.Image
	enemies    map[int]*ebiten.Image
}

func NewSpriteRenderer(ecs *entity.ECS, sprites *assets.SpriteManager) *SpriteRenderer {
	bg := sprites.Load(assets.BackgroundRequest())
	return &SpriteRenderer{
		ecs:        ecs,
		sprites:    sprites,
		background: ebiten.NewImageFromImage(bg),
		heroFrames: make(map[int]*[component.DirectionCount]*ebiten.Image),
		towers:     make(map[int]*ebiten.Image),
		enemies:    make(map[int]*ebiten.Image),
	}
}

// Draw рисует кадр в порядке: фон, герой, враги, башня
func (r *SpriteRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.background, nil)

	for id, hero := range r.ecs.Heroes {
		if pos, ok := r.ecs.Positions[id]; ok {
			frames := r.heroFramesFor(hero.SpriteNum)
			drawCentered(screen, frames[hero.Facing], pos.X, pos.Y, 1)
		}
	}

	for id, enemy := range r.ecs.Enemies {
		if pos, ok := r.ecs.Positions[id]; ok {
			drawCentered(screen, r.enemyImage(enemy.Variant), pos.X, pos.Y, 1)
		}
	}

	for id, tower := range r.ecs.Towers {
		pos, hasPos := r.ecs.Positions[id]
		rd, hasRender := r.ecs.Renderables[id]
		if hasPos && hasRender {
			drawCentered(screen, r.towerImage(rd.Num), pos.X, pos.Y, LifeTint(tower.Life, tower.MaxLife))
		}
	}
}

func (r *SpriteRenderer) heroFramesFor(num int) *[component.DirectionCount]*ebiten.Image {
	if frames, ok := r.heroFrames[num]; ok {
		return frames
	}
	base := r.sprites.Load(assets.HeroRequest(num))
	src := ebiten.NewImageFromImage(base)
	frames := &[component.DirectionCount]*ebiten.Image{}
	for d := component.East; d < component.DirectionCount; d++ {
		frames[d] = transformed(src, d.Sprite(), config.SpriteScale)
	}
	r.heroFrames[num] = frames
	return frames
}

func (r *SpriteRenderer) towerImage(num int) *ebiten.Image {
	if img, ok := r.towers[num]; ok {
		return img
	}
	base := r.sprites.Load(assets.TowerRequest(num))
	img := transformed(ebiten.NewImageFromImage(base), component.SpriteTransform{}, config.SpriteScale)
	r.towers[num] = img
	return img
}

func (r *SpriteRenderer) enemyImage(variant int) *ebiten.Image {
	if img, ok := r.enemies[variant]; ok {
		return img
	}
	base := r.sprites.Load(assets.EnemyRequest(variant))
	img := ebiten.NewImageFromImage(base)
	r.enemies[variant] = img
	return img
}

// transformed отражает, масштабирует и поворачивает спрайт вокруг центра.
// Угол задан против часовой стрелки, а GeoM.Rotate в экранных координатах крутит по часовой.
func transformed(src *ebiten.Image, tf component.SpriteTransform, scale float64) *ebiten.Image {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	nw, nh := utils.RotatedBounds(w*scale, h*scale, tf.Angle)

	dst := ebiten.NewImage(int(math.Ceil(nw)), int(math.Ceil(nh)))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if tf.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(-tf.Angle * math.Pi / 180)
	op.GeoM.Translate(nw/2, nh/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

func drawCentered(screen, img *ebiten.Image, x, y float64, brightness float32) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(b.Dx())/2, y-float64(b.Dy())/2)
	if brightness < 1 {
		op.ColorScale.Scale(brightness, brightness, brightness, 1)
	}
	screen.DrawImage(img, op)
}
