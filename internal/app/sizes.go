package app

import (
	"go-tower-guard/internal/assets"
	"go-tower-guard/internal/component"
	"go-tower-guard/internal/config"
	"go-tower-guard/internal/defs"
)

// Sizes — размеры тел сущностей, взятые из спрайтов
type Sizes struct {
	Hero    component.Body
	Tower   component.Body
	Enemies []component.Body // По номеру варианта - 1
}

// SpriteRequests перечисляет спрайты, которые нужны до старта цикла
func SpriteRequests(d *defs.Definitions) []assets.Request {
	reqs := []assets.Request{
		assets.BackgroundRequest(),
		assets.HeroRequest(d.Hero.Sprite),
		assets.TowerRequest(d.Tower.Sprite),
	}
	for v := 1; v <= config.EnemyVariants; v++ {
		reqs = append(reqs, assets.EnemyRequest(v))
	}
	return reqs
}

// SizesFromSprites считает тела по загруженным спрайтам.
// Герой и башня увеличены в SpriteScale раз, враги — как есть.
func SizesFromSprites(sprites *assets.SpriteManager, d *defs.Definitions) Sizes {
	body := func(req assets.Request, scale float64) component.Body {
		sprites.Load(req)
		w, h, _ := sprites.Size(req.Name)
		return component.Body{Width: float64(w) * scale, Height: float64(h) * scale}
	}

	s := Sizes{
		Hero:  body(assets.HeroRequest(d.Hero.Sprite), config.SpriteScale),
		Tower: body(assets.TowerRequest(d.Tower.Sprite), config.SpriteScale),
	}
	for v := 1; v <= config.EnemyVariants; v++ {
		s.Enemies = append(s.Enemies, body(assets.EnemyRequest(v), 1))
	}
	return s
}
