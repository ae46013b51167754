package assets

import (
	"image"

	"go-tower-guard/internal/config"
)

// BackgroundRequest — фон размером с экран
func BackgroundRequest() Request {
	return Request{
		Name: config.BackgroundSprite,
		Fallback: func() image.Image {
			return Solid(config.ScreenWidth, config.ScreenHeight, config.BackgroundColor)
		},
	}
}

func HeroRequest(num int) Request {
	return Request{
		Name: HeroSprite(num),
		Fallback: func() image.Image {
			return Placeholder(config.PlaceholderHeroSize, config.HeroColor)
		},
	}
}

func TowerRequest(num int) Request {
	return Request{
		Name: HeroSprite(num),
		Fallback: func() image.Image {
			return Placeholder(config.PlaceholderHeroSize, config.TowerColor)
		},
	}
}

func EnemyRequest(variant int) Request {
	c := config.EnemyColors[(variant-1+len(config.EnemyColors))%len(config.EnemyColors)]
	return Request{
		Name: EnemySprite(variant),
		Fallback: func() image.Image {
			return Placeholder(config.PlaceholderEnemySize, c)
		},
	}
}
