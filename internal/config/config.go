// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1600
	ScreenHeight = 900
	TPS          = 50 // Тиков в секунду, фиксировано
	WindowTitle  = "Defend the Tower!"

	SpriteScale = 2.0 // Масштаб спрайтов героя и башни

	// Спрайты по соглашению об именах: fig/<n>.png, fig/alien<n>.png
	AssetsDir        = "assets"
	BackgroundSprite = "fig/pg_bg.jpg"
	EnemyVariants    = 3

	// Размеры заглушек, если файла спрайта нет
	PlaceholderHeroSize  = 48
	PlaceholderEnemySize = 40

	LifeIndicatorX       = 20
	LifeIndicatorY       = 40
	ModeIndicatorOffsetX = 30
	ModeIndicatorRadius  = 10.0
	HUDFontSize          = 18
)

// Переменные окружения (флагов командной строки нет)
const (
	EnvAssetsDir = "TOWER_GUARD_ASSETS"
	EnvDefsFile  = "TOWER_GUARD_DEFS"
	EnvLogLevel  = "TOWER_GUARD_LOG_LEVEL"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	HeroColor       = color.RGBA{240, 200, 60, 255}
	TowerColor      = color.RGBA{70, 130, 180, 255}
	EnemyColors     = []color.RGBA{
		{50, 205, 50, 255},  // alien1
		{180, 50, 230, 255}, // alien2
		{220, 60, 60, 255},  // alien3
	}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	LifeFullColor   = color.RGBA{220, 60, 60, 255}
	NormalModeColor = color.RGBA{70, 130, 180, 220}
	HardModeColor   = color.RGBA{220, 60, 60, 220}
)
