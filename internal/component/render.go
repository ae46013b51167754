// component/render.go
package component

// SpriteKind — к какому набору спрайтов относится сущность
type SpriteKind int

const (
	SpriteHero SpriteKind = iota
	SpriteEnemy
	SpriteTower
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Kind SpriteKind
	Num  int // Номер файла спрайта
}
