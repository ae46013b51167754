package component

// Direction — одно из восьми направлений взгляда героя
type Direction int

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
	DirectionCount
)

// Экранные координаты: y растёт вниз, поэтому «север» — это (0, -1)
var directionDeltas = [DirectionCount][2]int{
	East:      {+1, 0},
	NorthEast: {+1, -1},
	North:     {0, -1},
	NorthWest: {-1, -1},
	West:      {-1, 0},
	SouthWest: {-1, +1},
	South:     {0, +1},
	SouthEast: {+1, +1},
}

// SpriteTransform описывает, как получить спрайт направления из базового изображения.
// Базовое изображение смотрит влево; FlipX разворачивает его вправо,
// Angle — поворот в градусах против часовой стрелки.
type SpriteTransform struct {
	FlipX bool
	Angle float64
}

var directionSprites = [DirectionCount]SpriteTransform{
	East:      {FlipX: true, Angle: 0},
	NorthEast: {FlipX: true, Angle: 45},
	North:     {FlipX: true, Angle: 90},
	NorthWest: {FlipX: false, Angle: -45},
	West:      {FlipX: false, Angle: 0},
	SouthWest: {FlipX: false, Angle: 45},
	South:     {FlipX: true, Angle: -90},
	SouthEast: {FlipX: true, Angle: -45},
}

// Delta возвращает единичный шаг направления
func (d Direction) Delta() (dx, dy int) {
	v := directionDeltas[d]
	return v[0], v[1]
}

// Sprite возвращает преобразование базового спрайта для направления
func (d Direction) Sprite() SpriteTransform {
	return directionSprites[d]
}

func (d Direction) Valid() bool {
	return d >= East && d < DirectionCount
}

func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case North:
		return "N"
	case NorthWest:
		return "NW"
	case West:
		return "W"
	case SouthWest:
		return "SW"
	case South:
		return "S"
	case SouthEast:
		return "SE"
	}
	return "?"
}

// DirectionFromDelta ищет направление по суммарному смещению клавиш.
// Нулевое смещение направления не имеет.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	for d := East; d < DirectionCount; d++ {
		if directionDeltas[d] == [2]int{dx, dy} {
			return d, true
		}
	}
	return East, false
}
