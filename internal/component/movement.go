// component/movement.go
package component

import "golang.org/x/image/math/f64"

// Position — компонент позиции (центр сущности)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости: единичное направление и модуль.
// Direction вычисляется один раз при создании и больше не меняется.
type Velocity struct {
	Direction f64.Vec2
	Speed     float64
}

// Body — размеры ограничивающего прямоугольника
type Body struct {
	Width, Height float64
}
