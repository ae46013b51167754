// internal/utils/math.go
package utils

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Length возвращает евклидову длину вектора
func Length(v f64.Vec2) float64 {
	return math.Hypot(v[0], v[1])
}

// Normalize приводит вектор к единичной длине.
// Для нулевого вектора возвращает ErrZeroVector.
func Normalize(v f64.Vec2) (f64.Vec2, error) {
	norm := Length(v)
	if norm == 0 {
		return f64.Vec2{}, ErrZeroVector
	}
	return f64.Vec2{v[0] / norm, v[1] / norm}, nil
}

// Scale умножает вектор на скаляр
func Scale(v f64.Vec2, k float64) f64.Vec2 {
	return f64.Vec2{v[0] * k, v[1] * k}
}

// RotatedBounds возвращает размеры ограничивающего прямоугольника
// прямоугольника w×h после поворота на angle градусов.
func RotatedBounds(w, h, angle float64) (float64, float64) {
	theta := angle * math.Pi / 180
	sin, cos := math.Abs(math.Sin(theta)), math.Abs(math.Cos(theta))
	return w*cos + h*sin, w*sin + h*cos
}
