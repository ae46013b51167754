package utils

import (
	"errors"

	"golang.org/x/image/math/f64"
)

// ErrZeroVector — направление не определено (центры совпадают)
var ErrZeroVector = errors.New("zero-length direction vector")

// Rect — ограничивающий прямоугольник, заданный центром и размерами
type Rect struct {
	CX, CY float64
	W, H   float64
}

// RectAt создаёт прямоугольник с центром в (cx, cy)
func RectAt(cx, cy, w, h float64) Rect {
	return Rect{CX: cx, CY: cy, W: w, H: h}
}

func (r Rect) Left() float64   { return r.CX - r.W/2 }
func (r Rect) Right() float64  { return r.CX + r.W/2 }
func (r Rect) Top() float64    { return r.CY - r.H/2 }
func (r Rect) Bottom() float64 { return r.CY + r.H/2 }

// Moved возвращает копию, сдвинутую на (dx, dy)
func (r Rect) Moved(dx, dy float64) Rect {
	r.CX += dx
	r.CY += dy
	return r
}

// Overlaps — строгое пересечение: касание сторон столкновением не считается
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// CheckBound проверяет, находится ли прямоугольник внутри экрана [0,width]×[0,height].
// Возвращает независимые результаты по горизонтали и вертикали.
func CheckBound(r Rect, width, height float64) (horizontal, vertical bool) {
	horizontal, vertical = true, true
	if r.Left() < 0 || width < r.Right() {
		horizontal = false
	}
	if r.Top() < 0 || height < r.Bottom() {
		vertical = false
	}
	return horizontal, vertical
}

// CalcOrientation возвращает единичный вектор от центра org к центру dst
func CalcOrientation(org, dst Rect) (f64.Vec2, error) {
	return Normalize(f64.Vec2{dst.CX - org.CX, dst.CY - org.CY})
}
