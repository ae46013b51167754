// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-tower-guard/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModeIndicator — кружок в углу экрана: синий в обычном режиме, красный в hard mode
type ModeIndicator struct {
	X, Y          float32
	Radius        float32
	LastPulseTime time.Time
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Pulse запускает короткую анимацию увеличения
func (i *ModeIndicator) Pulse() {
	i.LastPulseTime = time.Now()
}

// Draw отрисовывает индикатор
func (i *ModeIndicator) Draw(screen *ebiten.Image, hardMode bool) {
	elapsed := time.Since(i.LastPulseTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	var c color.Color = config.NormalModeColor
	if hardMode {
		c = config.HardModeColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 2, config.IndicatorStroke, true)
}
