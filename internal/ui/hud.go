package ui

import (
	"bytes"
	"fmt"

	"go-tower-guard/internal/component"
	"go-tower-guard/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD — счётчики поверх игрового поля
type HUD struct {
	face *text.GoTextFace
	life *LifeIndicator
	mode *ModeIndicator
}

func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &HUD{
		face: &text.GoTextFace{Source: src, Size: config.HUDFontSize},
		life: NewLifeIndicator(config.LifeIndicatorX, config.LifeIndicatorY),
		mode: NewModeIndicator(
			float32(config.ScreenWidth-config.ModeIndicatorOffsetX),
			float32(config.ModeIndicatorOffsetX),
			float32(config.ModeIndicatorRadius),
		),
	}, nil
}

// OnHardMode — вызывается при включении hard mode
func (h *HUD) OnHardMode() {
	h.mode.Pulse()
}

func (h *HUD) Draw(screen *ebiten.Image, tower *component.Tower, state *component.GameState, stats *component.Stats) {
	if tower != nil {
		h.life.Draw(screen, tower.Life, tower.MaxLife)
	}
	h.mode.Draw(screen, state.HardMode)

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.LifeIndicatorX, 10)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, "Tower", h.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(float64(config.ScreenWidth-2*config.ModeIndicatorOffsetX), 10)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	op.PrimaryAlign = text.AlignEnd
	line := fmt.Sprintf("Tick %d   Intercepted %d", stats.Ticks, stats.Intercepted)
	if state.HardMode {
		line += "   HARD"
	}
	text.Draw(screen, line, h.face, op)
}
