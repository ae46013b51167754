package input

import (
	"go-tower-guard/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poll опрашивает клавиатуру ebiten.
// Для Quit нужно, чтобы окно было создано с ebiten.SetWindowClosingHandled(true).
func Poll() component.Input {
	return component.Input{
		Keys: component.Keys{
			Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		},
		Quit:     ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		HardMode: inpututil.IsKeyJustPressed(ebiten.KeyTab),
	}
}
