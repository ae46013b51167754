// internal/state/menu_state.go
package state

import (
	"go-tower-guard/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка перед игрой: пробел начинает, Escape выходит
type MenuState struct {
	sm   *StateMachine
	play State
}

func NewMenuState(sm *StateMachine, play State) *MenuState {
	return &MenuState{sm: sm, play: play}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.play)
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, config.WindowTitle+"\n\nARROWS move, TAB hard mode\nPRESS SPACE TO START", config.ScreenWidth/2-90, config.ScreenHeight/2-30)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
