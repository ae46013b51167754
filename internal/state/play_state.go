// internal/state/play_state.go
package state

import (
	"errors"

	"go-tower-guard/internal/app"
	"go-tower-guard/internal/event"
	"go-tower-guard/internal/input"
	"go-tower-guard/internal/ui"
	"go-tower-guard/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// PlayState — состояние игры: опрос ввода, тик логики, отрисовка
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.SpriteRenderer
	hud      *ui.HUD
	logger   *zap.Logger
}

func NewPlayState(sm *StateMachine, game *app.Game, renderer *render.SpriteRenderer, hud *ui.HUD, logger *zap.Logger) *PlayState {
	ps := &PlayState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		hud:      hud,
		logger:   logger,
	}
	game.EventDispatcher.Subscribe(event.ListenerFunc(func(event.Event) { hud.OnHardMode() }), event.HardModeEnabled)
	return ps
}

// Game возвращает игровую логику
func (s *PlayState) Game() *app.Game {
	return s.game
}

func (s *PlayState) Enter() {
	s.logger.Info("game started", zap.Int("tower_life", s.game.Tower().Life))
}

// Update выполняет тик. Конец игры превращается в ebiten.Termination,
// чтобы RunGame завершился без ошибки.
func (s *PlayState) Update() error {
	err := s.game.Update(input.Poll())
	if errors.Is(err, app.ErrQuit) || errors.Is(err, app.ErrTowerDestroyed) {
		s.game.Summary()
		return ebiten.Termination
	}
	return err
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
	s.hud.Draw(screen, s.game.Tower(), s.game.ECS.GameState, s.game.ECS.Stats)
}

func (s *PlayState) Exit() {}
