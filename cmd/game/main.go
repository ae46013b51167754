// cmd/game/main.go
package main

import (
	"context"
	"log"
	"os"

	"go-tower-guard/internal/app"
	"go-tower-guard/internal/assets"
	"go-tower-guard/internal/audio"
	"go-tower-guard/internal/config"
	"go-tower-guard/internal/defs"
	"go-tower-guard/internal/logging"
	"go-tower-guard/internal/state"
	"go-tower-guard/internal/ui"
	"go-tower-guard/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const startFromGame = true // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func main() {
	logger, err := logging.New(os.Getenv(config.EnvLogLevel))
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	definitions, err := defs.LoadFile(os.Getenv(config.EnvDefsFile))
	if err != nil {
		logger.Fatal("load definitions", zap.Error(err))
	}

	sprites := assets.NewSpriteManager(os.DirFS(envOr(config.EnvAssetsDir, config.AssetsDir)), logger)
	if err := sprites.LoadAll(context.Background(), app.SpriteRequests(definitions)); err != nil {
		logger.Fatal("load sprites", zap.Error(err))
	}

	game := app.NewGame(definitions, app.SizesFromSprites(sprites, definitions), logger)

	hud, err := ui.NewHUD()
	if err != nil {
		logger.Fatal("create hud", zap.Error(err))
	}
	if _, err := audio.NewSoundBoard(game.EventDispatcher, logger); err != nil {
		logger.Warn("sound disabled", zap.Error(err))
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	play := state.NewPlayState(sm, game, render.NewSpriteRenderer(game.ECS, sprites), hud, logger)
	if startFromGame {
		sm.SetState(play) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, play)) // Устанавливаем состояние меню
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
