package app

import (
	"go-tower-guard/internal/event"

	"go.uber.org/zap"
)

// GameEventListener пишет игровые события в лог
type GameEventListener struct {
	logger *zap.Logger
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyData:
		l.logger.Debug(string(e.Type),
			zap.Uint64("enemy", uint64(data.ID)),
			zap.String("kind", data.DefID),
			zap.Float64("x", data.X),
			zap.Float64("y", data.Y))
	case event.TowerData:
		if e.Type == event.TowerDestroyed {
			l.logger.Info("tower destroyed")
			return
		}
		l.logger.Info("tower hit", zap.Int("life", data.Life))
	case int:
		l.logger.Info("hard mode enabled", zap.Int("tick", data))
	default:
		l.logger.Debug(string(e.Type))
	}
}
