package audio

import (
	"bytes"
	"fmt"

	"go-tower-guard/internal/event"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"
	"go.uber.org/zap"
)

const sampleRate = 48000

// SoundBoard проигрывает короткие звуки на игровые события
type SoundBoard struct {
	hit    *audio.Player
	logger *zap.Logger
}

// NewSoundBoard создаёт аудиоконтекст и подписывается на события попаданий
func NewSoundBoard(dispatcher *event.Dispatcher, logger *zap.Logger) (*SoundBoard, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	jab, err := wav.DecodeWithoutResampling(bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		return nil, fmt.Errorf("decode hit sound: %w", err)
	}
	hit, err := ctx.NewPlayer(jab)
	if err != nil {
		return nil, fmt.Errorf("create hit player: %w", err)
	}

	sb := &SoundBoard{hit: hit, logger: logger}
	dispatcher.Subscribe(sb, event.EnemyIntercepted, event.TowerHit)
	return sb, nil
}

func (s *SoundBoard) OnEvent(e event.Event) {
	if err := s.hit.Rewind(); err != nil {
		s.logger.Debug("rewind hit sound", zap.Error(err))
		return
	}
	s.hit.Play()
}
