// internal/system/spawn.go
package system

import (
	"fmt"
	"math"

	"go-tower-guard/internal/component"
	"go-tower-guard/internal/defs"
	"go-tower-guard/internal/entity"
	"go-tower-guard/internal/event"
	"go-tower-guard/internal/types"
	"go-tower-guard/internal/utils"

	"go.uber.org/zap"
)

// BaselineDivisor — делитель базового потока: base - floor(sqrt(tick)).
// С ростом tick враги появляются всё чаще. Делитель не опускается ниже min,
// иначе примерно с tick = 10000 получилось бы деление на ноль.
func BaselineDivisor(tick int, rules defs.SpawnRules) int {
	d := rules.BaseDivisor - int(math.Floor(math.Sqrt(float64(tick))))
	if d < rules.MinDivisor {
		d = rules.MinDivisor
	}
	return d
}

// DueSpawns возвращает ID определений врагов, которые должны появиться на этом тике.
// Базовый поток и поток босса взаимоисключающие, поток hard mode добавляется сверху.
func DueSpawns(tick int, state component.GameState, rules defs.SpawnRules) []string {
	var due []string
	if !state.BossMode {
		if tick%BaselineDivisor(tick, rules) == 0 {
			due = append(due, rules.BaselineEnemy)
		}
	} else if tick%rules.BossInterval == 0 {
		due = append(due, rules.BossEnemy)
	}
	if state.HardMode && tick%rules.HardInterval == 0 {
		due = append(due, rules.HardEnemy)
	}
	return due
}

// SpawnSystem создаёт врагов на краях экрана
type SpawnSystem struct {
	ecs             *entity.ECS
	defs            *defs.Definitions
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
	tower           types.EntityID
	enemyBodies     []component.Body // По номеру варианта - 1
	width, height   int
}

func NewSpawnSystem(
	ecs *entity.ECS,
	definitions *defs.Definitions,
	rng *utils.PRNGService,
	eventDispatcher *event.Dispatcher,
	logger *zap.Logger,
	tower types.EntityID,
	enemyBodies []component.Body,
	width, height int,
) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		defs:            definitions,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		tower:           tower,
		enemyBodies:     enemyBodies,
		width:           width,
		height:          height,
	}
}

// Update включает режим босса по расписанию и создаёт положенных на этом тике врагов
func (s *SpawnSystem) Update(tick int) {
	rules := s.defs.Spawn
	if rules.BossAfterTick > 0 && tick >= rules.BossAfterTick && !s.ecs.GameState.BossMode {
		s.ecs.GameState.BossMode = true
		s.logger.Info("boss mode enabled", zap.Int("tick", tick))
	}

	for _, defID := range DueSpawns(tick, *s.ecs.GameState, rules) {
		if _, err := s.Spawn(defID); err != nil {
			s.ecs.Stats.Dropped++
			s.logger.Warn("enemy spawn dropped", zap.String("enemy", defID), zap.Int("tick", tick), zap.Error(err))
		}
	}
}

// Spawn выбирает случайный вариант спрайта и случайную точку на одном из четырёх краёв
func (s *SpawnSystem) Spawn(defID string) (types.EntityID, error) {
	x := float64(s.rng.IntInclusive(0, s.width))
	y := float64(s.rng.IntInclusive(0, s.height))
	edges := [4][2]float64{
		{0, y},                 // слева
		{x, 0},                 // сверху
		{float64(s.width), y},  // справа
		{x, float64(s.height)}, // снизу
	}
	p := edges[s.rng.Intn(len(edges))]
	variant := 1 + s.rng.Intn(len(s.enemyBodies))
	return s.SpawnAt(defID, p[0], p[1], variant)
}

// SpawnAt создаёт врага в заданной точке. Направление на башню вычисляется один раз.
func (s *SpawnSystem) SpawnAt(defID string, x, y float64, variant int) (types.EntityID, error) {
	def, ok := s.defs.Enemy(defID)
	if !ok {
		return 0, fmt.Errorf("enemy definition not found: %s", defID)
	}
	if variant < 1 || variant > len(s.enemyBodies) {
		return 0, fmt.Errorf("enemy variant out of range: %d", variant)
	}
	towerRect, ok := s.ecs.Rect(s.tower)
	if !ok {
		return 0, fmt.Errorf("tower %d has no body", s.tower)
	}

	body := s.enemyBodies[variant-1]
	dir, err := utils.CalcOrientation(utils.RectAt(x, y, body.Width, body.Height), towerRect)
	if err != nil {
		return 0, fmt.Errorf("bearing to tower: %w", err)
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Direction: dir, Speed: def.Speed}
	s.ecs.Bodies[id] = &component.Body{Width: body.Width, Height: body.Height}
	s.ecs.Renderables[id] = &component.Renderable{Kind: component.SpriteEnemy, Num: variant}
	s.ecs.Enemies[id] = &component.Enemy{DefID: def.ID, Variant: variant}
	s.ecs.Stats.Spawned++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, DefID: def.ID, X: x, Y: y},
	})
	return id, nil
}
