// internal/app/game.go
package app

import (
	"errors"

	"go-tower-guard/internal/component"
	"go-tower-guard/internal/config"
	"go-tower-guard/internal/defs"
	"go-tower-guard/internal/entity"
	"go-tower-guard/internal/event"
	"go-tower-guard/internal/system"
	"go-tower-guard/internal/types"
	"go-tower-guard/internal/utils"

	"go.uber.org/zap"
)

var (
	// ErrQuit — игрок закрыл окно
	ErrQuit = errors.New("quit requested")
	// ErrTowerDestroyed — у башни кончились жизни
	ErrTowerDestroyed = errors.New("tower destroyed")
)

// Game holds the loop state: entities, systems, tick counter and mode flags.
// Everything is owned by the update goroutine, so there is no locking.
type Game struct {
	ECS             *entity.ECS
	Defs            *defs.Definitions
	HeroSystem      *system.HeroSystem
	MovementSystem  *system.MovementSystem
	CollisionSystem *system.CollisionSystem
	SpawnSystem     *system.SpawnSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	HeroID          types.EntityID
	TowerID         types.EntityID

	logger *zap.Logger
	tick   int
}

// NewGame initializes a new game instance: tower in the screen center, hero at its start point.
func NewGame(definitions *defs.Definitions, sizes Sizes, logger *zap.Logger) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Defs:            definitions,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(utils.SeedFromString(definitions.Seed)),
		logger:          logger,
	}

	g.TowerID = g.createTower(sizes.Tower)
	g.HeroID = g.createHero(sizes.Hero)

	g.HeroSystem = system.NewHeroSystem(ecs, config.ScreenWidth, config.ScreenHeight)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CollisionSystem = system.NewCollisionSystem(ecs)
	g.SpawnSystem = system.NewSpawnSystem(ecs, definitions, g.Rng, eventDispatcher, logger,
		g.TowerID, sizes.Enemies, config.ScreenWidth, config.ScreenHeight)

	listener := &GameEventListener{logger: logger}
	eventDispatcher.Subscribe(listener,
		event.EnemySpawned, event.EnemyIntercepted, event.TowerHit, event.TowerDestroyed, event.HardModeEnabled)

	return g
}

func (g *Game) createTower(body component.Body) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	g.ECS.Bodies[id] = &body
	g.ECS.Towers[id] = &component.Tower{Life: g.Defs.Tower.Life, MaxLife: g.Defs.Tower.Life}
	g.ECS.Renderables[id] = &component.Renderable{Kind: component.SpriteTower, Num: g.Defs.Tower.Sprite}
	return id
}

func (g *Game) createHero(body component.Body) types.EntityID {
	id := g.ECS.NewEntity()
	def := g.Defs.Hero
	g.ECS.Positions[id] = &component.Position{X: def.StartX, Y: def.StartY}
	g.ECS.Bodies[id] = &body
	g.ECS.Heroes[id] = &component.Hero{Facing: component.East, Speed: def.Speed, SpriteNum: def.Sprite}
	g.ECS.Renderables[id] = &component.Renderable{Kind: component.SpriteHero, Num: def.Sprite}
	return id
}

// Tick возвращает номер текущего тика
func (g *Game) Tick() int {
	return g.tick
}

func (g *Game) Hero() *component.Hero {
	return g.ECS.Heroes[g.HeroID]
}

func (g *Game) Tower() *component.Tower {
	return g.ECS.Towers[g.TowerID]
}

func (g *Game) Phase() component.GamePhase {
	return g.ECS.GameState.Phase
}

// Update выполняет один тик. Порядок фаз фиксирован:
// ввод, перехваты героем, попадания в башню, появление врагов, движение.
// После завершения игры каждый вызов возвращает ту же ошибку завершения.
func (g *Game) Update(in component.Input) error {
	state := g.ECS.GameState
	switch state.Phase {
	case component.Quit:
		return ErrQuit
	case component.TowerDestroyed:
		return ErrTowerDestroyed
	}

	if in.Quit {
		state.Phase = component.Quit
		return ErrQuit
	}
	if in.HardMode {
		g.EnableHardMode()
	}

	g.resolveHeroCollisions()
	if g.resolveTowerCollisions() {
		return ErrTowerDestroyed
	}

	g.SpawnSystem.Update(g.tick)
	g.HeroSystem.Update(in.Keys)
	g.MovementSystem.Update()

	g.tick++
	g.ECS.Stats.Ticks = g.tick
	return nil
}

// EnableHardMode включает дополнительный поток быстрых врагов. Выключить нельзя.
func (g *Game) EnableHardMode() {
	if g.ECS.GameState.HardMode {
		return
	}
	g.ECS.GameState.HardMode = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.HardModeEnabled, Data: g.tick})
}

// ChangeHeroImage переключает спрайт героя на fig/<num>.png
func (g *Game) ChangeHeroImage(num int) {
	g.HeroSystem.ChangeImage(num)
}

// resolveHeroCollisions убирает врагов, которых коснулся герой. Урона и очков нет.
func (g *Game) resolveHeroCollisions() {
	for _, id := range g.CollisionSystem.Overlapping(g.HeroID) {
		data := g.enemyData(id)
		g.ECS.RemoveEntity(id)
		g.ECS.Stats.Intercepted++
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyIntercepted, Data: data})
	}
}

// resolveTowerCollisions снимает по жизни за каждого врага, долетевшего до башни.
// Возвращает true, как только жизни кончились; оставшиеся враги этого тика уже не важны.
func (g *Game) resolveTowerCollisions() bool {
	tower := g.Tower()
	for _, id := range g.CollisionSystem.Overlapping(g.TowerID) {
		g.ECS.RemoveEntity(id)
		tower.Life--
		g.ECS.Stats.TowerHits++
		g.EventDispatcher.Dispatch(event.Event{Type: event.TowerHit, Data: event.TowerData{Life: tower.Life}})

		if tower.Destroyed() {
			g.ECS.GameState.Phase = component.TowerDestroyed
			g.EventDispatcher.Dispatch(event.Event{Type: event.TowerDestroyed, Data: event.TowerData{Life: tower.Life}})
			return true
		}
	}
	return false
}

func (g *Game) enemyData(id types.EntityID) event.EnemyData {
	data := event.EnemyData{ID: id}
	if e, ok := g.ECS.Enemies[id]; ok {
		data.DefID = e.DefID
	}
	if pos, ok := g.ECS.Positions[id]; ok {
		data.X, data.Y = pos.X, pos.Y
	}
	return data
}

// Summary пишет итоги забега в лог
func (g *Game) Summary() {
	stats := g.ECS.Stats
	g.logger.Info("game over",
		zap.Stringer("outcome", g.Phase()),
		zap.Int("ticks", stats.Ticks),
		zap.Int("spawned", stats.Spawned),
		zap.Int("intercepted", stats.Intercepted),
		zap.Int("tower_hits", stats.TowerHits),
		zap.Int("dropped", stats.Dropped),
		zap.Bool("hard_mode", g.ECS.GameState.HardMode),
	)
}
