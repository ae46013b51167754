// internal/defs/types.go
package defs

// HeroDefinition holds the static data for the player character.
type HeroDefinition struct {
	Sprite int     `yaml:"sprite"`
	Speed  float64 `yaml:"speed"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// TowerDefinition holds the static data for the defended tower.
type TowerDefinition struct {
	Sprite int `yaml:"sprite"`
	Life   int `yaml:"life"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID    string  `yaml:"id"`
	Speed float64 `yaml:"speed"`
}

// SpawnRules описывает три потока появления врагов.
type SpawnRules struct {
	BaseDivisor   int    `yaml:"base_divisor"`    // Базовый делитель: tick mod (base - floor(sqrt(tick)))
	MinDivisor    int    `yaml:"min_divisor"`     // Нижняя граница делителя
	BossInterval  int    `yaml:"boss_interval"`   // Интервал в режиме босса
	BossAfterTick int    `yaml:"boss_after_tick"` // 0 — режим босса не включается никогда
	HardInterval  int    `yaml:"hard_interval"`   // Интервал дополнительного потока в hard mode
	BaselineEnemy string `yaml:"baseline_enemy"`
	BossEnemy     string `yaml:"boss_enemy"`
	HardEnemy     string `yaml:"hard_enemy"`
}

// Definitions — все игровые определения
type Definitions struct {
	Seed    string            `yaml:"seed"`
	Hero    HeroDefinition    `yaml:"hero"`
	Tower   TowerDefinition   `yaml:"tower"`
	Enemies []EnemyDefinition `yaml:"enemies"`
	Spawn   SpawnRules        `yaml:"spawn"`
}

// Enemy ищет определение врага по ID.
func (d *Definitions) Enemy(id string) (EnemyDefinition, bool) {
	for _, def := range d.Enemies {
		if def.ID == id {
			return def, true
		}
	}
	return EnemyDefinition{}, false
}
