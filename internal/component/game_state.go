package component

// GamePhase — фаза игрового цикла
type GamePhase int

const (
	Running GamePhase = iota
	Quit
	TowerDestroyed
)

func (p GamePhase) String() string {
	switch p {
	case Running:
		return "running"
	case Quit:
		return "quit"
	case TowerDestroyed:
		return "tower_destroyed"
	}
	return "unknown"
}

// GameState — флаги сложности и фаза, принадлежат игровому циклу
type GameState struct {
	Phase    GamePhase
	HardMode bool // Включается один раз и больше не сбрасывается
	BossMode bool
}

// Stats — счётчики текущего забега
type Stats struct {
	Ticks       int
	Spawned     int
	Intercepted int
	TowerHits   int
	Dropped     int // Враги, для которых не удалось вычислить направление
}
