// internal/event/types.go
package event

import "go-tower-guard/internal/types"

const (
	EnemySpawned     EventType = "EnemySpawned"     // Враг появился на краю экрана
	EnemyIntercepted EventType = "EnemyIntercepted" // Герой сбил врага
	TowerHit         EventType = "TowerHit"         // Враг долетел до башни
	TowerDestroyed   EventType = "TowerDestroyed"   // Жизни башни кончились
	HardModeEnabled  EventType = "HardModeEnabled"
)

// EnemyData — полезная нагрузка событий о враге
type EnemyData struct {
	ID    types.EntityID
	DefID string
	X, Y  float64
}

// TowerData — полезная нагрузка событий о башне
type TowerData struct {
	Life int
}
