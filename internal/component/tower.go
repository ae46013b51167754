// component/tower.go
package component

// Tower — защищаемая башня в центре экрана
type Tower struct {
	Life    int // Оставшиеся жизни, только убывают
	MaxLife int
}

// Destroyed — башня разрушена
func (t *Tower) Destroyed() bool {
	return t.Life <= 0
}
