package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID   string // ID из определений (normal, fast)
	Variant int    // Номер спрайта alien<n>.png, 1..3
}
