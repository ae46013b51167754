// internal/component/hero.go
package component

// Hero — управляемый игроком персонаж
type Hero struct {
	Facing    Direction // Текущее направление взгляда
	Speed     float64   // Пикселей за тик
	SpriteNum int       // Номер файла fig/<n>.png
}

// Keys — снимок нажатых клавиш направления за текущий тик
type Keys struct {
	Up, Down, Left, Right bool
}

// Delta суммирует вклад всех нажатых клавиш
func (k Keys) Delta() (dx, dy int) {
	if k.Up {
		dy--
	}
	if k.Down {
		dy++
	}
	if k.Left {
		dx--
	}
	if k.Right {
		dx++
	}
	return dx, dy
}

// Input — состояние ввода за один тик
type Input struct {
	Keys     Keys
	Quit     bool // Закрытие окна или Escape
	HardMode bool // Tab нажат именно на этом тике
}
