// component/movement.go
package component

import "go-td-sim/pkg/vmath"

// Transform — компонент позиции
type Transform struct {
	Pos vmath.Vec2
}

// Velocity — базовая скорость движения (пикселей в секунду)
type Velocity struct {
	Speed float64
}

// Path — компонент следования по маршруту
type Path struct {
	PathIndex     int     // Какой из маршрутов карты использует сущность
	WaypointIndex int     // Индекс следующей точки маршрута
	Progress      float64 // Накопленный пройденный путь, для таргетинга FIRST/LAST
	ReachedEnd    bool    // Достигнут ли конец маршрута
}
