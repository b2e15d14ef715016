// internal/component/render.go
package component

import "image/color"

// Renderable — данные для отрисовки сущности кружком.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
