// internal/types/types.go
package types

// EntityID — идентификатор сущности. В младших 32 битах хранится индекс
// слота в арене, в старших — поколение слота. Нулевое значение никогда не
// является живой сущностью.
type EntityID uint64

// InvalidEntity — явное "нет сущности".
const InvalidEntity EntityID = 0

// MakeEntityID собирает идентификатор из индекса слота и поколения.
func MakeEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index возвращает индекс слота.
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation возвращает поколение слота на момент создания сущности.
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}
