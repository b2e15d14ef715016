// internal/entity/world.go
package entity

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/types"
)

// World владеет всеми сущностями и компонентами. Идентификаторы — слабые
// ссылки: слот арены плюс поколение, так что обращение к уничтоженной
// сущности даёт явное "отсутствует", а не данные нового жильца слота.
type World struct {
	GameTime float64

	generations []uint32
	alive       []bool
	freeSlots   []uint32
	pendingFree []uint32

	Transforms   *Store[component.Transform]
	Velocities   *Store[component.Velocity]
	Paths        *Store[component.Path]
	Healths      *Store[component.Health]
	ShieldRegens *Store[component.ShieldRegen]
	Enemies      *Store[component.Enemy]
	Resistances  *Store[component.Resistances]
	Towers       *Store[component.Tower]
	Combats      *Store[component.Combat]
	Projectiles  *Store[component.Projectile]
	Statuses     *Store[component.StatusEffects]
	Abilities    *Store[component.Ability]
	Synergies    *Store[component.Synergy]
	Healers      *Store[component.Healer]
	Phasings     *Store[component.Phasing]
	Splittings   *Store[component.Splitting]
	Stealths     *Store[component.Stealth]
	Spawners     *Store[component.Spawner]
	Lifetimes    *Store[component.Lifetime]
	Renderables  *Store[component.Renderable]

	removers []func(types.EntityID)
}

func NewWorld() *World {
	w := &World{
		// Слот 0 зарезервирован, чтобы нулевой EntityID никогда не был живым.
		generations: []uint32{0},
		alive:       []bool{false},
	}
	w.Transforms = registerStore[component.Transform](w)
	w.Velocities = registerStore[component.Velocity](w)
	w.Paths = registerStore[component.Path](w)
	w.Healths = registerStore[component.Health](w)
	w.ShieldRegens = registerStore[component.ShieldRegen](w)
	w.Enemies = registerStore[component.Enemy](w)
	w.Resistances = registerStore[component.Resistances](w)
	w.Towers = registerStore[component.Tower](w)
	w.Combats = registerStore[component.Combat](w)
	w.Projectiles = registerStore[component.Projectile](w)
	w.Statuses = registerStore[component.StatusEffects](w)
	w.Abilities = registerStore[component.Ability](w)
	w.Synergies = registerStore[component.Synergy](w)
	w.Healers = registerStore[component.Healer](w)
	w.Phasings = registerStore[component.Phasing](w)
	w.Splittings = registerStore[component.Splitting](w)
	w.Stealths = registerStore[component.Stealth](w)
	w.Spawners = registerStore[component.Spawner](w)
	w.Lifetimes = registerStore[component.Lifetime](w)
	w.Renderables = registerStore[component.Renderable](w)
	return w
}

func registerStore[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.removers = append(w.removers, s.Remove)
	return s
}

// NewEntity создаёт сущность, переиспользуя освободившиеся слоты.
func (w *World) NewEntity() types.EntityID {
	var idx uint32
	if n := len(w.freeSlots); n > 0 {
		idx = w.freeSlots[n-1]
		w.freeSlots = w.freeSlots[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}
	w.alive[idx] = true
	return types.MakeEntityID(idx, w.generations[idx])
}

// Alive сообщает, жива ли сущность. Устаревший идентификатор (слот уже
// переиспользован) даёт false.
func (w *World) Alive(id types.EntityID) bool {
	idx := id.Index()
	if int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == id.Generation()
}

// DestroyEntity снимает все компоненты и помечает сущность мёртвой.
// Безопасно во время обхода любого хранилища; слот возвращается в оборот
// только после Flush.
func (w *World) DestroyEntity(id types.EntityID) {
	if !w.Alive(id) {
		return
	}
	for _, remove := range w.removers {
		remove(id)
	}
	idx := id.Index()
	w.alive[idx] = false
	w.pendingFree = append(w.pendingFree, idx)
}

// Flush завершает отложенные уничтожения: инкрементирует поколение слота и
// возвращает его в список свободных. Вызывается между фазами тика.
func (w *World) Flush() {
	for _, idx := range w.pendingFree {
		w.generations[idx]++
		w.freeSlots = append(w.freeSlots, idx)
	}
	w.pendingFree = w.pendingFree[:0]
}

// Reset возвращает мир в исходное состояние для новой сессии.
func (w *World) Reset() {
	*w = *NewWorld()
}
