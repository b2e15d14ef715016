// internal/entity/store.go
package entity

import "go-td-sim/internal/types"

type entry[T any] struct {
	id   types.EntityID
	item *T
}

// Store — упорядоченное хранилище компонентов одного типа.
// Обход идёт строго в порядке добавления. Структурные изменения во время
// обхода безопасны: удаление откладывается до конца обхода, добавленные
// элементы попадают только в следующий обход.
type Store[T any] struct {
	entries   []entry[T]
	index     map[types.EntityID]int
	iterating int
	dirty     bool
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[types.EntityID]int)}
}

// Add привязывает компонент к сущности. Повторная привязка заменяет данные,
// сохраняя позицию в порядке обхода.
func (s *Store[T]) Add(id types.EntityID, item *T) {
	if i, ok := s.index[id]; ok {
		s.entries[i].item = item
		return
	}
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, entry[T]{id: id, item: item})
}

// Get возвращает компонент сущности или явное "отсутствует".
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.entries[i].item, true
}

func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Remove отвязывает компонент. Во время активного обхода запись помечается
// и физически удаляется после его завершения; Get сразу видит отсутствие.
func (s *Store[T]) Remove(id types.EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	if s.iterating > 0 {
		s.entries[i].item = nil
		s.dirty = true
		return
	}
	s.splice(i)
}

func (s *Store[T]) Len() int {
	return len(s.index)
}

// ForEach обходит компоненты в порядке добавления. Возврат false из
// колбэка прерывает обход.
func (s *Store[T]) ForEach(fn func(id types.EntityID, item *T) bool) {
	s.iterating++
	n := len(s.entries)
	for i := 0; i < n; i++ {
		e := s.entries[i]
		if e.item == nil {
			continue
		}
		if !fn(e.id, e.item) {
			break
		}
	}
	s.iterating--
	if s.iterating == 0 && s.dirty {
		s.compact()
	}
}

func (s *Store[T]) splice(i int) {
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].id] = j
	}
}

func (s *Store[T]) compact() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.item != nil {
			s.index[e.id] = len(kept)
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.dirty = false
}
