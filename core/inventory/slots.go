package inventory

import (
	"iter"
	"slices"

	"ingredient-manager/core/ingredient"
)

// Slots is a slotted storage with a fixed number of slots, a per-slot capacity
// and a per-operation rate limit. A slot only holds one variant at a time.
type Slots[T any, M any] struct {
	name         string
	component    *ingredient.Component[T, M]
	slotCapacity int64
	rateLimit    int64
	slots        []T
}

var _ ingredient.Slotted[int64, bool] = (*Slots[int64, bool])(nil)

// NewSlots creates a storage with count empty slots.
func NewSlots[T any, M any](name string, component *ingredient.Component[T, M], count int, slotCapacity, rateLimit int64) *Slots[T, M] {
	slots := make([]T, count)
	for i := range slots {
		slots[i] = component.Matcher.Empty()
	}
	return &Slots[T, M]{
		name:         name,
		component:    component,
		slotCapacity: slotCapacity,
		rateLimit:    rateLimit,
		slots:        slots,
	}
}

// String returns the storage name.
func (s *Slots[T, M]) String() string {
	return s.name
}

func (s *Slots[T, M]) Component() *ingredient.Component[T, M] {
	return s.component
}

// SlotCapacity returns the capacity of each slot.
func (s *Slots[T, M]) SlotCapacity() int64 {
	return s.slotCapacity
}

// RateLimit returns the per-operation limit.
func (s *Slots[T, M]) RateLimit() int64 {
	return s.rateLimit
}

func (s *Slots[T, M]) Slots() int {
	return len(s.slots)
}

func (s *Slots[T, M]) SlotContents(slot int) T {
	if slot < 0 || slot >= len(s.slots) {
		return s.component.Matcher.Empty()
	}
	return s.slots[slot]
}

// SetSlot replaces the contents of slot without capacity or rate checks. It is
// meant for restoring persisted state.
func (s *Slots[T, M]) SetSlot(slot int, instance T) {
	if slot < 0 || slot >= len(s.slots) {
		return
	}
	s.slots[slot] = instance
}

func (s *Slots[T, M]) InsertSlot(slot int, instance T, simulate bool) T {
	m := s.component.Matcher
	quantity := m.Quantity(instance)
	if quantity == 0 || slot < 0 || slot >= len(s.slots) {
		return instance
	}

	accepted := min(quantity, s.rateLimit, s.space(slot, instance))
	if accepted <= 0 {
		return instance
	}
	if !simulate {
		s.fill(slot, instance, accepted)
	}
	return m.WithQuantity(instance, quantity-accepted)
}

func (s *Slots[T, M]) ExtractSlot(slot int, maxQuantity int64, simulate bool) T {
	m := s.component.Matcher
	if slot < 0 || slot >= len(s.slots) || maxQuantity <= 0 {
		return m.Empty()
	}

	current := s.slots[slot]
	have := m.Quantity(current)
	quantity := min(maxQuantity, s.rateLimit, have)
	if m.IsEmpty(current) || quantity <= 0 {
		return m.Empty()
	}
	if !simulate {
		s.slots[slot] = m.WithQuantity(current, have-quantity)
	}
	return m.WithQuantity(current, quantity)
}

// Insert spreads the instance over slots already holding the same variant
// first, then over empty slots.
func (s *Slots[T, M]) Insert(instance T, simulate bool) T {
	m := s.component.Matcher
	quantity := m.Quantity(instance)
	if quantity == 0 {
		return instance
	}

	budget := min(quantity, s.rateLimit)
	same := m.ExactMatchNoQuantityCondition()
	for _, stacking := range []bool{true, false} {
		for slot, current := range s.slots {
			if budget <= 0 {
				break
			}
			if m.IsEmpty(current) == stacking {
				continue
			}
			if stacking && !m.Matches(current, instance, same) {
				continue
			}
			put := min(budget, s.space(slot, instance))
			if put <= 0 {
				continue
			}
			if !simulate {
				s.fill(slot, instance, put)
			}
			budget -= put
			quantity -= put
		}
	}
	return m.WithQuantity(instance, quantity)
}

// Extract removes up to maxQuantity from the first non-empty slot.
func (s *Slots[T, M]) Extract(maxQuantity int64, simulate bool) T {
	for slot, current := range s.slots {
		if !s.component.Matcher.IsEmpty(current) {
			return s.ExtractSlot(slot, maxQuantity, simulate)
		}
	}
	return s.component.Matcher.Empty()
}

// ExtractMatching gathers the first matching variant across all slots, up to
// the prototype's quantity and the rate limit.
func (s *Slots[T, M]) ExtractMatching(prototype T, condition M, simulate bool) T {
	m := s.component.Matcher
	want := min(m.Quantity(prototype), s.rateLimit)
	if want <= 0 {
		return m.Empty()
	}

	lookup := s.component.IgnoringQuantity(condition)
	same := m.ExactMatchNoQuantityCondition()
	var (
		variant  T
		found    bool
		gathered int64
		takes    = make(map[int]int64)
	)
	for slot, current := range s.slots {
		if gathered == want {
			break
		}
		if m.IsEmpty(current) || !m.Matches(prototype, current, lookup) {
			continue
		}
		if !found {
			variant, found = current, true
		} else if !m.Matches(variant, current, same) {
			continue
		}
		take := min(want-gathered, m.Quantity(current))
		takes[slot] = take
		gathered += take
	}
	if !found || gathered == 0 {
		return m.Empty()
	}
	if s.component.MatchesQuantity(condition) && gathered != m.Quantity(prototype) {
		return m.Empty()
	}

	if !simulate {
		for slot, take := range takes {
			current := s.slots[slot]
			s.slots[slot] = m.WithQuantity(current, m.Quantity(current)-take)
		}
	}
	return m.WithQuantity(variant, gathered)
}

func (s *Slots[T, M]) All() iter.Seq[T] {
	return s.snapshot(func(T) bool { return true })
}

func (s *Slots[T, M]) Matching(prototype T, condition M) iter.Seq[T] {
	return s.snapshot(func(instance T) bool {
		return s.component.Matcher.Matches(prototype, instance, condition)
	})
}

func (s *Slots[T, M]) snapshot(keep func(T) bool) iter.Seq[T] {
	m := s.component.Matcher
	contents := make([]T, 0, len(s.slots))
	for _, current := range s.slots {
		if !m.IsEmpty(current) && keep(current) {
			contents = append(contents, current)
		}
	}
	return slices.Values(contents)
}

// space returns how much of instance slot can still take.
func (s *Slots[T, M]) space(slot int, instance T) int64 {
	m := s.component.Matcher
	current := s.slots[slot]
	if m.IsEmpty(current) {
		return s.slotCapacity
	}
	if !m.Matches(current, instance, m.ExactMatchNoQuantityCondition()) {
		return 0
	}
	return s.slotCapacity - m.Quantity(current)
}

func (s *Slots[T, M]) fill(slot int, instance T, quantity int64) {
	m := s.component.Matcher
	current := s.slots[slot]
	if m.IsEmpty(current) {
		s.slots[slot] = m.WithQuantity(instance, quantity)
		return
	}
	s.slots[slot] = m.WithQuantity(current, m.Quantity(current)+quantity)
}
