package inventory

import (
	"iter"
	"slices"

	"ingredient-manager/core/ingredient"
)

// Collection is a slotless storage bounded by a total capacity and a
// per-operation rate limit.
type Collection[T any, M any] struct {
	name      string
	component *ingredient.Component[T, M]
	capacity  int64
	rateLimit int64
	contents  []T
}

var _ ingredient.Storage[int64, bool] = (*Collection[int64, bool])(nil)

// NewCollection creates an empty collection.
func NewCollection[T any, M any](name string, component *ingredient.Component[T, M], capacity, rateLimit int64) *Collection[T, M] {
	return &Collection[T, M]{
		name:      name,
		component: component,
		capacity:  capacity,
		rateLimit: rateLimit,
	}
}

// String returns the collection name.
func (c *Collection[T, M]) String() string {
	return c.name
}

func (c *Collection[T, M]) Component() *ingredient.Component[T, M] {
	return c.component
}

// Capacity returns the total capacity.
func (c *Collection[T, M]) Capacity() int64 {
	return c.capacity
}

// RateLimit returns the per-operation limit.
func (c *Collection[T, M]) RateLimit() int64 {
	return c.rateLimit
}

// Total returns the summed quantity of all contents.
func (c *Collection[T, M]) Total() int64 {
	var total int64
	for _, instance := range c.contents {
		total += c.component.Matcher.Quantity(instance)
	}
	return total
}

// Contents returns a copy of the merged contents in insertion order.
func (c *Collection[T, M]) Contents() []T {
	return slices.Clone(c.contents)
}

// Put adds the instance without capacity or rate checks. It is meant for
// restoring persisted state.
func (c *Collection[T, M]) Put(instance T) {
	if c.component.Matcher.IsEmpty(instance) {
		return
	}
	c.add(instance)
}

func (c *Collection[T, M]) Insert(instance T, simulate bool) T {
	m := c.component.Matcher
	quantity := m.Quantity(instance)
	if quantity == 0 {
		return instance
	}

	accepted := min(quantity, c.rateLimit, c.capacity-c.Total())
	if accepted <= 0 {
		return instance
	}
	if !simulate {
		c.add(m.WithQuantity(instance, accepted))
	}
	return m.WithQuantity(instance, quantity-accepted)
}

func (c *Collection[T, M]) Extract(maxQuantity int64, simulate bool) T {
	m := c.component.Matcher
	if maxQuantity <= 0 || len(c.contents) == 0 {
		return m.Empty()
	}

	return c.take(0, maxQuantity, simulate)
}

func (c *Collection[T, M]) ExtractMatching(prototype T, condition M, simulate bool) T {
	m := c.component.Matcher
	want := m.Quantity(prototype)
	if want == 0 {
		return m.Empty()
	}

	lookup := c.component.IgnoringQuantity(condition)
	exact := c.component.MatchesQuantity(condition)
	for i, instance := range c.contents {
		if !m.Matches(prototype, instance, lookup) {
			continue
		}
		available := min(want, c.rateLimit, m.Quantity(instance))
		if available <= 0 || (exact && available != want) {
			continue
		}
		return c.take(i, available, simulate)
	}
	return m.Empty()
}

func (c *Collection[T, M]) All() iter.Seq[T] {
	return slices.Values(c.Contents())
}

func (c *Collection[T, M]) Matching(prototype T, condition M) iter.Seq[T] {
	snapshot := c.Contents()
	return func(yield func(T) bool) {
		for _, instance := range snapshot {
			if !c.component.Matcher.Matches(prototype, instance, condition) {
				continue
			}
			if !yield(instance) {
				return
			}
		}
	}
}

// take removes up to maxQuantity (bounded by the rate limit) from contents[i].
func (c *Collection[T, M]) take(i int, maxQuantity int64, simulate bool) T {
	m := c.component.Matcher
	instance := c.contents[i]
	have := m.Quantity(instance)
	quantity := min(maxQuantity, c.rateLimit, have)
	if quantity <= 0 {
		return m.Empty()
	}
	if !simulate {
		if quantity == have {
			c.contents = slices.Delete(c.contents, i, i+1)
		} else {
			c.contents[i] = m.WithQuantity(instance, have-quantity)
		}
	}
	return m.WithQuantity(instance, quantity)
}

// add merges instance into an existing equal-ignoring-quantity entry or appends it.
func (c *Collection[T, M]) add(instance T) {
	m := c.component.Matcher
	same := m.ExactMatchNoQuantityCondition()
	for i, existing := range c.contents {
		if m.Matches(existing, instance, same) {
			c.contents[i] = m.WithQuantity(existing, m.Quantity(existing)+m.Quantity(instance))
			return
		}
	}
	c.contents = append(c.contents, instance)
}
