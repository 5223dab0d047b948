// Package itemstack implements the item stack ingredient component used by
// persisted containers: an item identifier, an optional metadata variant and
// a count.
package itemstack

import (
	"fmt"

	"ingredient-manager/core/ingredient"
)

// Stack is a quantity of one item variant.
type Stack struct {
	Item  string `json:"item" yaml:"item"`
	Meta  string `json:"meta,omitempty" yaml:"meta,omitempty"`
	Count int64  `json:"count" yaml:"count"`
}

// String returns a compact representation, e.g. "iron_ingot:polished x12".
func (s Stack) String() string {
	if s.Meta == "" {
		return fmt.Sprintf("%s x%d", s.Item, s.Count)
	}
	return fmt.Sprintf("%s:%s x%d", s.Item, s.Meta, s.Count)
}

// Condition is a bitmask of the stack facets compared when matching.
type Condition uint8

const (
	MatchItem Condition = 1 << iota
	MatchMeta
	MatchCount

	MatchNone  Condition = 0
	MatchAll             = MatchItem | MatchMeta | MatchCount
	MatchStack           = MatchItem | MatchMeta
)

// Matcher is the ingredient.Matcher for stacks.
type Matcher struct{}

var _ ingredient.Matcher[Stack, Condition] = Matcher{}

// Component is the shared descriptor for item stacks.
var Component = ingredient.NewComponent[Stack, Condition]("itemstack", Matcher{}, MatchCount)

func (Matcher) Quantity(instance Stack) int64 {
	if instance.Count < 0 {
		return 0
	}
	return instance.Count
}

func (m Matcher) WithQuantity(instance Stack, quantity int64) Stack {
	if quantity <= 0 || instance.Item == "" {
		return m.Empty()
	}
	instance.Count = quantity
	return instance
}

func (Matcher) IsEmpty(instance Stack) bool {
	return instance.Item == "" || instance.Count <= 0
}

func (Matcher) Empty() Stack {
	return Stack{}
}

func (Matcher) Matches(a, b Stack, condition Condition) bool {
	if condition&MatchItem != 0 && a.Item != b.Item {
		return false
	}
	if condition&MatchMeta != 0 && a.Meta != b.Meta {
		return false
	}
	if condition&MatchCount != 0 && a.Count != b.Count {
		return false
	}
	return true
}

func (Matcher) ExactMatchCondition() Condition {
	return MatchAll
}

func (Matcher) ExactMatchNoQuantityCondition() Condition {
	return MatchStack
}

func (Matcher) WithoutCondition(condition, remove Condition) Condition {
	return condition &^ remove
}

func (Matcher) HasCondition(condition, test Condition) bool {
	return condition&test == test
}
