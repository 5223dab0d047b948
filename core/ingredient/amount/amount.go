// Package amount implements the simplest ingredient component: an instance is
// nothing but its quantity. It fits fluids, energy and any other ingredient
// without identity beyond "how much".
//
// The match condition is a bool: true means quantities must be equal, false
// means any two amounts match.
package amount

import "ingredient-manager/core/ingredient"

// Matcher is the ingredient.Matcher for int64 amounts.
type Matcher struct{}

var _ ingredient.Matcher[int64, bool] = Matcher{}

// Component is the shared descriptor for amount ingredients.
var Component = ingredient.NewComponent[int64, bool]("amount", Matcher{}, true)

func (Matcher) Quantity(instance int64) int64 {
	if instance < 0 {
		return 0
	}
	return instance
}

func (Matcher) WithQuantity(_ int64, quantity int64) int64 {
	if quantity < 0 {
		return 0
	}
	return quantity
}

func (Matcher) IsEmpty(instance int64) bool {
	return instance <= 0
}

func (Matcher) Empty() int64 {
	return 0
}

func (Matcher) Matches(a, b int64, condition bool) bool {
	return !condition || a == b
}

func (Matcher) ExactMatchCondition() bool {
	return true
}

func (Matcher) ExactMatchNoQuantityCondition() bool {
	return false
}

func (Matcher) WithoutCondition(condition, remove bool) bool {
	return condition && !remove
}

func (Matcher) HasCondition(condition, test bool) bool {
	return !test || condition
}
