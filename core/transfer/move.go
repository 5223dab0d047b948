package transfer

import "ingredient-manager/core/ingredient"

// MoveIngredient moves the run of source selected by prototype and condition
// into destination, bounded by the prototype's quantity.
//
// When condition compares quantities the move is all-or-nothing: a destination
// that would accept only part of the prototype's quantity moves nothing.
func MoveIngredient[T any, M any](source, destination ingredient.Storage[T, M], prototype T, condition M, simulate bool) (T, error) {
	component := source.Component()
	m := component.Matcher

	extracted := source.ExtractMatching(prototype, condition, true)
	if m.IsEmpty(extracted) {
		return m.Empty(), nil
	}

	movable := InsertQuantity(destination, extracted, true)
	if movable <= 0 {
		return m.Empty(), nil
	}
	if component.MatchesQuantity(condition) && movable != m.Quantity(prototype) {
		return m.Empty(), nil
	}
	if simulate {
		return m.WithQuantity(extracted, movable), nil
	}

	return commit(source, destination,
		source.ExtractMatching(m.WithQuantity(extracted, movable), m.ExactMatchNoQuantityCondition(), false))
}

// MoveMatching tries every run of source that matches prototype under condition
// (quantity ignored), each clipped to the prototype's quantity, and returns the
// first that moved anything. Runs are never combined.
func MoveMatching[T any, M any](source, destination ingredient.Storage[T, M], prototype T, condition M, simulate bool) (T, error) {
	component := source.Component()
	m := component.Matcher

	quantity := m.Quantity(prototype)
	if quantity <= 0 {
		return m.Empty(), nil
	}

	for candidate := range source.Matching(prototype, component.IgnoringQuantity(condition)) {
		moved, err := MoveIngredient(source, destination, m.WithQuantity(candidate, quantity), condition, simulate)
		if err != nil || !m.IsEmpty(moved) {
			return moved, err
		}
	}
	return m.Empty(), nil
}

// Move moves up to maxQuantity of whatever source releases first.
func Move[T any, M any](source, destination ingredient.Storage[T, M], maxQuantity int64, simulate bool) (T, error) {
	m := source.Component().Matcher
	if maxQuantity <= 0 {
		return m.Empty(), nil
	}

	extracted := source.Extract(maxQuantity, true)
	if m.IsEmpty(extracted) {
		return m.Empty(), nil
	}

	movable := InsertQuantity(destination, extracted, true)
	if movable <= 0 {
		return m.Empty(), nil
	}
	if simulate {
		return m.WithQuantity(extracted, movable), nil
	}

	return commit(source, destination,
		source.ExtractMatching(m.WithQuantity(extracted, movable), m.ExactMatchNoQuantityCondition(), false))
}

// MoveIterative repeats Move until maxQuantity has moved or a round moves
// nothing. Rounds after the first stick to the variant the first round moved.
//
// A simulated call runs the first round only.
func MoveIterative[T any, M any](source, destination ingredient.Storage[T, M], maxQuantity int64, simulate bool) (T, error) {
	first, err := Move(source, destination, maxQuantity, simulate)
	if err != nil || simulate {
		return first, err
	}
	return iterate(source, destination, first, maxQuantity)
}

// MoveIterativeMatching repeats MoveMatching until the prototype's quantity has
// moved or a round moves nothing.
//
// A simulated call runs the first round only.
func MoveIterativeMatching[T any, M any](source, destination ingredient.Storage[T, M], prototype T, condition M, simulate bool) (T, error) {
	first, err := MoveMatching(source, destination, prototype, condition, simulate)
	if err != nil || simulate {
		return first, err
	}
	return iterate(source, destination, first, source.Component().Matcher.Quantity(prototype))
}

// iterate keeps moving the variant of first until maxQuantity is reached.
// Each round asks for the outstanding quantity only.
func iterate[T any, M any](source, destination ingredient.Storage[T, M], first T, maxQuantity int64) (T, error) {
	m := source.Component().Matcher
	if m.IsEmpty(first) {
		return first, nil
	}

	same := m.ExactMatchNoQuantityCondition()
	moved := m.Quantity(first)
	for moved < maxQuantity {
		next, err := MoveMatching(source, destination, m.WithQuantity(first, maxQuantity-moved), same, false)
		moved += m.Quantity(next)
		if err != nil {
			return m.WithQuantity(first, moved), err
		}
		if m.IsEmpty(next) {
			break
		}
	}
	return m.WithQuantity(first, moved), nil
}

// MovePredicate moves the first run of source accepted by predicate, bounded by
// maxQuantity. With exactQuantity set, a run is moved only if exactly
// maxQuantity of it can move; otherwise the scan continues with the next run.
func MovePredicate[T any, M any](source, destination ingredient.Storage[T, M], predicate ingredient.Predicate[T], maxQuantity int64, exactQuantity, simulate bool) (T, error) {
	m := source.Component().Matcher
	if maxQuantity <= 0 {
		return m.Empty(), nil
	}

	same := m.ExactMatchNoQuantityCondition()
	for candidate := range source.All() {
		if !predicate(candidate) {
			continue
		}
		if m.Quantity(candidate) > maxQuantity {
			candidate = m.WithQuantity(candidate, maxQuantity)
		}

		extracted := source.ExtractMatching(candidate, same, true)
		if m.IsEmpty(extracted) {
			continue
		}
		movable := Insert(destination, extracted, true)
		if m.IsEmpty(movable) || (exactQuantity && m.Quantity(movable) != maxQuantity) {
			continue
		}
		if simulate {
			return movable, nil
		}
		return commit(source, destination, source.ExtractMatching(movable, same, false))
	}
	return m.Empty(), nil
}
