package transfer

import "ingredient-manager/core/ingredient"

// AnySlot addresses every slot of a storage. Any negative slot index has the
// same meaning.
const AnySlot = -1

// selection describes what a slotted move takes from the source.
type selection[T any, M any] struct {
	// quantity bounds the move.
	quantity int64
	// exact makes the move all-or-nothing on quantity.
	exact bool
	// lookup is the condition used to extract a candidate from a slotless source.
	lookup M
	// candidate filters the contents of a slotless source.
	candidate func(T) bool
	// accepts checks a simulated extraction from a source slot.
	accepts func(T) bool
}

// MoveSlotted moves a run matching prototype under condition between the given
// slots. A negative slot loops over every slot of that side:
//
//	source slot  destination slot  behaviour
//	fixed        fixed             single slot to single slot, both storages must be slotted
//	any          fixed             first source slot (or slotless run) that moves
//	fixed        any               first destination slot that accepts; source must be slotted
//	any          any               MoveMatching
//
// A slot on a storage that is not slotted moves nothing.
func MoveSlotted[T any, M any](source ingredient.Storage[T, M], sourceSlot int, destination ingredient.Storage[T, M], destinationSlot int, prototype T, condition M, simulate bool) (T, error) {
	component := source.Component()
	m := component.Matcher
	if sourceSlot < 0 && destinationSlot < 0 {
		return MoveMatching(source, destination, prototype, condition, simulate)
	}

	lookup := component.IgnoringQuantity(condition)
	sel := selection[T, M]{
		quantity: m.Quantity(prototype),
		exact:    component.MatchesQuantity(condition),
		lookup:   condition,
		candidate: func(instance T) bool {
			return m.Matches(prototype, instance, lookup)
		},
		accepts: func(instance T) bool {
			return m.Matches(prototype, instance, condition)
		},
	}
	return moveSlotted(source, sourceSlot, destination, destinationSlot, sel, simulate)
}

// MoveSlottedPredicate is MoveSlotted selecting runs by predicate, bounded by
// maxQuantity. With exactQuantity set only exactly maxQuantity may move.
//
// Moving from a fixed source slot into a slotless destination takes what the
// predicate accepts and checks exactness against what the destination would
// insert, not against what the slot holds.
func MoveSlottedPredicate[T any, M any](source ingredient.Storage[T, M], sourceSlot int, destination ingredient.Storage[T, M], destinationSlot int, predicate ingredient.Predicate[T], maxQuantity int64, exactQuantity, simulate bool) (T, error) {
	m := source.Component().Matcher
	if sourceSlot < 0 && destinationSlot < 0 {
		return MovePredicate(source, destination, predicate, maxQuantity, exactQuantity, simulate)
	}

	lookup := m.ExactMatchNoQuantityCondition()
	if exactQuantity {
		lookup = m.ExactMatchCondition()
	}
	sel := selection[T, M]{
		quantity:  maxQuantity,
		exact:     exactQuantity,
		lookup:    lookup,
		candidate: predicate,
		accepts: func(instance T) bool {
			return predicate(instance) && (!exactQuantity || m.Quantity(instance) == maxQuantity)
		},
	}
	return moveSlotted(source, sourceSlot, destination, destinationSlot, sel, simulate)
}

func moveSlotted[T any, M any](source ingredient.Storage[T, M], sourceSlot int, destination ingredient.Storage[T, M], destinationSlot int, sel selection[T, M], simulate bool) (T, error) {
	m := source.Component().Matcher
	if sel.quantity <= 0 {
		return m.Empty(), nil
	}

	sourceSlotted, sourceOK := ingredient.AsSlotted(source)
	destinationSlotted, destinationOK := ingredient.AsSlotted(destination)

	switch {
	case sourceSlot >= 0 && destinationSlot >= 0:
		if !sourceOK || !destinationOK {
			return m.Empty(), nil
		}
		return moveSlotToSlot(sourceSlotted, sourceSlot, destinationSlotted, destinationSlot, sel, simulate)

	case sourceSlot < 0:
		if !destinationOK {
			return m.Empty(), nil
		}
		if !sourceOK {
			return moveRunToSlot(source, destinationSlotted, destinationSlot, sel, simulate)
		}
		for slot := range sourceSlotted.Slots() {
			moved, err := moveSlotToSlot(sourceSlotted, slot, destinationSlotted, destinationSlot, sel, simulate)
			if err != nil || !m.IsEmpty(moved) {
				return moved, err
			}
		}
		return m.Empty(), nil

	default:
		if !sourceOK {
			return m.Empty(), nil
		}
		if !destinationOK {
			return moveSlotToStorage(sourceSlotted, sourceSlot, destination, sel, simulate)
		}
		for slot := range destinationSlotted.Slots() {
			moved, err := moveSlotToSlot(sourceSlotted, sourceSlot, destinationSlotted, slot, sel, simulate)
			if err != nil || !m.IsEmpty(moved) {
				return moved, err
			}
		}
		return m.Empty(), nil
	}
}

// moveSlotToSlot moves between two fixed slots.
func moveSlotToSlot[T any, M any](source ingredient.Slotted[T, M], sourceSlot int, destination ingredient.Slotted[T, M], destinationSlot int, sel selection[T, M], simulate bool) (T, error) {
	m := source.Component().Matcher

	extracted := source.ExtractSlot(sourceSlot, sel.quantity, true)
	if m.IsEmpty(extracted) || !sel.accepts(extracted) {
		return m.Empty(), nil
	}

	remaining := m.Quantity(destination.InsertSlot(destinationSlot, extracted, true))
	movable := m.Quantity(extracted) - remaining
	if movable <= 0 || (sel.exact && remaining > 0) {
		return m.Empty(), nil
	}
	if simulate {
		return m.WithQuantity(extracted, movable), nil
	}

	return deliver(m, destination, source.ExtractSlot(sourceSlot, movable, false),
		func(instance T) T { return destination.InsertSlot(destinationSlot, instance, false) },
		func(instance T) T { return source.InsertSlot(sourceSlot, instance, false) },
	)
}

// moveRunToSlot moves the first suitable run of a slotless source into a fixed
// destination slot.
func moveRunToSlot[T any, M any](source ingredient.Storage[T, M], destination ingredient.Slotted[T, M], destinationSlot int, sel selection[T, M], simulate bool) (T, error) {
	m := source.Component().Matcher
	same := m.ExactMatchNoQuantityCondition()

	for candidate := range source.All() {
		if !sel.candidate(candidate) {
			continue
		}

		extracted := source.ExtractMatching(m.WithQuantity(candidate, sel.quantity), sel.lookup, true)
		if m.IsEmpty(extracted) {
			continue
		}
		remaining := m.Quantity(destination.InsertSlot(destinationSlot, extracted, true))
		movable := m.Quantity(extracted) - remaining
		if movable <= 0 || (sel.exact && remaining > 0) {
			continue
		}
		if simulate {
			return m.WithQuantity(extracted, movable), nil
		}

		return deliver(m, destination, source.ExtractMatching(m.WithQuantity(extracted, movable), same, false),
			func(instance T) T { return destination.InsertSlot(destinationSlot, instance, false) },
			func(instance T) T { return source.Insert(instance, false) },
		)
	}
	return m.Empty(), nil
}

// moveSlotToStorage moves from a fixed source slot into a slotless destination.
func moveSlotToStorage[T any, M any](source ingredient.Slotted[T, M], sourceSlot int, destination ingredient.Storage[T, M], sel selection[T, M], simulate bool) (T, error) {
	m := source.Component().Matcher

	extracted := source.ExtractSlot(sourceSlot, sel.quantity, true)
	if m.IsEmpty(extracted) || !sel.candidate(extracted) {
		return m.Empty(), nil
	}

	inserted := Insert(destination, extracted, true)
	if m.IsEmpty(inserted) || (sel.exact && m.Quantity(inserted) != sel.quantity) {
		return m.Empty(), nil
	}
	if simulate {
		return inserted, nil
	}

	return deliver(m, destination, source.ExtractSlot(sourceSlot, m.Quantity(inserted), false),
		func(instance T) T { return destination.Insert(instance, false) },
		func(instance T) T { return source.InsertSlot(sourceSlot, instance, false) },
	)
}
