package transfer

import "ingredient-manager/core/ingredient"

// InsertQuantity inserts instance into destination and returns the quantity
// that was (or would be) accepted. An empty instance is never offered to the
// destination.
func InsertQuantity[T any, M any](destination ingredient.Storage[T, M], instance T, simulate bool) int64 {
	m := destination.Component().Matcher
	quantity := m.Quantity(instance)
	if quantity <= 0 {
		return 0
	}
	return quantity - m.Quantity(destination.Insert(instance, simulate))
}

// Insert is InsertQuantity returning the accepted part as an instance.
func Insert[T any, M any](destination ingredient.Storage[T, M], instance T, simulate bool) T {
	m := destination.Component().Matcher
	return m.WithQuantity(instance, InsertQuantity(destination, instance, simulate))
}

// deliver performs the real insert of extracted. A remainder refused by the
// destination goes back through giveBack; whatever giveBack refuses as well is
// lost and reported.
func deliver[T any, M any](m ingredient.Matcher[T, M], destination any, extracted T, insert, giveBack func(T) T) (T, error) {
	if m.IsEmpty(extracted) {
		return m.Empty(), nil
	}

	remainder := insert(extracted)
	if m.IsEmpty(remainder) {
		return extracted, nil
	}

	moved := m.WithQuantity(extracted, m.Quantity(extracted)-m.Quantity(remainder))
	if lost := giveBack(remainder); !m.IsEmpty(lost) {
		return moved, &ProtocolViolationError{
			Destination:  describe(destination),
			Lost:         lost,
			LostQuantity: m.Quantity(lost),
		}
	}
	return moved, nil
}

// commit delivers extracted from source into destination, both slotless.
func commit[T any, M any](source, destination ingredient.Storage[T, M], extracted T) (T, error) {
	return deliver(source.Component().Matcher, destination, extracted,
		func(instance T) T { return destination.Insert(instance, false) },
		func(instance T) T { return source.Insert(instance, false) },
	)
}
