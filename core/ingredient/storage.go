package ingredient

import "iter"

// Storage is a container of ingredient instances of a single component.
type Storage[T any, M any] interface {
	// Component returns the component descriptor of the stored instances.
	Component() *Component[T, M]

	// Insert adds the instance and returns the remainder that was not accepted.
	// When simulate is true the storage is left untouched.
	Insert(instance T, simulate bool) T

	// Extract removes up to maxQuantity of any content and returns what was removed.
	Extract(maxQuantity int64, simulate bool) T

	// ExtractMatching removes content matching prototype under condition, at most
	// the prototype's quantity, and returns what was removed.
	ExtractMatching(prototype T, condition M, simulate bool) T

	// All yields a snapshot of the non-empty instances in the storage.
	All() iter.Seq[T]

	// Matching yields a snapshot of the instances matching prototype under condition.
	Matching(prototype T, condition M) iter.Seq[T]
}

// Slotted is the capability of a storage whose contents are partitioned into
// independently addressable slots, indexed 0..Slots()-1.
type Slotted[T any, M any] interface {
	Storage[T, M]

	// Slots returns the number of slots.
	Slots() int

	// SlotContents returns the instance held in slot.
	SlotContents(slot int) T

	// InsertSlot adds the instance to slot and returns the remainder.
	InsertSlot(slot int, instance T, simulate bool) T

	// ExtractSlot removes up to maxQuantity from slot and returns what was removed.
	ExtractSlot(slot int, maxQuantity int64, simulate bool) T
}

// AsSlotted returns the Slotted capability of storage, if it has one.
func AsSlotted[T any, M any](storage Storage[T, M]) (Slotted[T, M], bool) {
	slotted, ok := storage.(Slotted[T, M])
	return slotted, ok
}

// Predicate selects instances.
type Predicate[T any] func(instance T) bool
