package transfer

import (
	"errors"
	"testing"

	"ingredient-manager/core/ingredient"
	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isStone(s itemstack.Stack) bool {
	return s.Item == "stone"
}

func TestMoveSlotted_FixedToFixed(t *testing.T) {
	t.Run("Moves between slots", func(t *testing.T) {
		source := newHopper("source", 3, map[int]itemstack.Stack{0: stack("stone", 10)})
		destination := newHopper("destination", 2, nil)

		moved, err := MoveSlotted(source, 0, destination, 1, stack("stone", 5), itemstack.MatchItem, true)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 5), moved)
		assert.Equal(t, stack("stone", 10), source.SlotContents(0))

		moved, err = MoveSlotted(source, 0, destination, 1, stack("stone", 5), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 5), moved)
		assert.Equal(t, stack("stone", 5), source.SlotContents(0))
		assert.Equal(t, itemstack.Stack{}, destination.SlotContents(0))
		assert.Equal(t, stack("stone", 5), destination.SlotContents(1))
	})

	t.Run("Partial unless exact", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
		destination := inventory.NewSlots("destination", itemstack.Component, 2, 8, 64)
		destination.SetSlot(1, stack("stone", 5))

		moved, err := MoveSlotted(source, 0, destination, 1, stack("stone", 5), itemstack.MatchAll, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)
		assert.Equal(t, stack("stone", 10), source.SlotContents(0))

		moved, err = MoveSlotted(source, 0, destination, 1, stack("stone", 5), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 3), moved)
		assert.Equal(t, stack("stone", 7), source.SlotContents(0))
		assert.Equal(t, stack("stone", 8), destination.SlotContents(1))
	})

	t.Run("Occupied by another variant", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
		destination := newHopper("destination", 1, map[int]itemstack.Stack{0: stack("dirt", 1)})

		moved, err := MoveSlotted(source, 0, destination, 0, stack("stone", 5), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)
	})

	t.Run("Prototype mismatch", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
		destination := newHopper("destination", 1, nil)

		moved, err := MoveSlotted(source, 0, destination, 0, stack("dirt", 5), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)
	})

	t.Run("Requires slotted storages", func(t *testing.T) {
		hopper := newHopper("hopper", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
		chest := newChest("chest", 64, stack("stone", 10))

		moved, err := MoveSlotted(hopper, 0, chest, 0, stack("stone", 5), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)

		moved, err = MoveSlotted(chest, 0, hopper, 0, stack("stone", 5), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)

		assert.Equal(t, stack("stone", 10), hopper.SlotContents(0))
		assert.Equal(t, int64(10), chest.Total())
	})
}

func TestMoveSlotted_AnySourceSlot(t *testing.T) {
	t.Run("First matching slot", func(t *testing.T) {
		source := newHopper("source", 3, map[int]itemstack.Stack{1: stack("dirt", 3), 2: stack("stone", 4)})
		destination := newHopper("destination", 1, nil)

		moved, err := MoveSlotted(source, AnySlot, destination, 0, stack("stone", 2), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 2), moved)
		assert.Equal(t, stack("dirt", 3), source.SlotContents(1))
		assert.Equal(t, stack("stone", 2), source.SlotContents(2))
		assert.Equal(t, stack("stone", 2), destination.SlotContents(0))
	})

	t.Run("Slotless source", func(t *testing.T) {
		source := newChest("source", 64, itemstack.Stack{Item: "wool", Meta: "red", Count: 3}, stack("stone", 10))
		destination := newHopper("destination", 1, nil)

		moved, err := MoveSlotted(source, AnySlot, destination, 0, stack("stone", 4), itemstack.MatchItem, true)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 4), moved)
		assert.Equal(t, int64(13), source.Total())

		moved, err = MoveSlotted(source, AnySlot, destination, 0, stack("stone", 4), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 4), moved)
		assert.Equal(t, int64(9), source.Total())
		assert.Equal(t, stack("stone", 4), destination.SlotContents(0))
	})

	t.Run("Slotless destination", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 4)})
		destination := newChest("destination", 64)

		moved, err := MoveSlotted(source, AnySlot, destination, 0, stack("stone", 2), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)
	})
}

func TestMoveSlotted_AnyDestinationSlot(t *testing.T) {
	t.Run("First accepting slot", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
		destination := newHopper("destination", 2, map[int]itemstack.Stack{0: stack("dirt", 1)})

		moved, err := MoveSlotted(source, 0, destination, AnySlot, stack("stone", 10), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 10), moved)
		assert.Equal(t, stack("dirt", 1), destination.SlotContents(0))
		assert.Equal(t, stack("stone", 10), destination.SlotContents(1))
		assert.Equal(t, itemstack.Stack{}, source.SlotContents(0))
	})

	t.Run("Slotless destination", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
		destination := newChest("destination", 6)

		moved, err := MoveSlotted(source, 0, destination, AnySlot, stack("stone", 10), itemstack.MatchAll, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)

		moved, err = MoveSlotted(source, 0, destination, AnySlot, stack("stone", 10), itemstack.MatchItem, true)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 6), moved)

		moved, err = MoveSlotted(source, 0, destination, AnySlot, stack("stone", 10), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 6), moved)
		assert.Equal(t, stack("stone", 4), source.SlotContents(0))
		assert.Equal(t, int64(6), destination.Total())
	})

	t.Run("Slotless source", func(t *testing.T) {
		source := newChest("source", 64, stack("stone", 10))
		destination := newHopper("destination", 1, nil)

		moved, err := MoveSlotted(source, 0, destination, AnySlot, stack("stone", 10), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)
	})
}

func TestMoveSlotted_AnyToAny(t *testing.T) {
	source := newChest("source", 64, stack("stone", 10))
	destination := newChest("destination", 64)

	moved, err := MoveSlotted(source, AnySlot, destination, AnySlot, stack("stone", 4), itemstack.MatchItem, false)
	require.NoError(t, err)
	assert.Equal(t, stack("stone", 4), moved)
	assert.Equal(t, int64(6), source.Total())
}

func TestMoveSlottedPredicate(t *testing.T) {
	t.Run("Fixed to fixed", func(t *testing.T) {
		tests := []struct {
			name        string
			maxQuantity int64
			exact       bool
			expected    itemstack.Stack
		}{
			{name: "Exact available", maxQuantity: 8, exact: true, expected: stack("stone", 8)},
			{name: "Exact above contents", maxQuantity: 12, exact: true, expected: itemstack.Stack{}},
			{name: "Best effort above contents", maxQuantity: 12, expected: stack("stone", 10)},
			{name: "Nothing requested", maxQuantity: 0, expected: itemstack.Stack{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
				destination := newHopper("destination", 1, nil)

				moved, err := MoveSlottedPredicate(source, 0, destination, 0, isStone, tt.maxQuantity, tt.exact, true)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, moved)

				moved, err = MoveSlottedPredicate(source, 0, destination, 0, isStone, tt.maxQuantity, tt.exact, false)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, moved)
				assert.Equal(t, tt.expected, destination.SlotContents(0))
			})
		}
	})

	t.Run("Predicate rejects", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("dirt", 10)})
		destination := newHopper("destination", 1, nil)

		moved, err := MoveSlottedPredicate(source, 0, destination, 0, isStone, 5, false, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)
	})

	t.Run("Fixed source into slotless destination", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
		destination := newChest("destination", 6)

		moved, err := MoveSlottedPredicate(source, 0, destination, AnySlot, isStone, 8, true, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved, "destination would only insert 6")

		moved, err = MoveSlottedPredicate(source, 0, destination, AnySlot, isStone, 8, false, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 6), moved)
		assert.Equal(t, stack("stone", 4), source.SlotContents(0))
	})

	t.Run("Slotless source into fixed slot", func(t *testing.T) {
		source := newChest("source", 64, stack("dirt", 1), stack("stone", 3))
		destination := newHopper("destination", 1, nil)

		moved, err := MoveSlottedPredicate(source, AnySlot, destination, 0, isStone, 5, true, false)
		require.NoError(t, err)
		assert.Equal(t, itemstack.Stack{}, moved)

		moved, err = MoveSlottedPredicate(source, AnySlot, destination, 0, isStone, 5, false, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 3), moved)
		assert.Equal(t, []itemstack.Stack{stack("dirt", 1)}, source.Contents())
	})

	t.Run("Any slots", func(t *testing.T) {
		source := newChest("source", 64, stack("dirt", 1), stack("stone", 3))
		destination := newChest("destination", 64)

		moved, err := MoveSlottedPredicate(source, AnySlot, destination, AnySlot, isStone, 2, true, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 2), moved)
	})
}

func TestMoveSlotted_DestinationBreaksPromise(t *testing.T) {
	t.Run("Remainder returns to source slot", func(t *testing.T) {
		source := newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})
		destination := &lyingHopper{hopper: newHopper("liar", 1, nil), accept: 4}

		moved, err := MoveSlotted(source, 0, destination, 0, stack("stone", 10), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 4), moved)
		assert.Equal(t, stack("stone", 6), source.SlotContents(0))
		assert.Equal(t, stack("stone", 4), destination.SlotContents(0))
	})

	t.Run("Remainder lost", func(t *testing.T) {
		source := sealedHopper{hopper: newHopper("source", 1, map[int]itemstack.Stack{0: stack("stone", 10)})}
		destination := &lyingHopper{hopper: newHopper("liar", 1, nil), accept: 4}

		moved, err := MoveSlottedPredicate(source, 0, destination, 0, isStone, 10, false, false)
		require.ErrorIs(t, err, ErrProtocolViolation)
		assert.Equal(t, stack("stone", 4), moved)

		var violation *ProtocolViolationError
		require.True(t, errors.As(err, &violation))
		assert.Equal(t, "liar", violation.Destination)
		assert.Equal(t, stack("stone", 6), violation.Lost)
		assert.Equal(t, int64(6), violation.LostQuantity)
	})

	t.Run("Slotless source takes the remainder back", func(t *testing.T) {
		source := newChest("source", 64, stack("stone", 10))
		destination := &lyingHopper{hopper: newHopper("liar", 1, nil), accept: 4}

		moved, err := MoveSlotted(source, AnySlot, destination, 0, stack("stone", 10), itemstack.MatchItem, false)
		require.NoError(t, err)
		assert.Equal(t, stack("stone", 4), moved)
		assert.Equal(t, int64(6), source.Total())
	})
}

// TestSimulationMatchesCommit checks every non-iterative entry point reports
// the same quantity when simulated and when committed, and that committing
// conserves the total across both storages.
func TestSimulationMatchesCommit(t *testing.T) {
	type storages struct {
		source      ingredient.Storage[itemstack.Stack, itemstack.Condition]
		destination ingredient.Storage[itemstack.Stack, itemstack.Condition]
	}
	chests := func() storages {
		return storages{
			source:      newChest("source", 10, stack("stone", 30), itemstack.Stack{Item: "wool", Meta: "red", Count: 7}),
			destination: newChest("destination", 6),
		}
	}
	hoppers := func() storages {
		return storages{
			source:      newHopper("source", 2, map[int]itemstack.Stack{0: stack("stone", 30), 1: itemstack.Stack{Item: "wool", Meta: "red", Count: 7}}),
			destination: inventory.NewSlots("destination", itemstack.Component, 2, 9, 64),
		}
	}
	wool := func(s itemstack.Stack) bool { return s.Item == "wool" }

	tests := []struct {
		name  string
		setup func() storages
		move  func(s storages, simulate bool) (itemstack.Stack, error)
	}{
		{
			name:  "MoveIngredient",
			setup: chests,
			move: func(s storages, simulate bool) (itemstack.Stack, error) {
				return MoveIngredient(s.source, s.destination, stack("stone", 20), itemstack.MatchItem, simulate)
			},
		},
		{
			name:  "MoveMatching",
			setup: chests,
			move: func(s storages, simulate bool) (itemstack.Stack, error) {
				return MoveMatching(s.source, s.destination, stack("wool", 20), itemstack.MatchItem, simulate)
			},
		},
		{
			name:  "Move",
			setup: chests,
			move: func(s storages, simulate bool) (itemstack.Stack, error) {
				return Move(s.source, s.destination, 20, simulate)
			},
		},
		{
			name:  "MovePredicate",
			setup: chests,
			move: func(s storages, simulate bool) (itemstack.Stack, error) {
				return MovePredicate(s.source, s.destination, wool, 20, false, simulate)
			},
		},
		{
			name:  "MoveSlotted",
			setup: hoppers,
			move: func(s storages, simulate bool) (itemstack.Stack, error) {
				return MoveSlotted(s.source, AnySlot, s.destination, AnySlot, stack("stone", 20), itemstack.MatchItem, simulate)
			},
		},
		{
			name:  "MoveSlotted fixed slots",
			setup: hoppers,
			move: func(s storages, simulate bool) (itemstack.Stack, error) {
				return MoveSlotted(s.source, 0, s.destination, 1, stack("stone", 20), itemstack.MatchItem, simulate)
			},
		},
		{
			name:  "MoveSlottedPredicate",
			setup: hoppers,
			move: func(s storages, simulate bool) (itemstack.Stack, error) {
				return MoveSlottedPredicate(s.source, 1, s.destination, AnySlot, wool, 20, false, simulate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setup()
			before := total(s.source) + total(s.destination)

			simulated, err := tt.move(s, true)
			require.NoError(t, err)
			committed, err := tt.move(s, false)
			require.NoError(t, err)

			assert.False(t, itemstack.Component.Matcher.IsEmpty(committed))
			assert.Equal(t, simulated, committed)
			assert.Equal(t, before, total(s.source)+total(s.destination))
			assert.Equal(t, committed.Count, total(s.destination))
		})
	}
}
