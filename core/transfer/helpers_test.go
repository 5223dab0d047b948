package transfer

import (
	"testing"

	"ingredient-manager/core/ingredient"
	"ingredient-manager/core/ingredient/amount"
	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/inventory"

	"github.com/stretchr/testify/require"
)

type tank = inventory.Collection[int64, bool]

// newTank returns a collection with capacity 100 and the given rate limit.
func newTank(name string, rateLimit int64) *tank {
	return inventory.NewCollection(name, amount.Component, 100, rateLimit)
}

// fill inserts quantity through the rate limit.
func fill(t *testing.T, storage ingredient.Storage[int64, bool], quantity int64) {
	t.Helper()
	for range 100 {
		if quantity == 0 {
			return
		}
		quantity = storage.Insert(quantity, false)
	}
	require.Zero(t, quantity, "storage did not take everything")
}

func total[T any, M any](storage ingredient.Storage[T, M]) int64 {
	var sum int64
	for instance := range storage.All() {
		sum += storage.Component().Matcher.Quantity(instance)
	}
	return sum
}

func stack(item string, count int64) itemstack.Stack {
	return itemstack.Stack{Item: item, Count: count}
}

func newHopper(name string, slots int, contents map[int]itemstack.Stack) *inventory.Slots[itemstack.Stack, itemstack.Condition] {
	s := inventory.NewSlots(name, itemstack.Component, slots, 64, 64)
	for slot, instance := range contents {
		s.SetSlot(slot, instance)
	}
	return s
}

func newChest(name string, rateLimit int64, contents ...itemstack.Stack) *inventory.Collection[itemstack.Stack, itemstack.Condition] {
	c := inventory.NewCollection(name, itemstack.Component, 1000, rateLimit)
	for _, instance := range contents {
		c.Put(instance)
	}
	return c
}

// lyingTank accepts at most accept per real insert while simulating truthfully.
type lyingTank struct {
	*tank
	accept int64
}

func (l *lyingTank) Insert(instance int64, simulate bool) int64 {
	if simulate {
		return l.tank.Insert(instance, true)
	}
	part := min(instance, l.accept)
	return instance - part + l.tank.Insert(part, false)
}

// sealedTank never takes anything back.
type sealedTank struct {
	*tank
}

func (sealedTank) Insert(instance int64, _ bool) int64 {
	return instance
}

type hopper = inventory.Slots[itemstack.Stack, itemstack.Condition]

// lyingHopper accepts at most accept per real slot insert.
type lyingHopper struct {
	*hopper
	accept int64
}

func (l *lyingHopper) InsertSlot(slot int, instance itemstack.Stack, simulate bool) itemstack.Stack {
	if simulate {
		return l.hopper.InsertSlot(slot, instance, true)
	}
	part := min(instance.Count, l.accept)
	rest := l.hopper.InsertSlot(slot, itemstack.Component.Matcher.WithQuantity(instance, part), false)
	return itemstack.Component.Matcher.WithQuantity(instance, instance.Count-part+rest.Count)
}

// sealedHopper refuses every slot insert.
type sealedHopper struct {
	*hopper
}

func (sealedHopper) InsertSlot(_ int, instance itemstack.Stack, _ bool) itemstack.Stack {
	return instance
}
