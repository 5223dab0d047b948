package transfer

import (
	"ingredient-manager/core/ingredient/itemstack"
	engine "ingredient-manager/core/transfer"
	"ingredient-manager/feature/containers"
)

// run dispatches a validated request to the transfer engine.
func run(source, destination containers.Inventory, req Request) (itemstack.Stack, error) {
	if req.Slotted() {
		sourceSlot, destinationSlot := slot(req.SourceSlot), slot(req.DestinationSlot)
		if req.Mode == ModePredicate {
			return engine.MoveSlottedPredicate(source, sourceSlot, destination, destinationSlot, req.Filter.Predicate(), req.Count, req.Exact, req.Simulate)
		}
		return engine.MoveSlotted(source, sourceSlot, destination, destinationSlot, req.Prototype(), req.Condition(), req.Simulate)
	}

	switch req.Mode {
	case ModeSingle:
		return engine.MoveIngredient(source, destination, req.Prototype(), req.Condition(), req.Simulate)
	case ModeMatching:
		return engine.MoveMatching(source, destination, req.Prototype(), req.Condition(), req.Simulate)
	case ModeIterative:
		return engine.MoveIterative(source, destination, req.Count, req.Simulate)
	case ModeIterativeMatching:
		return engine.MoveIterativeMatching(source, destination, req.Prototype(), req.Condition(), req.Simulate)
	case ModePredicate:
		return engine.MovePredicate(source, destination, req.Filter.Predicate(), req.Count, req.Exact, req.Simulate)
	default:
		return engine.Move(source, destination, req.Count, req.Simulate)
	}
}

func slot(index *int) int {
	if index == nil {
		return engine.AnySlot
	}
	return *index
}
