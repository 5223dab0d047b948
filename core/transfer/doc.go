// Package transfer moves ingredients between storages.
//
// Every entry point follows the same two-phase protocol: the move is first
// simulated against both storages, a quantity that both sides agree on is
// derived, and only then are the real extract and insert performed. A
// destination that accepts less during the real insert than it promised
// during simulation has the difference returned to the source; when even that
// fails the call reports a *ProtocolViolationError.
//
// Entry points:
//
//   - MoveIngredient moves one run selected by prototype and condition.
//   - MoveMatching tries every contained run matching a prototype until one moves.
//   - Move moves up to a maximum quantity of anything.
//   - MovePredicate moves the first run accepted by a predicate.
//   - MoveIterative and MoveIterativeMatching repeat a move until the requested
//     quantity is reached or nothing moves. Simulated calls run one round only,
//     so their result is a lower bound of what a real call moves.
//   - MoveSlotted and MoveSlottedPredicate pin the source slot, the destination
//     slot, both or neither. Pass AnySlot to loop over all slots.
//
// The package holds no state and takes no locks. Callers serialize access to
// the storages involved for the duration of a call.
package transfer
