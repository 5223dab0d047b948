// Package transfer runs ingredient transfers between persisted containers.
//
// A Request names a source and a destination container and a Mode that picks
// the engine entry point:
//
//   - any: move up to count of whatever comes out first.
//   - single: move one prototype (item, meta, count) from the first matching variant.
//   - matching: like single, but try every matching variant.
//   - iterative / iterative_matching: repeat until count is moved or nothing moves.
//   - predicate: move the first stack accepted by the filter.
//
// Giving source_slot or destination_slot routes single and matching to the
// slot-explicit prototype move and predicate to the slot-explicit predicate
// move. An omitted slot means any slot.
//
// Transfers lock both containers (in name order), run inside one database
// transaction and are journaled to the object store once committed. A storage
// protocol violation rolls the transaction back and is reported as 409.
//
// # HTTP Endpoints
//
//   - POST /transfers : Runs or simulates a transfer.
//   - GET /transfers/journal : Lists recent committed transfers (?limit=N).
package transfer
