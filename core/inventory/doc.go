// Package inventory provides in-memory implementations of ingredient.Storage.
//
// Collection is a slotless storage: equal-ignoring-quantity instances are merged
// and the whole collection shares one capacity. Slots is a slotted storage with
// a fixed number of slots and a per-slot capacity.
//
// Both enforce a per-operation rate limit: a single Insert or Extract call never
// moves more than the limit, regardless of free capacity or available content.
// A rate limit of zero blocks the storage entirely.
//
// Neither type is safe for concurrent use; callers serialize access around each
// transfer.
package inventory
