// Package ingredient defines the value algebra and storage contracts that the
// transfer engine operates on.
//
// An ingredient is an opaque, quantified value (an item stack, an amount of
// fluid, a unit of energy). The package never inspects instances directly:
// every question about them is answered by a Matcher supplied through a
// Component descriptor.
//
// # Matcher
//
// A Matcher[T, M] answers quantity questions (Quantity, WithQuantity, IsEmpty,
// Empty) and equivalence questions (Matches) for instances of type T under a
// match condition of type M. Conditions compose: WithoutCondition removes a
// facet, HasCondition tests for one. The Component's QuantityCondition is the
// facet that makes a match sensitive to quantity.
//
// # Storage
//
// A Storage holds instances and follows a two-phase protocol: every Insert and
// Extract accepts a simulate flag, and a simulated call must not mutate state.
// Insert returns the remainder that was not accepted; Extract returns what was
// (or would be) removed.
//
// Storages that partition their contents into addressable slots additionally
// implement Slotted. Callers probe for the capability with AsSlotted instead of
// asserting on concrete types.
package ingredient
