package transfer

import (
	"errors"
	"fmt"
	"slices"

	"ingredient-manager/core/ingredient"
	"ingredient-manager/core/ingredient/itemstack"
)

// ErrInvalidRequest is returned for malformed transfer requests.
var ErrInvalidRequest = errors.New("invalid transfer request")

// Mode selects the transfer strategy.
type Mode string

const (
	// ModeAny moves up to Count of whatever the source yields first.
	ModeAny Mode = "any"
	// ModeSingle moves the prototype from the first matching variant, all or nothing when Exact.
	ModeSingle Mode = "single"
	// ModeMatching tries every matching variant until one moves.
	ModeMatching Mode = "matching"
	// ModeIterative repeats ModeAny until Count is moved or nothing moves.
	ModeIterative Mode = "iterative"
	// ModeIterativeMatching repeats a prototype move until Count is moved or nothing moves.
	ModeIterativeMatching Mode = "iterative_matching"
	// ModePredicate moves the first stack accepted by Filter.
	ModePredicate Mode = "predicate"
)

var modes = []Mode{ModeAny, ModeSingle, ModeMatching, ModeIterative, ModeIterativeMatching, ModePredicate}

// Filter selects stacks for predicate transfers. Empty fields match everything.
type Filter struct {
	Items []string `json:"items,omitempty"`
	Meta  string   `json:"meta,omitempty"`
}

// Predicate returns the filter as an ingredient predicate.
func (f Filter) Predicate() ingredient.Predicate[itemstack.Stack] {
	return func(s itemstack.Stack) bool {
		if len(f.Items) > 0 && !slices.Contains(f.Items, s.Item) {
			return false
		}
		return f.Meta == "" || s.Meta == f.Meta
	}
}

// Request describes one transfer between two persisted containers.
type Request struct {
	Source          string `json:"source"`
	Destination     string `json:"destination"`
	SourceSlot      *int   `json:"source_slot,omitempty"`
	DestinationSlot *int   `json:"destination_slot,omitempty"`
	Mode            Mode   `json:"mode"`
	Item            string `json:"item,omitempty"`
	Meta            string `json:"meta,omitempty"`
	Count           int64  `json:"count"`
	Exact           bool   `json:"exact"`
	Filter          Filter `json:"filter"`
	Simulate        bool   `json:"simulate"`

	// RayID tags the journal record. It is set by the HTTP layer.
	RayID string `json:"-"`
}

// Result is the outcome of a transfer.
type Result struct {
	Moved     itemstack.Stack `json:"moved"`
	Simulated bool            `json:"simulated"`
	JournalID string          `json:"journal_id,omitempty"`
}

// Slotted reports whether the request addresses slots explicitly.
func (r Request) Slotted() bool {
	return r.SourceSlot != nil || r.DestinationSlot != nil
}

// Prototype returns the stack the prototype modes match against.
func (r Request) Prototype() itemstack.Stack {
	return itemstack.Stack{Item: r.Item, Meta: r.Meta, Count: r.Count}
}

// Condition returns the match condition for the prototype modes. Exact
// requests also compare the count.
func (r Request) Condition() itemstack.Condition {
	if r.Exact {
		return itemstack.MatchAll
	}
	return itemstack.MatchStack
}

// Normalize fills in the default mode.
func (r *Request) Normalize() {
	if r.Mode == "" {
		r.Mode = ModeAny
	}
}

// Validate checks the request for consistency.
func (r Request) Validate() error {
	switch {
	case r.Source == "" || r.Destination == "":
		return fmt.Errorf("%w: source and destination are required", ErrInvalidRequest)
	case r.Source == r.Destination:
		return fmt.Errorf("%w: source and destination must differ", ErrInvalidRequest)
	case !slices.Contains(modes, r.Mode):
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, r.Mode)
	case r.Count <= 0:
		return fmt.Errorf("%w: count must be positive", ErrInvalidRequest)
	}

	switch r.Mode {
	case ModeSingle, ModeMatching, ModeIterativeMatching:
		if r.Item == "" {
			return fmt.Errorf("%w: mode %s needs an item", ErrInvalidRequest, r.Mode)
		}
	}

	if r.Slotted() {
		switch r.Mode {
		case ModeSingle, ModeMatching, ModePredicate:
		default:
			return fmt.Errorf("%w: mode %s does not address slots", ErrInvalidRequest, r.Mode)
		}
		if (r.SourceSlot != nil && *r.SourceSlot < 0) || (r.DestinationSlot != nil && *r.DestinationSlot < 0) {
			return fmt.Errorf("%w: slots must not be negative", ErrInvalidRequest)
		}
	}
	return nil
}
