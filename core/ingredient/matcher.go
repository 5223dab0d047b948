package ingredient

// Matcher is the algebra over instances of type T and match conditions of type M.
// Implementations must be stateless and safe for concurrent use.
type Matcher[T any, M any] interface {
	// Quantity returns the quantity of the instance. Never negative.
	Quantity(instance T) int64

	// WithQuantity returns a copy of the instance with the given quantity.
	// A quantity of zero yields the empty instance.
	WithQuantity(instance T, quantity int64) T

	// IsEmpty reports whether the instance is the empty instance.
	IsEmpty(instance T) bool

	// Empty returns the distinguished empty instance.
	Empty() T

	// Matches reports whether a and b are equivalent under the condition.
	Matches(a, b T, condition M) bool

	// ExactMatchCondition returns the condition that compares every facet,
	// quantity included.
	ExactMatchCondition() M

	// ExactMatchNoQuantityCondition returns the condition that compares every
	// facet except quantity.
	ExactMatchNoQuantityCondition() M

	// WithoutCondition returns condition with the facets of remove cleared.
	WithoutCondition(condition, remove M) M

	// HasCondition reports whether condition includes every facet of test.
	HasCondition(condition, test M) bool
}

// Component describes one kind of ingredient: its matcher and the condition
// facet that makes matching quantity-sensitive.
type Component[T any, M any] struct {
	// Name identifies the component (e.g. "itemstack", "amount").
	Name string

	// Matcher is the value algebra for this component.
	Matcher Matcher[T, M]

	// QuantityCondition is the condition facet that compares quantities.
	QuantityCondition M
}

// NewComponent creates a component descriptor.
func NewComponent[T any, M any](name string, matcher Matcher[T, M], quantityCondition M) *Component[T, M] {
	return &Component[T, M]{
		Name:              name,
		Matcher:           matcher,
		QuantityCondition: quantityCondition,
	}
}

// IgnoringQuantity returns condition without its quantity facet.
func (c *Component[T, M]) IgnoringQuantity(condition M) M {
	return c.Matcher.WithoutCondition(condition, c.QuantityCondition)
}

// MatchesQuantity reports whether condition compares quantities.
func (c *Component[T, M]) MatchesQuantity(condition M) bool {
	return c.Matcher.HasCondition(condition, c.QuantityCondition)
}
