package nav

import "errors"

var (
	// ErrNoFocus is returned when a node is navigated before any focus point
	// was initialized.
	ErrNoFocus = errors.New("layout has no focus point")

	// ErrFocusNotElement is returned when the focus point addresses an empty
	// cell or a Sublayout where an Element is required.
	ErrFocusNotElement = errors.New("focus point does not address an element")

	// ErrUnknownLayout is returned when a child layout identifier is not
	// registered with its parent.
	ErrUnknownLayout = errors.New("unknown layout identifier")

	// ErrDanglingReference is returned when a node index or child index entry
	// does not point where the tree structure says it should.
	ErrDanglingReference = errors.New("dangling layout reference")

	// ErrNotGrowable is returned by [Tree.Insert] for nodes without a grow
	// configuration.
	ErrNotGrowable = errors.New("layout is not growable")

	// ErrMixedLayout is returned by the builder when a node receives both
	// fixed elements and a grow configuration.
	ErrMixedLayout = errors.New("layout cannot mix fixed elements with a grow configuration")

	// ErrInvalidGrow is returned by the builder for grow configurations whose
	// item size is not positive or does not fit across the growth band.
	ErrInvalidGrow = errors.New("invalid grow configuration")

	// ErrInvalidInsert is returned by [Tree.Insert] when the computed
	// insertion rect cannot be placed.
	ErrInvalidInsert = errors.New("inconsistent insertion rect")

	// ErrDuplicateLayout is returned by the builder when two siblings share a
	// layout identifier.
	ErrDuplicateLayout = errors.New("duplicate layout identifier")

	// ErrUnknownFocus is returned when no element carries the requested focus
	// identifier.
	ErrUnknownFocus = errors.New("unknown focus identifier")

	// ErrInvalidDirective is returned for directives that cannot be parsed or
	// dispatched.
	ErrInvalidDirective = errors.New("invalid directive")
)

// IsInvariantViolation reports whether err, returned from a navigation call,
// means the tree itself is inconsistent. Such errors are program defects
// rather than recoverable conditions.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrNoFocus) ||
		errors.Is(err, ErrFocusNotElement) ||
		errors.Is(err, ErrDanglingReference) ||
		errors.Is(err, ErrUnknownLayout)
}
