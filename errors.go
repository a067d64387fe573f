package arabdict

import "errors"

var (
	// ErrInvalidRootRadicals is returned for roots that do not have 3 or 4
	// radicals from the Arabic letter inventory.
	ErrInvalidRootRadicals = errors.New("invalid root radicals")
	// ErrInvalidStem1Context is returned when a Form I context is missing,
	// illegal for the root, or given for a derived stem.
	ErrInvalidStem1Context = errors.New("invalid stem 1 context")
	// ErrUnsupportedParameterCombination is returned for parameter tuples the
	// dialect does not define.
	ErrUnsupportedParameterCombination = errors.New("unsupported parameter combination")
	// ErrMalformedWord is returned by the codec for text that is not a
	// vocalized Arabic word.
	ErrMalformedWord = errors.New("malformed word")
	// ErrUnknownDialect is returned for dialect identifiers with no table.
	ErrUnknownDialect = errors.New("unknown dialect")
)
