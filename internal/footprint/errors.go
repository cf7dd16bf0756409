package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidQuantity indicates a negative, NaN, or infinite task quantity.
// Calculation errors wrap this sentinel with the offending task id so
// callers can match it with errors.Is().
const ErrInvalidQuantity = constError("invalid quantity")
