package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownID indicates a task or grid location id that is not present in
// the static tables. Lookup failures wrap this sentinel with the offending
// id so callers can match it with errors.Is().
const ErrUnknownID = constError("unknown id")
