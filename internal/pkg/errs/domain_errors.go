package errs

// Sentinel errors shared by the stores, the router and the HTTP layer.
// Wrap them with context (Wrapf) rather than returning them bare.
var (
	ErrNotFound     = New("not found")
	ErrDuplicateKey = New("duplicate key")
	ErrConflict     = New("conflict")
	ErrValidation   = New("validation failed")
	ErrStorage      = New("storage failure")
)
