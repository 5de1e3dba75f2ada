package match

import "fmt"

// ErrBackendUnavailable indicates an embedding backend could not be built.
// It is non-fatal: the caller downgrades to the lexical strategy.
type ErrBackendUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrBackendUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s embedding backend unavailable: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s embedding backend unavailable", e.Provider)
}

func (e *ErrBackendUnavailable) Unwrap() error { return e.Err }

// ErrEncodeFailed indicates a single embedding call failed. The semantic
// scorer absorbs it and scores that comparison lexically instead.
type ErrEncodeFailed struct {
	Provider string
	Err      error
}

func (e *ErrEncodeFailed) Error() string {
	return fmt.Sprintf("%s embedding call failed: %v", e.Provider, e.Err)
}

func (e *ErrEncodeFailed) Unwrap() error { return e.Err }
