package domain

import "fmt"

// DecodeError reports input that could not be interpreted as an image.
// No partial tensor exists when it is returned.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding image: %s: %v", e.Reason, e.Err)
	}
	return "decoding image: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ContractError reports a classifier collaborator returning data outside
// its contract. Bad data must never propagate silently.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return "classifier contract violation: " + e.Reason
}
