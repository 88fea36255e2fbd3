package session

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a Session or Engine operation wraps
// one of these, so callers can branch with errors.Is. None of them leave the
// session modified.
var (
	// ErrInvalidArgument is returned for an empty or unknown answer choice,
	// a non-positive session size, or an empty bank.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an operation is not allowed in the
	// session's current phase.
	ErrInvalidState = errors.New("invalid state")

	// ErrNoSelection is returned when an answer is submitted with nothing selected.
	ErrNoSelection = fmt.Errorf("%w: no selection made", ErrInvalidArgument)
)

// NoSelectionMessage is what adapters show the learner for ErrNoSelection.
const NoSelectionMessage = "Please select an answer before submitting."
