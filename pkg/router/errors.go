package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the two failure classes.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)

// InvalidArgumentError reports malformed input to a public entry point:
// a bad route spec, an uncompilable pattern, a nil subscriber, or an empty
// navigation path.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("router: invalid argument: %s", e.Reason)
}

// Is reports a match against ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotFoundError reports a named-route lookup miss.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("router: no route named %q", e.Name)
}

// Is reports a match against ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
