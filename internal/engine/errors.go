package engine

import "fmt"

// NotFoundError is returned when an operation references an entity that
// does not exist. Callers treat it as a safe rejection, not a crash.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// AlreadyCapturedError guards capture idempotence: a monster's captured
// flag transitions false to true at most once.
type AlreadyCapturedError struct {
	ID string
}

func (e AlreadyCapturedError) Error() string {
	return fmt.Sprintf("monster %q is already captured", e.ID)
}
