package semgraph

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotInitialized is returned by every operation on a store whose
// collections have not been created yet.
var ErrNotInitialized = errors.New("store not initialized")

type NotFoundError struct {
	What string
	ID   ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %d", e.What, e.ID)
}

// DanglingReferenceError means a create or assert named a record that does
// not exist in the collection it was supposed to be in.
type DanglingReferenceError struct {
	Field string
	What  string
	ID    ID
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling %s reference: no %s with id %d", e.Field, e.What, e.ID)
}

type InvalidArgumentError struct {
	Field string
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ReferencedError blocks a delete: the record is still named by another one.
type ReferencedError struct {
	What   string
	ID     ID
	ByWhat string
	ByID   ID
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("%s %d is still referenced by %s %d", e.What, e.ID, e.ByWhat, e.ByID)
}

func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

func IsDanglingReference(err error) bool {
	_, ok := errors.Cause(err).(*DanglingReferenceError)
	return ok
}

func IsInvalidArgument(err error) bool {
	_, ok := errors.Cause(err).(*InvalidArgumentError)
	return ok
}

func IsReferenced(err error) bool {
	_, ok := errors.Cause(err).(*ReferencedError)
	return ok
}
