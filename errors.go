package hpo

import (
	"errors"
	"fmt"

	"github.com/hpoeval/hpo/model"
)

// Sentinel error kinds. Use errors.Is against these; the typed errors below
// carry structured detail and unwrap to one of these.
var (
	ErrDuplicateTerm = errors.New("hpo: duplicate term id")
	ErrUnknownParent = errors.New("hpo: is_a target does not exist")
	ErrCycle         = errors.New("hpo: parent graph is not a DAG")
	ErrUnknownTerm   = errors.New("hpo: annotation references an unknown term")
	ErrObsoleteTerm  = errors.New("hpo: annotation references an obsolete term")
	ErrBuilderState  = errors.New("hpo: operation invalid in the current builder state")

	// ErrInvalidIDFormat is the same sentinel as model.ErrInvalidIDFormat;
	// errors returned by ParseTermID wrap it.
	ErrInvalidIDFormat = model.ErrInvalidIDFormat
)

// DuplicateTermError reports that id was inserted twice during collection.
type DuplicateTermError struct {
	ID model.TermID
}

func (e *DuplicateTermError) Error() string {
	return fmt.Sprintf("hpo: duplicate term %s", e.ID)
}

func (e *DuplicateTermError) Unwrap() error { return ErrDuplicateTerm }

// UnknownParentError reports that Parent (named on Term) has no matching
// term record after ingestion.
type UnknownParentError struct {
	Term   model.TermID
	Parent model.TermID
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("hpo: term %s references unknown parent %s", e.Term, e.Parent)
}

func (e *UnknownParentError) Unwrap() error { return ErrUnknownParent }

// BuilderStateError reports an operation invoked from the wrong lifecycle
// state (see the Empty -> Collecting -> Frozen state machine in builder.go).
type BuilderStateError struct {
	Op       string
	Have     BuilderPhase
	Expected BuilderPhase
}

func (e *BuilderStateError) Error() string {
	return fmt.Sprintf("hpo: %s requires state %s, have %s", e.Op, e.Expected, e.Have)
}

func (e *BuilderStateError) Unwrap() error { return ErrBuilderState }
