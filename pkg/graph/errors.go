package graph

import (
	"fmt"
	"strings"
)

// TraitCardinalityError reports that the node table does not contain exactly
// one trait node (Type=process).
type TraitCardinalityError struct {
	Count  int
	Labels []string
}

func (e *TraitCardinalityError) Error() string {
	if e.Count == 0 {
		return "expected exactly one process node, found none"
	}
	return fmt.Sprintf("expected exactly one process node, found %d: %s", e.Count, strings.Join(e.Labels, ", "))
}

// ClassConsistencyError reports non-process nodes whose Class is not
// macromolecule. Process nodes never trigger this: their class is coerced to
// biological_activity instead.
type ClassConsistencyError struct {
	Labels []string
}

func (e *ClassConsistencyError) Error() string {
	return fmt.Sprintf("non-process nodes must have class macromolecule: %s", strings.Join(e.Labels, ", "))
}

// DanglingReferenceError reports every edge endpoint label that does not name
// a node. Both sets are complete and sorted so a curator can fix the table in
// one pass.
type DanglingReferenceError struct {
	UnknownSources []string
	UnknownTargets []string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("edges reference unknown nodes: sources=[%s] targets=[%s]",
		strings.Join(e.UnknownSources, ", "), strings.Join(e.UnknownTargets, ", "))
}
