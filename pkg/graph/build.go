// Package graph validates normalized table rows and constructs the immutable
// typed graph for a run. Validation is all-or-nothing: no graph is returned
// unless every structural invariant holds.
package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/soundprediction/traitnet/pkg/tabular"
	"github.com/soundprediction/traitnet/pkg/types"
)

var validate = validator.New()

// Maps validator struct fields back to the CSV column a curator has to fix.
var (
	nodeColumnForField = map[string]string{
		"Label": "Nodes",
		"Type":  "Type",
		"Class": "Class",
	}
	edgeColumnForField = map[string]string{
		"Source":     "source",
		"Target":     "target",
		"Class":      "Class",
		"Confidence": "Confidence",
	}
)

// Build validates normalized node and edge rows and constructs the graph.
//
// Checks run in order: schema enumerations (both tables), duplicate labels,
// trait cardinality, class consistency, referential integrity. A node with
// Type=process has its Class coerced to biological_activity rather than
// rejected; every other inconsistency is fatal. The logic-arc pairing
// convention is deliberately not enforced.
func Build(nodeRows []tabular.NodeRow, edgeRows []tabular.EdgeRow) (*types.Graph, error) {
	nodes := make([]types.Node, 0, len(nodeRows))
	for _, r := range nodeRows {
		n := types.Node{
			Label:       r.Label,
			Type:        types.NodeType(r.Type),
			Class:       types.NodeClass(r.Class),
			Compartment: r.Compartment,
		}
		// Authoritative trait-node rule: the process node is always a
		// biological activity, whatever the table says.
		if n.IsTrait() {
			n.Class = types.ClassBiologicalActivity
		}
		nodes = append(nodes, n)
	}

	badByColumn := map[string]map[string]struct{}{}
	for i := range nodes {
		collectFieldErrors(validate.Struct(&nodes[i]), nodeColumnForField, badByColumn)
	}
	if err := schemaError("nodes", []string{"Nodes", "Type", "Class"}, badByColumn); err != nil {
		return nil, err
	}

	if dups := duplicateLabels(nodes); len(dups) > 0 {
		return nil, &tabular.SchemaError{Table: "nodes", Column: "Nodes", Values: dups}
	}

	var traitLabels []string
	for _, n := range nodes {
		if n.IsTrait() {
			traitLabels = append(traitLabels, n.Label)
		}
	}
	if len(traitLabels) != 1 {
		return nil, &TraitCardinalityError{Count: len(traitLabels), Labels: traitLabels}
	}

	var inconsistent []string
	for _, n := range nodes {
		if !n.IsTrait() && n.Class != types.ClassMacromolecule {
			inconsistent = append(inconsistent, n.Label)
		}
	}
	if len(inconsistent) > 0 {
		return nil, &ClassConsistencyError{Labels: inconsistent}
	}

	edges := make([]types.Edge, 0, len(edgeRows))
	for _, r := range edgeRows {
		edges = append(edges, types.Edge{
			Source:     r.Source,
			Target:     r.Target,
			Class:      types.EdgeClass(r.Class),
			Confidence: types.Confidence(r.Confidence),
			Papers:     splitPapers(r.Papers),
			Notes:      r.Notes,
		})
	}

	badByColumn = map[string]map[string]struct{}{}
	for i := range edges {
		collectFieldErrors(validate.Struct(&edges[i]), edgeColumnForField, badByColumn)
	}
	if err := schemaError("edges", []string{"source", "target", "Class", "Confidence"}, badByColumn); err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		known[n.Label] = struct{}{}
	}
	unknownSources := map[string]struct{}{}
	unknownTargets := map[string]struct{}{}
	for _, e := range edges {
		if _, ok := known[e.Source]; !ok {
			unknownSources[e.Source] = struct{}{}
		}
		if _, ok := known[e.Target]; !ok {
			unknownTargets[e.Target] = struct{}{}
		}
	}
	if len(unknownSources) > 0 || len(unknownTargets) > 0 {
		return nil, &DanglingReferenceError{
			UnknownSources: sortedKeys(unknownSources),
			UnknownTargets: sortedKeys(unknownTargets),
		}
	}

	return types.NewGraph(nodes, edges), nil
}

// collectFieldErrors folds one struct validation result into the per-column
// offending-value sets.
func collectFieldErrors(err error, columnForField map[string]string, badByColumn map[string]map[string]struct{}) {
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return
	}
	for _, fe := range fieldErrs {
		col, ok := columnForField[fe.StructField()]
		if !ok {
			continue
		}
		val := fmt.Sprintf("%v", fe.Value())
		if badByColumn[col] == nil {
			badByColumn[col] = map[string]struct{}{}
		}
		badByColumn[col][val] = struct{}{}
	}
}

// schemaError returns a SchemaError for the first column (in canonical order)
// that accumulated offending values, carrying the complete sorted value set.
func schemaError(table string, columns []string, badByColumn map[string]map[string]struct{}) error {
	for _, col := range columns {
		if vals := badByColumn[col]; len(vals) > 0 {
			return &tabular.SchemaError{Table: table, Column: col, Values: sortedKeys(vals)}
		}
	}
	return nil
}

func duplicateLabels(nodes []types.Node) []string {
	seen := make(map[string]int, len(nodes))
	dupSet := map[string]struct{}{}
	for _, n := range nodes {
		seen[n.Label]++
		if seen[n.Label] == 2 {
			dupSet[n.Label] = struct{}{}
		}
	}
	return sortedKeys(dupSet)
}

// splitPapers parses the comma-separated citation cell, preserving order and
// dropping empty entries.
func splitPapers(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	papers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			papers = append(papers, p)
		}
	}
	return papers
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
