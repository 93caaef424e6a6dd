// Package tabular loads and normalizes the two CSV tables (nodes, edges) that
// describe a causal regulatory network. Loading only checks column presence;
// cell-level validation happens in pkg/graph.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Required node table columns, in canonical order.
var NodeColumns = []string{"Nodes", "Type", "Class", "compartmentRef"}

// Required edge table columns, in canonical order.
var EdgeColumns = []string{"source", "target", "Class", "Confidence", "Papers", "Notes"}

// columnAliases maps a canonical column name to the alternate spellings that
// are accepted for it. Consulted once when the header row is read. The edges
// table historically shipped with a descriptive Notes header.
var columnAliases = map[string][]string{
	"Notes": {"Notes short explanation of edge"},
}

// SchemaError reports a structural problem with an input table: a required
// column that is missing, or (after loading) cell values outside their
// enumeration. Values is nil when the column itself is absent.
type SchemaError struct {
	Table  string
	Column string
	Values []string
}

func (e *SchemaError) Error() string {
	if len(e.Values) == 0 {
		return fmt.Sprintf("%s table: missing required column %q", e.Table, e.Column)
	}
	return fmt.Sprintf("%s table: unsupported %s values: %s", e.Table, e.Column, strings.Join(e.Values, ", "))
}

// NodeRow is one raw record from the nodes table. Cells are kept verbatim;
// enumeration checks are deferred to validation.
type NodeRow struct {
	Label       string
	Type        string
	Class       string
	Compartment string
}

// EdgeRow is one raw record from the edges table.
type EdgeRow struct {
	Source     string
	Target     string
	Class      string
	Confidence string
	Papers     string
	Notes      string
}

// LoadNodes reads the nodes table from r. Row order is preserved as input
// order; layout downstream depends on it.
func LoadNodes(r io.Reader) ([]NodeRow, error) {
	records, index, err := readTable(r, "nodes", NodeColumns)
	if err != nil {
		return nil, err
	}
	rows := make([]NodeRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, NodeRow{
			Label:       rec[index["Nodes"]],
			Type:        rec[index["Type"]],
			Class:       rec[index["Class"]],
			Compartment: rec[index["compartmentRef"]],
		})
	}
	return rows, nil
}

// LoadEdges reads the edges table from r, preserving row order.
func LoadEdges(r io.Reader) ([]EdgeRow, error) {
	records, index, err := readTable(r, "edges", EdgeColumns)
	if err != nil {
		return nil, err
	}
	rows := make([]EdgeRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, EdgeRow{
			Source:     rec[index["source"]],
			Target:     rec[index["target"]],
			Class:      rec[index["Class"]],
			Confidence: rec[index["Confidence"]],
			Papers:     rec[index["Papers"]],
			Notes:      rec[index["Notes"]],
		})
	}
	return rows, nil
}

// LoadNodesFile opens and reads a nodes CSV from disk.
func LoadNodesFile(path string) ([]NodeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open nodes table: %w", err)
	}
	defer f.Close()
	return LoadNodes(f)
}

// LoadEdgesFile opens and reads an edges CSV from disk.
func LoadEdgesFile(path string) ([]EdgeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edges table: %w", err)
	}
	defer f.Close()
	return LoadEdges(f)
}

// readTable reads all records and resolves the required columns against the
// header row, honoring the alias table. Returns the data records and a
// canonical-name -> column-position map.
func readTable(r io.Reader, table string, required []string) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s table header: %w", table, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	position := make(map[string]int, len(header))
	for i, name := range header {
		position[strings.TrimSpace(name)] = i
	}

	index := make(map[string]int, len(required))
	for _, col := range required {
		i, ok := position[col]
		if !ok {
			for _, alias := range columnAliases[col] {
				if j, found := position[alias]; found {
					i, ok = j, true
					break
				}
			}
		}
		if !ok {
			return nil, nil, &SchemaError{Table: table, Column: col}
		}
		index[col] = i
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s table: %w", table, err)
	}
	return records, index, nil
}
