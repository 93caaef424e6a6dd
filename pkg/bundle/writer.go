// Package bundle persists the validated, cleaned tables together with a JSON
// lineage record. It only ever runs on a graph that passed validation; any
// storage failure is surfaced to the caller, never swallowed.
package bundle

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"

	"github.com/soundprediction/traitnet/pkg/sbgn"
	"github.com/soundprediction/traitnet/pkg/tabular"
	"github.com/soundprediction/traitnet/pkg/types"
)

// idMapSampleSize bounds the identifier-map sample kept in the metadata
// record for lineage/debugging.
const idMapSampleSize = 10

// Metadata is the lineage record written alongside the cleaned tables.
type Metadata struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	NNodes      int               `json:"n_nodes"`
	NEdges      int               `json:"n_edges"`
	IDMapSample map[string]string `json:"id_map_sample"`
}

// ParquetNode mirrors one cleaned node row in the optional Parquet output.
type ParquetNode struct {
	Label       string `parquet:"label"`
	Type        string `parquet:"type"`
	Class       string `parquet:"class"`
	Compartment string `parquet:"compartment"`
}

// ParquetEdge mirrors one cleaned edge row in the optional Parquet output.
type ParquetEdge struct {
	Source     string `parquet:"source"`
	Target     string `parquet:"target"`
	Class      string `parquet:"class"`
	Confidence string `parquet:"confidence"`
	Papers     string `parquet:"papers"`
	Notes      string `parquet:"notes"`
}

// Writer persists cleaned bundles into an output directory.
type Writer struct {
	outDir string

	// WriteParquet additionally mirrors both tables as Parquet files.
	WriteParquet bool
}

// NewWriter creates a bundle writer, creating the output directory if needed.
func NewWriter(outDir string) (*Writer, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create bundle directory: %w", err)
	}
	return &Writer{outDir: outDir}, nil
}

// Write persists the cleaned node and edge tables plus bundle.meta.json and
// returns the metadata record. The identifier-map sample holds the first 10
// nodes in input order.
func (w *Writer) Write(g *types.Graph) (*Metadata, error) {
	if err := w.writeNodesCSV(g); err != nil {
		return nil, err
	}
	if err := w.writeEdgesCSV(g); err != nil {
		return nil, err
	}
	if w.WriteParquet {
		if err := w.writeParquet(g); err != nil {
			return nil, err
		}
	}

	sample := make(map[string]string, idMapSampleSize)
	for i, n := range g.Nodes {
		if i >= idMapSampleSize {
			break
		}
		sample[n.Label] = sbgn.NodeID(n.Label)
	}

	meta := &Metadata{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		NNodes:      g.NodeCount(),
		NEdges:      g.EdgeCount(),
		IDMapSample: sample,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bundle metadata: %w", err)
	}
	metaPath := filepath.Join(w.outDir, "bundle.meta.json")
	if err := os.WriteFile(metaPath, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("failed to write bundle metadata: %w", err)
	}
	return meta, nil
}

func (w *Writer) writeNodesCSV(g *types.Graph) error {
	records := make([][]string, 0, len(g.Nodes)+1)
	records = append(records, tabular.NodeColumns)
	for _, n := range g.Nodes {
		records = append(records, []string{n.Label, string(n.Type), string(n.Class), n.Compartment})
	}
	return writeCSV(filepath.Join(w.outDir, "nodes.cleaned.csv"), records)
}

func (w *Writer) writeEdgesCSV(g *types.Graph) error {
	records := make([][]string, 0, len(g.Edges)+1)
	records = append(records, tabular.EdgeColumns)
	for _, e := range g.Edges {
		records = append(records, []string{
			e.Source, e.Target, string(e.Class), string(e.Confidence),
			strings.Join(e.Papers, ", "), e.Notes,
		})
	}
	return writeCSV(filepath.Join(w.outDir, "edges.cleaned.csv"), records)
}

func (w *Writer) writeParquet(g *types.Graph) error {
	nodes := make([]ParquetNode, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, ParquetNode{
			Label:       n.Label,
			Type:        string(n.Type),
			Class:       string(n.Class),
			Compartment: n.Compartment,
		})
	}
	if err := parquet.WriteFile(filepath.Join(w.outDir, "nodes.cleaned.parquet"), nodes); err != nil {
		return fmt.Errorf("failed to write nodes parquet: %w", err)
	}

	edges := make([]ParquetEdge, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, ParquetEdge{
			Source:     e.Source,
			Target:     e.Target,
			Class:      string(e.Class),
			Confidence: string(e.Confidence),
			Papers:     strings.Join(e.Papers, ", "),
			Notes:      e.Notes,
		})
	}
	if err := parquet.WriteFile(filepath.Join(w.outDir, "edges.cleaned.parquet"), edges); err != nil {
		return fmt.Errorf("failed to write edges parquet: %w", err)
	}
	return nil
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
