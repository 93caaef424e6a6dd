package traitnet

import (
	"io"
	"log/slog"
	"time"

	"github.com/soundprediction/traitnet/pkg/bundle"
	"github.com/soundprediction/traitnet/pkg/graph"
	"github.com/soundprediction/traitnet/pkg/logger"
	"github.com/soundprediction/traitnet/pkg/sbgn"
	"github.com/soundprediction/traitnet/pkg/tabular"
	"github.com/soundprediction/traitnet/pkg/types"
)

// Options configures a pipeline run. The zero value (or nil) uses the default
// grid and a default logger.
type Options struct {
	// Grid overrides the layout origin and spacing.
	Grid *sbgn.Grid

	// Logger receives stage-level progress. Defaults to a stderr logger.
	Logger *slog.Logger
}

// Result is one completed pipeline invocation: the tables have been loaded,
// normalized, and validated, and the resulting graph is immutable. The
// remaining operations (rendering, bundle writing) are read-only.
type Result struct {
	graph *types.Graph
	grid  sbgn.Grid
	log   *slog.Logger
}

// Run loads both tables from disk, normalizes them, and validates the graph.
// It returns an error before producing any output if either table is
// malformed or any structural invariant fails.
func Run(nodesPath, edgesPath string, opts *Options) (*Result, error) {
	nodeRows, err := tabular.LoadNodesFile(nodesPath)
	if err != nil {
		return nil, err
	}
	edgeRows, err := tabular.LoadEdgesFile(edgesPath)
	if err != nil {
		return nil, err
	}
	return build(nodeRows, edgeRows, opts)
}

// RunFrom is Run reading from open readers instead of file paths.
func RunFrom(nodes, edges io.Reader, opts *Options) (*Result, error) {
	nodeRows, err := tabular.LoadNodes(nodes)
	if err != nil {
		return nil, err
	}
	edgeRows, err := tabular.LoadEdges(edges)
	if err != nil {
		return nil, err
	}
	return build(nodeRows, edgeRows, opts)
}

func build(nodeRows []tabular.NodeRow, edgeRows []tabular.EdgeRow, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(slog.LevelInfo)
	}
	grid := sbgn.DefaultGrid()
	if opts.Grid != nil {
		grid = *opts.Grid
	}

	start := time.Now()
	rawEdges := len(edgeRows)
	nodeRows = tabular.NormalizeNodes(nodeRows)
	edgeRows = tabular.NormalizeEdges(edgeRows)
	if dropped := rawEdges - len(edgeRows); dropped > 0 {
		log.Info("collapsed duplicate edge rows", "dropped", dropped)
	}

	g, err := graph.Build(nodeRows, edgeRows)
	if err != nil {
		return nil, err
	}
	log.Info("graph validated",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &Result{graph: g, grid: grid, log: log}, nil
}

// Graph returns the validated graph. Callers must treat it as read-only.
func (r *Result) Graph() *types.Graph { return r.graph }

// IDMap returns the label-to-identifier mapping for the run's nodes.
func (r *Result) IDMap() map[string]string { return sbgn.IDMap(r.graph) }

// RenderSBGN renders the graph as an SBGN Process-Description document.
// Rendering the same run twice yields byte-identical output.
func (r *Result) RenderSBGN() ([]byte, error) {
	return sbgn.Render(r.graph, r.grid)
}

// WriteBundle persists the cleaned tables and lineage metadata into outDir.
// parquetMirror additionally writes Parquet copies of both tables.
func (r *Result) WriteBundle(outDir string, parquetMirror bool) (*bundle.Metadata, error) {
	w, err := bundle.NewWriter(outDir)
	if err != nil {
		return nil, err
	}
	w.WriteParquet = parquetMirror

	meta, err := w.Write(r.graph)
	if err != nil {
		return nil, err
	}
	r.log.Info("bundle written",
		"dir", outDir,
		"n_nodes", meta.NNodes,
		"n_edges", meta.NEdges,
		"run_id", meta.RunID,
	)
	return meta, nil
}
