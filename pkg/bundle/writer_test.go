package bundle

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/traitnet/pkg/types"
)

func testGraph() *types.Graph {
	nodes := []types.Node{
		{Label: "Flowering time", Type: types.NodeTypeProcess, Class: types.ClassBiologicalActivity, Compartment: "compartment_1"},
		{Label: "FT protein", Type: types.NodeTypeTranscriptionFactor, Class: types.ClassMacromolecule, Compartment: "nucleus"},
	}
	edges := []types.Edge{
		{Source: "FT protein", Target: "Flowering time", Class: types.EdgePositiveInfluence, Confidence: types.ConfidenceHigh, Papers: []string{"PMID:123", "PMID:456"}, Notes: "activates"},
	}
	return types.NewGraph(nodes, edges)
}

func TestWriteBundle(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	meta, err := w.Write(testGraph())
	require.NoError(t, err)

	assert.Equal(t, 2, meta.NNodes)
	assert.Equal(t, 1, meta.NEdges)
	assert.NotEmpty(t, meta.RunID)
	assert.Equal(t, "n_Flowering_time", meta.IDMapSample["Flowering time"])
	assert.Equal(t, "n_FT_protein", meta.IDMapSample["FT protein"])

	// Cleaned nodes table round-trips.
	f, err := os.Open(filepath.Join(dir, "nodes.cleaned.csv"))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Nodes", "Type", "Class", "compartmentRef"}, records[0])
	assert.Equal(t, []string{"Flowering time", "process", "biological_activity", "compartment_1"}, records[1])

	// Cleaned edges table round-trips with joined papers.
	f2, err := os.Open(filepath.Join(dir, "edges.cleaned.csv"))
	require.NoError(t, err)
	defer f2.Close()
	edgeRecords, err := csv.NewReader(f2).ReadAll()
	require.NoError(t, err)
	require.Len(t, edgeRecords, 2)
	assert.Equal(t, []string{"FT protein", "Flowering time", "positive_influence", "high", "PMID:123, PMID:456", "activates"}, edgeRecords[1])

	// Metadata file matches the returned record.
	data, err := os.ReadFile(filepath.Join(dir, "bundle.meta.json"))
	require.NoError(t, err)
	var onDisk Metadata
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, meta.RunID, onDisk.RunID)
	assert.Equal(t, meta.NNodes, onDisk.NNodes)
	assert.Equal(t, meta.IDMapSample, onDisk.IDMapSample)
}

func TestIDMapSampleIsBounded(t *testing.T) {
	nodes := []types.Node{{Label: "Trait", Type: types.NodeTypeProcess, Class: types.ClassBiologicalActivity}}
	for _, l := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		nodes = append(nodes, types.Node{Label: l, Type: types.NodeTypeComplex, Class: types.ClassMacromolecule})
	}
	g := types.NewGraph(nodes, nil)

	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	meta, err := w.Write(g)
	require.NoError(t, err)

	assert.Len(t, meta.IDMapSample, 10)
	assert.Contains(t, meta.IDMapSample, "Trait", "sample keeps input order, starting with the first node")
	assert.NotContains(t, meta.IDMapSample, "l")
}

func TestWriteParquetMirror(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	w.WriteParquet = true

	_, err = w.Write(testGraph())
	require.NoError(t, err)

	for _, name := range []string{"nodes.cleaned.parquet", "edges.cleaned.parquet"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestWriterSurfacesStorageErrors(t *testing.T) {
	// Point the writer at a path that cannot be a directory.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewWriter(filepath.Join(blocker, "out"))
	assert.Error(t, err)
}
