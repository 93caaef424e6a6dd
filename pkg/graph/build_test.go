package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/traitnet/pkg/tabular"
	"github.com/soundprediction/traitnet/pkg/types"
)

func traitRow(label string) tabular.NodeRow {
	return tabular.NodeRow{Label: label, Type: "process", Class: "biological_activity", Compartment: "compartment_1"}
}

func proteinRow(label string) tabular.NodeRow {
	return tabular.NodeRow{Label: label, Type: "transcription_factor", Class: "macromolecule", Compartment: "nucleus"}
}

func TestBuildValidGraph(t *testing.T) {
	nodes := []tabular.NodeRow{traitRow("Flowering time"), proteinRow("FT protein")}
	edges := []tabular.EdgeRow{{
		Source: "FT protein", Target: "Flowering time",
		Class: "positive_influence", Confidence: "high",
		Papers: "PMID:123", Notes: "activates",
	}}

	g, err := Build(nodes, edges)
	require.NoError(t, err)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	trait, ok := g.TraitNode()
	require.True(t, ok)
	assert.Equal(t, "Flowering time", trait.Label)
	assert.Equal(t, types.ClassBiologicalActivity, trait.Class)
}

func TestBuildCoercesProcessClass(t *testing.T) {
	// The trait node's class is auto-repaired, not rejected.
	nodes := []tabular.NodeRow{
		{Label: "Shoot branching", Type: "process", Class: "macromolecule", Compartment: "compartment_1"},
		proteinRow("BRC1"),
	}

	g, err := Build(nodes, nil)
	require.NoError(t, err)

	trait, ok := g.TraitNode()
	require.True(t, ok)
	assert.Equal(t, types.ClassBiologicalActivity, trait.Class)
}

func TestBuildTraitCardinality(t *testing.T) {
	t.Run("no process node", func(t *testing.T) {
		_, err := Build([]tabular.NodeRow{proteinRow("FT protein")}, nil)

		var cardErr *TraitCardinalityError
		require.ErrorAs(t, err, &cardErr)
		assert.Equal(t, 0, cardErr.Count)
	})

	t.Run("two process nodes", func(t *testing.T) {
		_, err := Build([]tabular.NodeRow{traitRow("Flowering time"), traitRow("Shoot branching")}, nil)

		var cardErr *TraitCardinalityError
		require.ErrorAs(t, err, &cardErr)
		assert.Equal(t, 2, cardErr.Count)
		assert.Equal(t, []string{"Flowering time", "Shoot branching"}, cardErr.Labels)
	})
}

func TestBuildClassConsistency(t *testing.T) {
	nodes := []tabular.NodeRow{
		traitRow("Flowering time"),
		{Label: "CO protein", Type: "transcription_factor", Class: "biological_activity", Compartment: "nucleus"},
	}

	_, err := Build(nodes, nil)

	var classErr *ClassConsistencyError
	require.ErrorAs(t, err, &classErr)
	assert.Equal(t, []string{"CO protein"}, classErr.Labels)
}

func TestBuildRejectsUnknownEnums(t *testing.T) {
	t.Run("bad node type", func(t *testing.T) {
		nodes := []tabular.NodeRow{
			traitRow("Flowering time"),
			{Label: "X", Type: "enzyme", Class: "macromolecule", Compartment: "c1"},
		}
		_, err := Build(nodes, nil)

		var schemaErr *tabular.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "nodes", schemaErr.Table)
		assert.Equal(t, "Type", schemaErr.Column)
		assert.Equal(t, []string{"enzyme"}, schemaErr.Values)
	})

	t.Run("bad edge class collects all offenders", func(t *testing.T) {
		nodes := []tabular.NodeRow{traitRow("Flowering time"), proteinRow("FT protein")}
		edges := []tabular.EdgeRow{
			{Source: "FT protein", Target: "Flowering time", Class: "activates", Confidence: "high"},
			{Source: "FT protein", Target: "Flowering time", Class: "inhibits", Confidence: "high"},
		}
		_, err := Build(nodes, edges)

		var schemaErr *tabular.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "edges", schemaErr.Table)
		assert.Equal(t, "Class", schemaErr.Column)
		assert.Equal(t, []string{"activates", "inhibits"}, schemaErr.Values)
	})

	t.Run("bad confidence", func(t *testing.T) {
		nodes := []tabular.NodeRow{traitRow("Flowering time"), proteinRow("FT protein")}
		edges := []tabular.EdgeRow{
			{Source: "FT protein", Target: "Flowering time", Class: "positive_influence", Confidence: "certain"},
		}
		_, err := Build(nodes, edges)

		var schemaErr *tabular.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "Confidence", schemaErr.Column)
	})
}

func TestBuildRejectsDuplicateLabels(t *testing.T) {
	nodes := []tabular.NodeRow{traitRow("Flowering time"), proteinRow("FT protein"), proteinRow("FT protein")}

	_, err := Build(nodes, nil)

	var schemaErr *tabular.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Nodes", schemaErr.Column)
	assert.Equal(t, []string{"FT protein"}, schemaErr.Values)
}

func TestBuildDanglingReferences(t *testing.T) {
	nodes := []tabular.NodeRow{traitRow("Flowering time"), proteinRow("FT protein")}
	edges := []tabular.EdgeRow{
		{Source: "CO protein", Target: "Flowering time", Class: "positive_influence", Confidence: "high"},
		{Source: "FT protein", Target: "Budding", Class: "positive_influence", Confidence: "low"},
		{Source: "GI protein", Target: "Budding", Class: "negative_influence", Confidence: "low"},
	}

	_, err := Build(nodes, edges)

	var dangling *DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, []string{"CO protein", "GI protein"}, dangling.UnknownSources)
	assert.Equal(t, []string{"Budding"}, dangling.UnknownTargets)
}

func TestBuildAcceptsLogicArcCombinations(t *testing.T) {
	// The logic-arc pairing convention is advisory: any structurally valid
	// combination passes.
	nodes := []tabular.NodeRow{traitRow("Flowering time"), proteinRow("FT protein"), proteinRow("FD protein")}
	edges := []tabular.EdgeRow{
		{Source: "FT protein", Target: "Flowering time", Class: "logic_arc", Confidence: "high"},
		{Source: "FD protein", Target: "Flowering time", Class: "logic_arc", Confidence: "high"},
		{Source: "FT protein", Target: "Flowering time", Class: "necessary_stimulation", Confidence: "high"},
	}

	g, err := Build(nodes, edges)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())

	// Even an unpaired logic arc passes structural validation.
	g, err = Build(nodes, edges[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuildParsesPapers(t *testing.T) {
	nodes := []tabular.NodeRow{traitRow("Flowering time"), proteinRow("FT protein")}
	edges := []tabular.EdgeRow{{
		Source: "FT protein", Target: "Flowering time",
		Class: "positive_influence", Confidence: "medium",
		Papers: "PMID:123, doi:10.1000/x ,PMID:456",
	}}

	g, err := Build(nodes, edges)
	require.NoError(t, err)
	assert.Equal(t, []string{"PMID:123", "doi:10.1000/x", "PMID:456"}, g.Edges[0].Papers)
}

func TestBuildErrorsAreDistinct(t *testing.T) {
	_, err := Build([]tabular.NodeRow{proteinRow("A")}, nil)
	require.Error(t, err)

	var schemaErr *tabular.SchemaError
	assert.False(t, errors.As(err, &schemaErr), "cardinality failure must not surface as SchemaError")
}
