// Package traitnet turns a tabular description of a causal biological
// regulatory network (a nodes CSV and an edges CSV) into a validated,
// cleaned, de-duplicated canonical bundle and a rendered SBGN
// Process-Description document.
//
// # Basic Usage
//
// Run the pipeline once per pair of input tables:
//
//	run, err := traitnet.Run("nodes.csv", "edges.csv", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc, err := run.RenderSBGN()
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("network.sbgn", doc, 0644)
//
//	if _, err := run.WriteBundle("out", false); err != nil {
//		log.Fatal(err)
//	}
//
// The pipeline is all-or-nothing: if validation fails, no output is produced
// and the error names the offending columns, values, or labels. After
// validation the graph is immutable; identifiers and layout are pure
// functions recomputed from it.
package traitnet
