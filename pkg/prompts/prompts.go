// Package prompts generates the literature-curation prompt pack used to
// produce the nodes/edges CSVs upstream. Pure string templating; the schemas
// embedded here must stay in sync with pkg/types and pkg/tabular.
package prompts

import (
	"fmt"
	"os"
	"path/filepath"
)

const systemCore = `You are an expert systems biologist spanning molecular -> cellular -> organ -> whole-plant scales.
You read the literature (reviews, primary research, preprints, model supplements), build causal regulatory networks, and produce clean CSV outputs.
You strictly follow the required CSV schemas and naming constraints.
When unclear, you choose the most conservative, biologically plausible option and briefly note it in the Notes column (edges.csv).
Do not ask clarifying questions - produce the best possible answer now.

GRANULARITY POLICY (generic, trait-agnostic):
- The trait itself is represented as a single outcome/process node and is the ONLY node with Class="biological_activity".
- All other nodes (receptors, enzymes, complexes, transcription factors, transporters, modifiers, signals) are entities with Class="macromolecule". Use precise, stable, human-readable labels.
- Represent complexes explicitly as separate nodes (Type=complex) distinct from their subunits.
- Use logic gates ONLY for multi-parent requirements. Use "necessary_stimulation" when an input is obligate for the downstream effect.
- No speculative edges. If evidence is weak/indirect, either omit or include with Confidence="low" and a clear Notes explanation.

CONSISTENCY & ID POLICY:
- Node labels must be exact, stable, ASCII-compatible (spaces and standard punctuation OK).
- Avoid synonyms; pick one canonical label per biological concept.
- Every edge endpoint MUST exist in nodes.csv (no dangling nodes).`

const schemaNodes = `CSV: nodes.csv
Required headers: Nodes, Type, Class, compartmentRef
- Nodes: exact, stable human-readable labels (ASCII-safe)
- Type: one of {receptor, hormone, complex, adapter, repressor, transporter, transcription_factor, process}
- Class: one of {macromolecule, biological_activity}
- compartmentRef: "compartment_1" unless specific evidence supports nucleus, cytosol, plasma_membrane, apoplast, chloroplast, mitochondrion, vacuole, etc.
STRICT RULES:
- Exactly ONE node represents the trait outcome and MUST have: Type="process", Class="biological_activity".
- All other nodes MUST have Class="macromolecule".`

const schemaEdges = `CSV: edges.csv
Required headers: source, target, Class, Confidence, Papers, Notes
- Class: one of {positive_influence, negative_influence, logic_arc, necessary_stimulation}
- Confidence: one of {high, medium, low}
- Papers: comma-separated short citations or DOIs/PMIDs (as available)
- Notes: one short sentence explaining mechanism/evidence or any conservative assumption used
MAPPING:
- Use "logic_arc" only to connect multiple sources into an AND requirement for a target (emit one or more logic_arc rows source->target to declare inputs).
- Then add exactly ONE influence edge from the AND gate to the target using {positive_influence | negative_influence | necessary_stimulation} to indicate the net required sign.
- If a single obligate input (no AND) gates the target, use "necessary_stimulation" from that input directly.`

const qualityBars = `QUALITY BARS (must pass before emitting):
- Nodes: exactly one trait node (Type=process, Class=biological_activity) named exactly as the provided trait string.
- All other nodes: Class=macromolecule, correct Type and compartmentRef.
- Edges: no dangling endpoints; allowed Class values only; logic arcs used only for true multi-input requirements.
- De-duplicate rows after whitespace normalization; fix common mojibake internally.`

// TraitToNetwork builds the main network-construction prompt for a trait.
func TraitToNetwork(trait string) string {
	return fmt.Sprintf(`[SYSTEM]
%s

[TASK]
Build a generic yet maximally granular causal regulatory network for the trait **%s**.
The network must capture upstream signals, receptors, signaling components, transcriptional regulators, transporters, metabolic enzymes, complexes, and environmental/exogenous factors that causally influence **%s**.

Represent **%s** itself as the single outcome/process node:
- Nodes="%s", Type="process", Class="biological_activity", compartmentRef="compartment_1".

All other nodes MUST have Class="macromolecule" with appropriate Type and compartmentRef.

[OUTPUT FORMAT]
Produce exactly two CSVs matching these schemas (no prose around them):
%s
%s

Then provide a short 6-10 line rationale describing the highest-confidence causal routes and where logic gates/necessary stimulations were used.

%s

[DELIVERABLES]
1) nodes.csv contents
2) edges.csv contents
3) short rationale
`, systemCore, trait, trait, trait, trait, schemaNodes, schemaEdges, qualityBars)
}

// EdgeEvidence builds the evidence-strengthening prompt for a trait's edges.
func EdgeEvidence(trait string) string {
	return fmt.Sprintf(`[SYSTEM]
%s

[TASK]
For the **%s** network you produced, strengthen *edges.csv* by ensuring:
- Every row has Confidence in {high, medium, low}
- Papers contains comma-separated short refs or DOIs/PMIDs (as available)
- Notes gives a one-sentence mechanism/assumption
- Logic arcs are only used for multi-input AND requirements; "necessary_stimulation" for single obligate inputs

[OUTPUT]
Return ONLY a revised edges.csv body with the exact headers:
source,target,Class,Confidence,Papers,Notes
`, systemCore, trait)
}

// PsoupTranslation builds the qualitative-simulation translation prompt.
func PsoupTranslation(trait string) string {
	return fmt.Sprintf(`[SYSTEM]
%s

[PSOUP RULES]
- Node modifier: 0=knockdown, 1=wildtype, 2=overexpression
- The trait node **%s** is the qualitative outcome to compare bins against WT (-1 lower, 0 same, +1 higher).

[TASK]
Using nodes.csv and edges.csv for **%s**, propose PSoup simulation cases:
- List perturbations (knockdown/overexpression/exogenous) as modifier vectors for relevant nodes (exclude the trait node).
- Provide expected qualitative bin for **%s** relative to WT when strongly supported; otherwise leave as "NA" with short note.

[OUTPUT]
1) A markdown table of perturbations and expected bins for **%s**
2) A short note on assumptions/limitations
`, systemCore, trait, trait, trait, trait)
}

// Pack returns the full prompt pack keyed by output filename.
func Pack(trait string) map[string]string {
	return map[string]string{
		"00_trait_to_network.txt":  TraitToNetwork(trait),
		"01_edge_evidence.txt":     EdgeEvidence(trait),
		"02_psoup_translation.txt": PsoupTranslation(trait),
	}
}

// WritePack writes the prompt pack for a trait into dir, creating it if
// needed.
func WritePack(dir, trait string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create prompt directory: %w", err)
	}
	for name, content := range Pack(trait) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write prompt %s: %w", name, err)
		}
	}
	return nil
}
