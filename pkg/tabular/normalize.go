package tabular

import "strings"

// The logical-AND glyph as it should appear in cells, and the mojibake form it
// acquires when the UTF-8 bytes are re-decoded as Windows-1252.
const (
	logicalAnd   = "∧"
	corruptedAnd = "âˆ§"
)

// cleanCell strips incidental leading/trailing whitespace and repairs the
// known logical-AND corruption. Internal whitespace is preserved.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, corruptedAnd, logicalAnd))
}

// NormalizeNodes cleans every cell of every node row. Idempotent.
func NormalizeNodes(rows []NodeRow) []NodeRow {
	out := make([]NodeRow, len(rows))
	for i, r := range rows {
		out[i] = NodeRow{
			Label:       cleanCell(r.Label),
			Type:        cleanCell(r.Type),
			Class:       cleanCell(r.Class),
			Compartment: cleanCell(r.Compartment),
		}
	}
	return out
}

// NormalizeEdges cleans every cell of every edge row, then collapses rows that
// are identical across all fields, keeping the first occurrence in order.
// Idempotent: normalizing already-normalized rows is a no-op.
func NormalizeEdges(rows []EdgeRow) []EdgeRow {
	seen := make(map[EdgeRow]struct{}, len(rows))
	out := make([]EdgeRow, 0, len(rows))
	for _, r := range rows {
		cleaned := EdgeRow{
			Source:     cleanCell(r.Source),
			Target:     cleanCell(r.Target),
			Class:      cleanCell(r.Class),
			Confidence: cleanCell(r.Confidence),
			Papers:     cleanCell(r.Papers),
			Notes:      cleanCell(r.Notes),
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}
