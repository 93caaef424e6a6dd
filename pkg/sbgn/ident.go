// Package sbgn derives stable identifiers and a deterministic grid layout for
// a validated graph and renders it as an SBGN Process-Description document.
package sbgn

import (
	"regexp"

	"github.com/soundprediction/traitnet/pkg/types"
)

const (
	idPrefix    = "n_"
	maxIDLength = 64
)

var invalidIDChars = regexp.MustCompile(`[^0-9A-Za-z_]`)

// Sanitize maps a node label to its ASCII-safe identifier body: every
// character outside [0-9A-Za-z_] becomes an underscore, then the result is
// truncated to 64 characters. Pure and idempotent.
func Sanitize(label string) string {
	s := invalidIDChars.ReplaceAllString(label, "_")
	if len(s) > maxIDLength {
		s = s[:maxIDLength]
	}
	return s
}

// NodeID returns the machine identifier for a node label. Two distinct labels
// can truncate to the same identifier; that collision is accepted, not
// detected (see DESIGN.md).
func NodeID(label string) string {
	return idPrefix + Sanitize(label)
}

// IDMap computes the identifier for every node in the graph. The map is a
// pure function of the labels and is recomputed per run, never persisted as
// authoritative state.
func IDMap(g *types.Graph) map[string]string {
	ids := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.Label] = NodeID(n.Label)
	}
	return ids
}
