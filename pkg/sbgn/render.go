package sbgn

import (
	"encoding/xml"
	"fmt"

	"github.com/soundprediction/traitnet/pkg/types"
)

const (
	sbgnNamespace = "http://sbgn.org/libsbgn/0.3"
	mapLanguage   = "process description"
)

// Rendering classes for glyphs.
const (
	glyphBiologicalActivity = "biological activity"
	glyphMacromolecule      = "macromolecule"
)

// arcClasses maps each edge class to its SBGN arc class string. Anything
// outside the map renders as a positive influence; that branch is unreachable
// after validation but stays defined.
var arcClasses = map[types.EdgeClass]string{
	types.EdgePositiveInfluence:    "positive influence",
	types.EdgeNegativeInfluence:    "negative influence",
	types.EdgeLogicArc:             "logic arc",
	types.EdgeNecessaryStimulation: "necessary stimulation",
}

const defaultArcClass = "positive influence"

type document struct {
	XMLName xml.Name `xml:"sbgn"`
	Xmlns   string   `xml:"xmlns,attr"`
	Map     sbgnMap  `xml:"map"`
}

type sbgnMap struct {
	Language string  `xml:"language,attr"`
	Glyphs   []glyph `xml:"glyph"`
	Arcs     []arc   `xml:"arc"`
}

type glyph struct {
	ID    string     `xml:"id,attr"`
	Class string     `xml:"class,attr"`
	Label glyphLabel `xml:"label"`
	BBox  bbox       `xml:"bbox"`
}

type glyphLabel struct {
	Text string `xml:"text,attr"`
}

type bbox struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
	W int `xml:"w,attr"`
	H int `xml:"h,attr"`
}

type arc struct {
	Class  string `xml:"class,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Ports  []port `xml:"port"`
}

type port struct {
	IDRef string `xml:"idref,attr"`
}

// Render serializes the validated graph as an SBGN Process-Description XML
// document: one glyph per node, one arc per edge. Identifiers and positions
// are recomputed from the graph, so identical inputs produce byte-identical
// output. Render performs no I/O.
func Render(g *types.Graph, grid Grid) ([]byte, error) {
	positions := grid.Positions(g.Nodes)

	doc := document{
		Xmlns: sbgnNamespace,
		Map: sbgnMap{
			Language: mapLanguage,
			Glyphs:   make([]glyph, 0, len(g.Nodes)),
			Arcs:     make([]arc, 0, len(g.Edges)),
		},
	}

	for _, n := range g.Nodes {
		pos := positions[n.Label]
		doc.Map.Glyphs = append(doc.Map.Glyphs, glyph{
			ID:    NodeID(n.Label),
			Class: glyphClass(n),
			Label: glyphLabel{Text: n.Label},
			BBox:  bbox{X: pos.X, Y: pos.Y, W: GlyphWidth, H: GlyphHeight},
		})
	}

	for _, e := range g.Edges {
		sid, tid := NodeID(e.Source), NodeID(e.Target)
		doc.Map.Arcs = append(doc.Map.Arcs, arc{
			Class:  arcClass(e.Class),
			Source: sid,
			Target: tid,
			Ports:  []port{{IDRef: sid}, {IDRef: tid}},
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal SBGN document: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// glyphClass derives the rendering class from the node's type/class pair. The
// trait node renders as a biological activity; everything else is a
// macromolecule.
func glyphClass(n types.Node) string {
	if n.IsTrait() || n.Class == types.ClassBiologicalActivity {
		return glyphBiologicalActivity
	}
	return glyphMacromolecule
}

func arcClass(c types.EdgeClass) string {
	if s, ok := arcClasses[c]; ok {
		return s
	}
	return defaultArcClass
}
