package sbgn

import "github.com/soundprediction/traitnet/pkg/types"

// Glyph bounding-box dimensions, fixed by the rendering contract.
const (
	GlyphWidth  = 150
	GlyphHeight = 50
)

// Point is a glyph position in pixels.
type Point struct {
	X int
	Y int
}

// Grid holds the layout origin and spacing. Rows are node types in order of
// first appearance; columns are positions within a type.
type Grid struct {
	OriginX  int
	OriginY  int
	SpacingX int
	SpacingY int
}

// DefaultGrid returns the standard origin and spacing.
func DefaultGrid() Grid {
	return Grid{OriginX: 100, OriginY: 100, SpacingX: 220, SpacingY: 140}
}

// Positions assigns each node a deterministic grid position: row index is the
// order of first appearance of the node's type, column index is the node's
// position within that type group. Nodes of the same type never overlap;
// overlap across types is not prevented and is an accepted simplification.
func (g Grid) Positions(nodes []types.Node) map[string]Point {
	rowOf := make(map[types.NodeType]int)
	colNext := make(map[types.NodeType]int)
	positions := make(map[string]Point, len(nodes))

	for _, n := range nodes {
		row, ok := rowOf[n.Type]
		if !ok {
			row = len(rowOf)
			rowOf[n.Type] = row
		}
		col := colNext[n.Type]
		colNext[n.Type] = col + 1

		positions[n.Label] = Point{
			X: g.OriginX + col*g.SpacingX,
			Y: g.OriginY + row*g.SpacingY,
		}
	}
	return positions
}
