package roomterrain

import (
	"fmt"
)

// The corners of a room are always Walls, so only tiles 1 to 48 of each edge
// are stored, one bit each. 48 bits make 6 bytes per edge and 24 bytes for
// the whole border.

const (
	EdgeLength    = RoomSize          // tiles per edge, corners included
	EdgeChunkSize = 6                 // bytes per edge
	EdgeArraySize = 4 * EdgeChunkSize // bytes per room
)

// RoomEdge selects one of the four edges of a room. Edges are stored in this
// order.
type RoomEdge uint8

const (
	TopEdge RoomEdge = iota
	RightEdge
	BottomEdge
	LeftEdge
)

func (e RoomEdge) String() string {
	switch e {
	case TopEdge:
		return "top"
	case RightEdge:
		return "right"
	case BottomEdge:
		return "bottom"
	case LeftEdge:
		return "left"
	}
	return fmt.Sprintf("edge(%d)", uint8(e))
}

// EdgeParseError is returned when RoomEdgeTerrain is built from edge slices
// of the wrong length. There is one value per edge.
type EdgeParseError uint8

const (
	ErrTopEdgeNotLength50 EdgeParseError = iota + 1
	ErrRightEdgeNotLength50
	ErrBottomEdgeNotLength50
	ErrLeftEdgeNotLength50
)

func (e EdgeParseError) Error() string {
	return fmt.Sprintf("%s edge terrain is not of length %d", RoomEdge(e-1), EdgeLength)
}

// RoomEdgeTerrain stores the terrain of the edges of a room, bit-packed.
//
// Each edge takes a chunk of 6 bytes; chunks are in the order top, right,
// bottom, left. Top and bottom run along x, left and right along y. Bit k of
// byte i of a chunk (most significant bit first) is 1 if the tile at edge
// offset 8i+k+1 is a Wall.
type RoomEdgeTerrain struct {
	data [EdgeArraySize]byte
}

// RoomEdgeTerrainFromBytes reconstitutes edge terrain from its raw data, as
// returned by Bytes.
func RoomEdgeTerrainFromBytes(data [EdgeArraySize]byte) RoomEdgeTerrain {
	return RoomEdgeTerrain{data: data}
}

// NewRoomEdgeTerrain creates edge terrain from the terrain of each edge of a
// room. Each slice must hold exactly 50 tiles, corners included.
//
// Edges have no Swamps. A Swamp is encoded as a Plain, which loses data when
// converting back.
func NewRoomEdgeTerrain(top, right, bottom, left []Terrain) (RoomEdgeTerrain, error) {
	var et RoomEdgeTerrain
	for i, edge := range [4][]Terrain{top, right, bottom, left} {
		if len(edge) != EdgeLength {
			return et, EdgeParseError(i + 1)
		}
	}
	for i, edge := range [4][]Terrain{top, right, bottom, left} {
		et.setChunk(RoomEdge(i), edge)
	}
	return et, nil
}

func (et *RoomEdgeTerrain) setChunk(which RoomEdge, edge []Terrain) {
	chunk := et.chunk(which)
	tiles := edge[1 : EdgeLength-1] // the end points are always Walls
	for i := 0; i < EdgeChunkSize; i++ {
		chunk[i] = edgeByte(tiles[8*i : 8*i+8])
	}
}

func (et *RoomEdgeTerrain) chunk(which RoomEdge) []byte {
	base := int(which) * EdgeChunkSize
	return et.data[base : base+EdgeChunkSize]
}

// Bytes returns a copy of the compressed data array.
func (et RoomEdgeTerrain) Bytes() [EdgeArraySize]byte {
	return et.data
}

// Edge returns the terrain of one edge, corners included.
func (et RoomEdgeTerrain) Edge(which RoomEdge) [EdgeLength]Terrain {
	return EdgeTerrainFromBytes([EdgeChunkSize]byte(et.chunk(which)))
}

// Top returns the terrain of the top edge.
func (et RoomEdgeTerrain) Top() [EdgeLength]Terrain { return et.Edge(TopEdge) }

// Right returns the terrain of the right edge.
func (et RoomEdgeTerrain) Right() [EdgeLength]Terrain { return et.Edge(RightEdge) }

// Bottom returns the terrain of the bottom edge.
func (et RoomEdgeTerrain) Bottom() [EdgeLength]Terrain { return et.Edge(BottomEdge) }

// Left returns the terrain of the left edge.
func (et RoomEdgeTerrain) Left() [EdgeLength]Terrain { return et.Edge(LeftEdge) }

// GetXY returns the terrain of tile xy, or false if xy is not an edge tile.
func (et RoomEdgeTerrain) GetXY(xy RoomXY) (Terrain, bool) {
	x, y := xy.X(), xy.Y()
	switch {
	case xy.IsCorner():
		return Wall, true
	case y == 0:
		return et.tile(TopEdge, x), true
	case y == RoomSize-1:
		return et.tile(BottomEdge, x), true
	case x == 0:
		return et.tile(LeftEdge, y), true
	case x == RoomSize-1:
		return et.tile(RightEdge, y), true
	}
	return Plain, false // not an edge
}

// tile reads a single tile of an edge. offset is the position along the edge,
// in [1, 48].
func (et RoomEdgeTerrain) tile(which RoomEdge, offset int) Terrain {
	assert(offset > 0 && offset < EdgeLength-1, "edge offset out of range")
	i := offset - 1
	b := et.data[int(which)*EdgeChunkSize+i/8]
	return Terrain((b >> (7 - i%8)) & 1)
}

// MemorySize is the amount of memory it takes to hold this data.
func (et RoomEdgeTerrain) MemorySize() int {
	return EdgeArraySize
}

// EdgeTerrainFromBytes decodes a 6-byte edge chunk into the 50 tiles of an
// edge. Tiles 0 and 49 are Walls.
func EdgeTerrainFromBytes(chunk [EdgeChunkSize]byte) [EdgeLength]Terrain {
	var edge [EdgeLength]Terrain
	edge[0], edge[EdgeLength-1] = Wall, Wall
	for i, b := range chunk {
		t := edgeTerrain(b)
		copy(edge[1+8*i:], t[:])
	}
	return edge
}

// edgeByte packs 8 tiles into a byte, first tile in the most significant bit.
// Only Walls set a bit; Swamps become Plains.
func edgeByte(tiles []Terrain) byte {
	var b byte
	for i, t := range tiles[:8] {
		if t == Wall {
			b |= 1 << (7 - i)
		}
	}
	return b
}

// edgeTerrain is the inverse of edgeByte.
func edgeTerrain(b byte) [8]Terrain {
	var tiles [8]Terrain
	for i := range tiles {
		tiles[i] = Terrain((b >> (7 - i)) & 1)
	}
	return tiles
}
