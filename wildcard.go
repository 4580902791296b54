package roomterrain

// WildcardRLERoomTerrain is run length encoded room terrain that treats edge
// tiles as wildcards.
//
// Edge tiles are left out of the runs and stored in a RoomEdgeTerrain
// instead. A skipped tile matches whatever run precedes it, so borders which
// are noisy compared to the interior no longer split long interior runs.
type WildcardRLERoomTerrain struct {
	runs  *packedRuns
	edges RoomEdgeTerrain
}

// NewWildcardRLERoomTerrain run length encodes the terrain of src, with edge
// tiles as wildcards.
//
// Edge Swamps are stored as Plains, see RoomEdgeTerrain.
func NewWildcardRLERoomTerrain(src TerrainSource) *WildcardRLERoomTerrain {
	runs := newPackedRuns()
	var edges [4][]Terrain
	for e := range edges {
		edges[e] = make([]Terrain, 0, EdgeLength)
	}
	for i := 0; i < RoomArea; i++ {
		xy := xyFromIndex(i)
		if !xy.IsRoomEdge() {
			runs.AppendToken(src.GetXY(xy), uint16(i))
			continue
		}
		x, y := xy.X(), xy.Y()
		if xy.IsCorner() { // corners are Walls, and part of two edges
			h, v := TopEdge, LeftEdge
			if y == RoomSize-1 {
				h = BottomEdge
			}
			if x == RoomSize-1 {
				v = RightEdge
			}
			edges[h] = append(edges[h], Wall)
			edges[v] = append(edges[v], Wall)
			continue
		}
		t := src.GetXY(xy)
		switch {
		case y == 0:
			edges[TopEdge] = append(edges[TopEdge], t)
		case y == RoomSize-1:
			edges[BottomEdge] = append(edges[BottomEdge], t)
		case x == 0:
			edges[LeftEdge] = append(edges[LeftEdge], t)
		default:
			edges[RightEdge] = append(edges[RightEdge], t)
		}
	}
	et, err := NewRoomEdgeTerrain(edges[TopEdge], edges[RightEdge], edges[BottomEdge], edges[LeftEdge])
	assert(err == nil, "wildcard RLE terrain collected malformed edges")
	tracer().Debugf("wildcard RLE terrain: %d interior runs", runs.NumRuns())
	return &WildcardRLERoomTerrain{runs: runs, edges: et}
}

// GetXY returns the terrain of tile xy.
func (w *WildcardRLERoomTerrain) GetXY(xy RoomXY) Terrain {
	if xy.IsRoomEdge() {
		if t, ok := w.edges.GetXY(xy); ok {
			return t
		}
		return Wall
	}
	t, ok := w.runs.Find(uint16(xy.Index()))
	assert(ok, "wildcard RLE terrain has no run covering the first interior tile")
	return t
}

// Edges returns the edge terrain of the room.
func (w *WildcardRLERoomTerrain) Edges() RoomEdgeTerrain {
	return w.edges
}

// NumRuns returns the number of distinct runs over interior tiles.
func (w *WildcardRLERoomTerrain) NumRuns() int {
	return w.runs.NumRuns()
}

// MemorySize is the amount of memory it takes to store this data.
func (w *WildcardRLERoomTerrain) MemorySize() int {
	return w.runs.MemorySize() + w.edges.MemorySize()
}
