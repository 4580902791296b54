package roomterrain

import (
	"github.com/jciskey/roomterrain/rle"
)

// terrainRuns is the run container for naive RLE terrain: Terrain stored
// verbatim next to a uint16 start.
type terrainRuns = rle.Runs[rle.IndexedRun[Terrain, uint16], Terrain, uint16]

// RLERoomTerrain is run length encoded room terrain, using the generic
// engine of package rle.
type RLERoomTerrain struct {
	runs *terrainRuns
}

// NewRLERoomTerrain run length encodes the terrain of src. src may be raw
// terrain (LocalRoomTerrain) or another encoding, such as
// CompressedRoomTerrain.
func NewRLERoomTerrain(src TerrainSource) *RLERoomTerrain {
	runs := rle.NewIndexed[Terrain, uint16]()
	for i := 0; i < RoomArea; i++ {
		runs.AppendToken(src.GetXY(xyFromIndex(i)), uint16(i))
	}
	tracer().Debugf("RLE terrain: %d runs", runs.NumRuns())
	return &RLERoomTerrain{runs: runs}
}

// GetXY returns the terrain of tile xy.
func (r *RLERoomTerrain) GetXY(xy RoomXY) Terrain {
	t, ok := r.runs.Find(uint16(xy.Index()))
	assert(ok, "RLE terrain has no run starting at index 0")
	return t
}

// NumRuns returns the number of distinct runs.
func (r *RLERoomTerrain) NumRuns() int {
	return r.runs.NumRuns()
}

// MemorySize is the amount of memory it takes to store this data.
func (r *RLERoomTerrain) MemorySize() int {
	return r.runs.MemorySize()
}
