package roomterrain

import (
	"fmt"

	"github.com/jciskey/roomterrain/rle"
)

const (
	packedTerrainShift = 12
	packedStartMask    = 1<<packedTerrainShift - 1 // log2(2500) < 12
)

// PackedRun is a run of terrain with terrain and start packed into 16 bits.
//
// Layout, from MSB to LSB: 00ttssssssssssss
//   - 2 bits, always 0
//   - 2 bits of terrain; wall+swamp is not representable
//   - 12 bits of start index
type PackedRun uint16

// NewPackedRun creates a run of terrain t, starting at tile index start.
// start must be less than RoomArea.
func NewPackedRun(t Terrain, start uint16) PackedRun {
	assert(t <= Swamp, "invalid terrain for packed run")
	assert(start < RoomArea, "packed run starts outside of room")
	return PackedRun(uint16(t)<<packedTerrainShift | start)
}

// PackedRunFromRepr creates a run from its packed representation, as returned
// by Repr.
func PackedRunFromRepr(packed uint16) PackedRun {
	return PackedRun(packed)
}

// Terrain returns the terrain the run encodes.
func (p PackedRun) Terrain() Terrain {
	t := Terrain(p >> packedTerrainShift)
	assert(t <= Swamp, "packed run holds undefined terrain tag")
	return t
}

// Token is Terrain, for package rle.
func (p PackedRun) Token() Terrain { return p.Terrain() }

// Start returns the linear terrain index the run starts at.
func (p PackedRun) Start() uint16 {
	return uint16(p) & packedStartMask
}

// Repr returns the packed representation of the run.
func (p PackedRun) Repr() uint16 {
	return uint16(p)
}

// CanAppend is true if other has the same terrain and does not start
// before p.
func (p PackedRun) CanAppend(other PackedRun) bool {
	return p.Terrain() == other.Terrain() && p.Start() <= other.Start()
}

// Append is a no-op: the run already covers everything after its start.
func (p PackedRun) Append(other PackedRun) PackedRun {
	return p
}

// Prepend extends p back to the start of other, if other starts sooner.
func (p PackedRun) Prepend(other PackedRun) PackedRun {
	if other.Start() < p.Start() {
		return other // terrain is the same, so this just copies the start
	}
	return p
}

func (p PackedRun) String() string {
	return fmt.Sprintf("%s@%d", p.Terrain(), p.Start())
}

// packedRuns is the run container for packed RLE terrain. It is the engine of
// RLERoomTerrain with a 2-byte storage type.
type packedRuns = rle.Runs[PackedRun, Terrain, uint16]

func newPackedRuns() *packedRuns {
	return rle.New[PackedRun, Terrain, uint16](NewPackedRun)
}

// PackedRLERoomTerrain is run length encoded room terrain, with every run
// bit-packed into a PackedRun.
type PackedRLERoomTerrain struct {
	runs *packedRuns
}

// NewPackedRLERoomTerrain run length encodes the terrain of src.
func NewPackedRLERoomTerrain(src TerrainSource) *PackedRLERoomTerrain {
	runs := newPackedRuns()
	for i := 0; i < RoomArea; i++ {
		runs.AppendToken(src.GetXY(xyFromIndex(i)), uint16(i))
	}
	tracer().Debugf("packed RLE terrain: %d runs", runs.NumRuns())
	return &PackedRLERoomTerrain{runs: runs}
}

// GetXY returns the terrain of tile xy.
func (p *PackedRLERoomTerrain) GetXY(xy RoomXY) Terrain {
	t, ok := p.runs.Find(uint16(xy.Index()))
	assert(ok, "packed RLE terrain has no run starting at index 0")
	return t
}

// LastTerrain returns the terrain of the last run.
func (p *PackedRLERoomTerrain) LastTerrain() Terrain {
	last, ok := p.runs.Last()
	assert(ok, "packed RLE terrain is empty")
	return last.Terrain()
}

// NumRuns returns the number of distinct runs.
func (p *PackedRLERoomTerrain) NumRuns() int {
	return p.runs.NumRuns()
}

// MemorySize is the amount of memory it takes to store this data.
func (p *PackedRLERoomTerrain) MemorySize() int {
	return p.runs.MemorySize()
}
