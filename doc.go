/*
Package roomterrain stores and queries the terrain of rooms: fixed 50×50 grids
of tiles, each tile being a Plain, a Wall or a Swamp.

Storing one byte per tile costs 2500 bytes per room. This package offers
several more compact encodings, all of which stay randomly queryable:

  - CompressedRoomTerrain bit-packs 4 tiles per byte (625 bytes, O(1) lookup).
  - RoomEdgeTerrain keeps only the border of a room, 1 bit per tile (24 bytes).
  - RLERoomTerrain run-length encodes tiles in row-major order, on top of the
    generic engine of package rle (O(lg(n)) lookup).
  - PackedRLERoomTerrain does the same with terrain and start packed into a
    single uint16 per run.
  - WildcardRLERoomTerrain run-length encodes interior tiles only and keeps the
    border in a RoomEdgeTerrain, so that noisy borders do not split long
    interior runs.

CompareSizes tells which encoding is smallest for a given room.

All encodings are built once from a complete room and are read-only afterwards,
therefore safe for concurrent readers.

Package store is the keyed blob store for CompressedRoomTerrain data.

----------------------------------------------------------------------

# BSD License

All rights reserved.

License information is available in the LICENSE file.
*/
package roomterrain

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'roomterrain'
func tracer() tracing.Trace {
	return tracing.Select("roomterrain")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
