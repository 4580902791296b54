package roomterrain

import (
	"errors"
	"fmt"
	"unsafe"
)

// CompressedArraySize is the size of the data array of CompressedRoomTerrain.
// Terrain fits into 2 bits, so 4 tiles are packed into each byte.
const CompressedArraySize = RoomArea / 4

// ErrCompressedLength is returned when parsing compressed terrain of the wrong size.
var ErrCompressedLength = errors.New("compressed terrain must be 625 bytes")

// CompressedRoomTerrain is room terrain compressed via bit-packing.
//
// Byte i holds the tiles at linear indices [4i, 4i+4), 2 bits each, most
// significant bits first: [t0:2][t1:2][t2:2][t3:2].
type CompressedRoomTerrain struct {
	data [CompressedArraySize]byte
}

// NewCompressedRoomTerrain compresses raw terrain, one byte per tile in
// row-major order.
//
// Only the 2 least significant bits of every input byte are kept. This is
// valid for terrain data, but not for anything that isn't 2 bits in size.
func NewCompressedRoomTerrain(bits *[RoomArea]byte) *CompressedRoomTerrain {
	c := &CompressedRoomTerrain{}
	for i := range c.data {
		c.data[i] = compress4(bits[4*i : 4*i+4])
	}
	return c
}

// CompressedRoomTerrainFromBytes reconstitutes compressed terrain from its
// raw data array, as returned by Bytes.
func CompressedRoomTerrainFromBytes(data [CompressedArraySize]byte) *CompressedRoomTerrain {
	return &CompressedRoomTerrain{data: data}
}

// ParseCompressedRoomTerrain reconstitutes compressed terrain from a byte
// slice, as read from storage.
func ParseCompressedRoomTerrain(data []byte) (*CompressedRoomTerrain, error) {
	if len(data) != CompressedArraySize {
		return nil, fmt.Errorf("have %d bytes: %w", len(data), ErrCompressedLength)
	}
	return CompressedRoomTerrainFromBytes([CompressedArraySize]byte(data)), nil
}

// Bytes returns a copy of the compressed data array.
func (c *CompressedRoomTerrain) Bytes() [CompressedArraySize]byte {
	return c.data
}

// GetXY returns the terrain of tile xy.
func (c *CompressedRoomTerrain) GetXY(xy RoomXY) Terrain {
	return TerrainFromBits(c.bits(xy.Index()))
}

// bits extracts the 2 terrain bits of tile index from the data array.
func (c *CompressedRoomTerrain) bits(index int) uint8 {
	byteIndex, offset := index/4, index%4
	shift := 6 - 2*offset
	return (c.data[byteIndex] >> shift) & 0b11
}

// Uncompressed returns the raw terrain, one byte per tile in row-major order.
func (c *CompressedRoomTerrain) Uncompressed() [RoomArea]byte {
	var bits [RoomArea]byte
	for i, b := range c.data {
		t := uncompress(b)
		copy(bits[4*i:4*i+4], t[:])
	}
	return bits
}

// MemorySize is the amount of memory it takes to hold this data, including
// the pointer a holder keeps to it.
func (c *CompressedRoomTerrain) MemorySize() int {
	return int(unsafe.Sizeof(c.data)) + int(unsafe.Sizeof(c))
}

// compress4 packs 4 bytes of raw terrain into a single byte, first byte in
// the most significant bits.
func compress4(bytes []byte) byte {
	const mask = 0b11
	return (bytes[0]&mask)<<6 | (bytes[1]&mask)<<4 | (bytes[2]&mask)<<2 | bytes[3]&mask
}

// uncompress is the inverse of compress4.
func uncompress(b byte) [4]byte {
	const mask = 0b11
	return [4]byte{(b >> 6) & mask, (b >> 4) & mask, (b >> 2) & mask, b & mask}
}
