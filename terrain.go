package roomterrain

// Terrain is the walkability class of a tile.
type Terrain uint8

const (
	Plain Terrain = 0
	Wall  Terrain = 1
	Swamp Terrain = 2
)

const (
	RoomSize = 50                  // tiles per row and per column
	RoomArea = RoomSize * RoomSize // tiles per room
)

// TerrainFromBits decodes the 2 least significant bits of b.
//
// 0b11, wall+swamp, is found in commonly used server environments (notably the
// private server default map) and is treated as a Wall, as the game engine
// does. Higher bits are ignored.
func TerrainFromBits(b uint8) Terrain {
	switch b & 0b11 {
	case 0b00:
		return Plain
	case 0b01, 0b11:
		return Wall
	default:
		return Swamp
	}
}

func (t Terrain) String() string {
	switch t {
	case Plain:
		return "plain"
	case Wall:
		return "wall"
	case Swamp:
		return "swamp"
	}
	return "invalid"
}

// TerrainSource is anything able to tell the terrain of a tile. All encodings
// of this package are sources, as is LocalRoomTerrain.
type TerrainSource interface {
	GetXY(xy RoomXY) Terrain
}

// LocalRoomTerrain is uncompressed room terrain, one byte per tile in
// row-major order, as delivered by the game API.
type LocalRoomTerrain [RoomArea]byte

// GetXY returns the terrain of tile xy.
func (l *LocalRoomTerrain) GetXY(xy RoomXY) Terrain {
	return TerrainFromBits(l[xy.Index()])
}

// Bits returns the raw terrain bytes.
func (l *LocalRoomTerrain) Bits() *[RoomArea]byte {
	return (*[RoomArea]byte)(l)
}
