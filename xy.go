package roomterrain

import (
	"errors"
	"fmt"
)

// ErrOutOfRoom is returned when a coordinate or linear index lies outside a room.
var ErrOutOfRoom = errors.New("position outside of room")

// RoomXY is a tile position within a room. The zero value is (0, 0); all
// other values are constructed through NewRoomXY or RoomXYFromIndex, which
// guarantee 0 ≤ x, y < RoomSize.
type RoomXY struct {
	x, y uint8
}

// NewRoomXY creates a position from a column x and a row y.
func NewRoomXY(x, y int) (RoomXY, error) {
	if x < 0 || x >= RoomSize || y < 0 || y >= RoomSize {
		return RoomXY{}, fmt.Errorf("(%d, %d): %w", x, y, ErrOutOfRoom)
	}
	return RoomXY{x: uint8(x), y: uint8(y)}, nil
}

// RoomXYFromIndex creates a position from a row-major linear terrain index.
func RoomXYFromIndex(index int) (RoomXY, error) {
	if index < 0 || index >= RoomArea {
		return RoomXY{}, fmt.Errorf("index %d: %w", index, ErrOutOfRoom)
	}
	return xyFromIndex(index), nil
}

// xyFromIndex is RoomXYFromIndex for indices known to be in range.
func xyFromIndex(index int) RoomXY {
	return RoomXY{x: uint8(index % RoomSize), y: uint8(index / RoomSize)}
}

// X returns the column.
func (xy RoomXY) X() int { return int(xy.x) }

// Y returns the row.
func (xy RoomXY) Y() int { return int(xy.y) }

// Index returns the row-major linear terrain index, in [0, RoomArea).
func (xy RoomXY) Index() int {
	return int(xy.y)*RoomSize + int(xy.x)
}

// IsRoomEdge is true for tiles on the outer ring of the room.
func (xy RoomXY) IsRoomEdge() bool {
	return xy.x == 0 || xy.x == RoomSize-1 || xy.y == 0 || xy.y == RoomSize-1
}

// IsCorner is true for the four corner tiles of the room.
func (xy RoomXY) IsCorner() bool {
	return (xy.x == 0 || xy.x == RoomSize-1) && (xy.y == 0 || xy.y == RoomSize-1)
}

func (xy RoomXY) String() string {
	return fmt.Sprintf("(%d, %d)", xy.x, xy.y)
}
