package roomterrain

import (
	"math/rand"
	"testing"
)

func mustXY(t testing.TB, x, y int) RoomXY {
	t.Helper()
	xy, err := NewRoomXY(x, y)
	if err != nil {
		t.Fatalf("cannot create position: %v", err)
	}
	return xy
}

// forEachXY calls f for every tile of a room, in row-major order.
func forEachXY(f func(xy RoomXY)) {
	for i := 0; i < RoomArea; i++ {
		f(xyFromIndex(i))
	}
}

// heterogeneousTerrain cycles through Plain, Wall, Swamp in row-major order.
func heterogeneousTerrain() *LocalRoomTerrain {
	var l LocalRoomTerrain
	for i := range l {
		l[i] = byte(i % 3)
	}
	return &l
}

// randomTerrain draws each tile from all four 2-bit values, wall+swamp included.
func randomTerrain(seed int64) *LocalRoomTerrain {
	rnd := rand.New(rand.NewSource(seed))
	var l LocalRoomTerrain
	for i := range l {
		l[i] = byte(rnd.Intn(4))
	}
	return &l
}

// blobTerrain has a Plain interior with a few Swamp and Wall blobs, and a
// border alternating between Walls and Plains.
func blobTerrain() *LocalRoomTerrain {
	var l LocalRoomTerrain
	for i := range l {
		xy := xyFromIndex(i)
		x, y := xy.X(), xy.Y()
		switch {
		case xy.IsRoomEdge():
			l[i] = byte((x + y) % 2)
		case x >= 10 && x < 20 && y >= 5 && y < 15:
			l[i] = byte(Swamp)
		case x >= 30 && y >= 30:
			l[i] = byte(Wall)
		}
	}
	return &l
}

// uniformTerrain is a room with every tile set to t.
func uniformTerrain(t Terrain) *LocalRoomTerrain {
	var l LocalRoomTerrain
	for i := range l {
		l[i] = byte(t)
	}
	return &l
}

// withWallCorners sets the four corners of l to Wall.
func withWallCorners(l *LocalRoomTerrain) *LocalRoomTerrain {
	for _, i := range []int{0, RoomSize - 1, RoomArea - RoomSize, RoomArea - 1} {
		l[i] = byte(Wall)
	}
	return l
}

// edgeAware is what edge-storing encodings report for tile xy of src:
// corners are Walls and edge Swamps are Plains.
func edgeAware(src TerrainSource, xy RoomXY) Terrain {
	t := src.GetXY(xy)
	switch {
	case xy.IsCorner():
		return Wall
	case xy.IsRoomEdge() && t == Swamp:
		return Plain
	}
	return t
}

func testGrids() map[string]*LocalRoomTerrain {
	return map[string]*LocalRoomTerrain{
		"heterogeneous": heterogeneousTerrain(),
		"random-1":      randomTerrain(1),
		"random-42":     randomTerrain(42),
		"blob":          blobTerrain(),
		"plain":         uniformTerrain(Plain),
		"wall":          uniformTerrain(Wall),
		"swamp":         uniformTerrain(Swamp),
	}
}
