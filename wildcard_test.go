package roomterrain

import (
	"testing"
)

func TestWildcardMatchesSource(t *testing.T) {
	for name, raw := range testGrids() {
		withWallCorners(raw)
		w := NewWildcardRLERoomTerrain(NewCompressedRoomTerrain(raw.Bits()))
		forEachXY(func(xy RoomXY) {
			if got, want := w.GetXY(xy), edgeAware(raw, xy); got != want {
				t.Errorf("%s: wildcard mismatch at %s: got %s, want %s", name, xy, got, want)
			}
		})
	}
}

func TestWildcardEdgesFollowSource(t *testing.T) {
	raw := blobTerrain()
	w := NewWildcardRLERoomTerrain(raw)
	top, right, bottom, left := edges(raw)
	want, err := NewRoomEdgeTerrain(top, right, bottom, left)
	if err != nil {
		t.Fatal(err)
	}
	if w.Edges() != want {
		t.Fatalf("wildcard edges differ from edges of source:\nhave %v\nwant %v",
			w.Edges().Bytes(), want.Bytes())
	}
}

func TestWildcardSwampOnEdgeIsLossy(t *testing.T) {
	raw := uniformTerrain(Plain)
	xy := mustXY(t, 7, 0)
	raw[xy.Index()] = byte(Swamp)
	w := NewWildcardRLERoomTerrain(raw)
	if got := w.GetXY(xy); got != Plain {
		t.Fatalf("edge swamp should read back as plain, is %s", got)
	}
}

func TestWildcardSkipsNoisyBorder(t *testing.T) {
	raw := uniformTerrain(Plain)
	forEachXY(func(xy RoomXY) {
		if xy.IsRoomEdge() {
			raw[xy.Index()] = byte((xy.X() + xy.Y()) % 2)
		}
	})
	withWallCorners(raw)
	w := NewWildcardRLERoomTerrain(raw)
	packed := NewPackedRLERoomTerrain(raw)
	if w.NumRuns() != 1 {
		t.Errorf("plain interior should be a single run, have %d", w.NumRuns())
	}
	if packed.NumRuns() <= w.NumRuns() {
		t.Errorf("noisy border should split packed runs, have %d", packed.NumRuns())
	}
	if w.MemorySize() >= packed.MemorySize() {
		t.Errorf("wildcard rle (%d bytes) should beat packed rle (%d bytes)",
			w.MemorySize(), packed.MemorySize())
	}
}
