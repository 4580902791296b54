package roomterrain

import (
	"testing"
)

func TestPackedRunRoundTrip(t *testing.T) {
	for _, tt := range []Terrain{Plain, Wall, Swamp} {
		for start := uint16(0); start < RoomArea; start++ {
			p := NewPackedRun(tt, start)
			if p.Terrain() != tt || p.Start() != start {
				t.Fatalf("run %s@%d unpacks to %s", tt, start, p)
			}
			if p.Repr()>>14 != 0 {
				t.Fatalf("run %s has its top bits set: %016b", p, p.Repr())
			}
			if PackedRunFromRepr(p.Repr()) != p {
				t.Fatalf("run %s does not survive its representation", p)
			}
		}
	}
	if got := NewPackedRun(Swamp, 7).Repr(); got != 0b0010_0000_0000_0111 {
		t.Fatalf("unexpected layout %016b", got)
	}
}

func TestPackedRunInvalidInput(t *testing.T) {
	shouldPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	shouldPanic("wall+swamp", func() { NewPackedRun(Terrain(3), 0) })
	shouldPanic("start", func() { NewPackedRun(Plain, RoomArea) })
	shouldPanic("tag", func() { PackedRunFromRepr(0b0011_0000_0000_0000).Terrain() })
}

func TestPackedRunMerging(t *testing.T) {
	a, b := NewPackedRun(Wall, 10), NewPackedRun(Wall, 20)
	if !a.CanAppend(b) {
		t.Errorf("%s should accept %s", a, b)
	}
	if b.CanAppend(a) {
		t.Errorf("%s should not accept earlier %s", b, a)
	}
	if a.CanAppend(NewPackedRun(Plain, 20)) {
		t.Errorf("%s should not accept another terrain", a)
	}
	if a.Append(b) != a {
		t.Errorf("appending should not change a run")
	}
	if got := b.Prepend(a); got.Start() != 10 || got.Terrain() != Wall {
		t.Errorf("prepending should move the start back, have %s", got)
	}
	if got := a.Prepend(b); got != a {
		t.Errorf("prepending a later run should not change anything, have %s", got)
	}
}

func TestRLEAddressesRowMajor(t *testing.T) {
	var raw LocalRoomTerrain
	raw[1] = byte(Swamp)
	for name, src := range map[string]interface {
		TerrainSource
		NumRuns() int
	}{
		"rle":        NewRLERoomTerrain(&raw),
		"packed-rle": NewPackedRLERoomTerrain(&raw),
	} {
		if got := src.GetXY(mustXY(t, 1, 0)); got != Swamp {
			t.Errorf("%s: (1, 0) should be swamp, is %s", name, got)
		}
		if got := src.GetXY(mustXY(t, 0, 1)); got != Plain {
			t.Errorf("%s: (0, 1) should be plain, is %s", name, got)
		}
		if src.NumRuns() != 3 {
			t.Errorf("%s: expected 3 runs, have %d", name, src.NumRuns())
		}
	}
}

func TestRLEMatchesSource(t *testing.T) {
	for name, raw := range testGrids() {
		c := NewCompressedRoomTerrain(raw.Bits())
		naive := NewRLERoomTerrain(c)
		packed := NewPackedRLERoomTerrain(raw)
		forEachXY(func(xy RoomXY) {
			want := raw.GetXY(xy)
			if got := naive.GetXY(xy); got != want {
				t.Errorf("%s: rle mismatch at %s: got %s, want %s", name, xy, got, want)
			}
			if got := packed.GetXY(xy); got != want {
				t.Errorf("%s: packed rle mismatch at %s: got %s, want %s", name, xy, got, want)
			}
		})
		if naive.NumRuns() != packed.NumRuns() {
			t.Errorf("%s: rle has %d runs, packed rle %d", name, naive.NumRuns(), packed.NumRuns())
		}
		if packed.MemorySize() > naive.MemorySize() {
			t.Errorf("%s: packed rle (%d bytes) should not exceed rle (%d bytes)",
				name, packed.MemorySize(), naive.MemorySize())
		}
		if want := raw.GetXY(xyFromIndex(RoomArea - 1)); packed.LastTerrain() != want {
			t.Errorf("%s: last run is %s, want %s", name, packed.LastTerrain(), want)
		}
	}
}

func TestRLERunCounts(t *testing.T) {
	if n := NewPackedRLERoomTerrain(uniformTerrain(Swamp)).NumRuns(); n != 1 {
		t.Errorf("uniform room should be a single run, has %d", n)
	}
	if n := NewRLERoomTerrain(heterogeneousTerrain()).NumRuns(); n != RoomArea {
		t.Errorf("alternating room should have a run per tile, has %d", n)
	}
}
