package roomterrain

import "fmt"

// Encoding names one of the terrain encodings of this package.
type Encoding uint8

const (
	EncodingCompressed Encoding = iota
	EncodingRLE
	EncodingPackedRLE
	EncodingWildcardRLE
	encodingCount
)

func (e Encoding) String() string {
	switch e {
	case EncodingCompressed:
		return "compressed"
	case EncodingRLE:
		return "rle"
	case EncodingPackedRLE:
		return "packed-rle"
	case EncodingWildcardRLE:
		return "wildcard-rle"
	}
	return fmt.Sprintf("encoding(%d)", uint8(e))
}

// SizeReport holds memory size and run count of each encoding, for a single
// room.
type SizeReport struct {
	sizes [encodingCount]int
	runs  [encodingCount]int
}

// CompareSizes encodes a room in every encoding and reports their sizes.
func CompareSizes(c *CompressedRoomTerrain) SizeReport {
	var r SizeReport
	naive := NewRLERoomTerrain(c)
	packed := NewPackedRLERoomTerrain(c)
	wildcard := NewWildcardRLERoomTerrain(c)
	r.sizes = [encodingCount]int{
		c.MemorySize(), naive.MemorySize(), packed.MemorySize(), wildcard.MemorySize(),
	}
	r.runs = [encodingCount]int{
		0, naive.NumRuns(), packed.NumRuns(), wildcard.NumRuns(),
	}
	return r
}

// Size returns the memory size of encoding e.
func (r SizeReport) Size(e Encoding) int {
	if e >= encodingCount {
		return 0
	}
	return r.sizes[e]
}

// NumRuns returns the number of runs of encoding e, 0 for CompressedRoomTerrain.
func (r SizeReport) NumRuns(e Encoding) int {
	if e >= encodingCount {
		return 0
	}
	return r.runs[e]
}

// Smallest returns the encoding a room is best stored in.
//
// CompressedRoomTerrain wins if it is strictly smaller than both bit-packed RLE
// encodings; otherwise the smaller of those two wins, ties going to
// WildcardRLERoomTerrain. RLERoomTerrain is never smaller than
// PackedRLERoomTerrain and is not a candidate.
func (r SizeReport) Smallest() Encoding {
	compressed := r.sizes[EncodingCompressed]
	packed := r.sizes[EncodingPackedRLE]
	wildcard := r.sizes[EncodingWildcardRLE]
	if compressed < packed && compressed < wildcard {
		return EncodingCompressed
	}
	if packed < wildcard {
		return EncodingPackedRLE
	}
	return EncodingWildcardRLE
}

func (r SizeReport) String() string {
	return fmt.Sprintf("compressed=%d rle=%d(%d runs) packed-rle=%d(%d runs) wildcard-rle=%d(%d runs)",
		r.sizes[EncodingCompressed],
		r.sizes[EncodingRLE], r.runs[EncodingRLE],
		r.sizes[EncodingPackedRLE], r.runs[EncodingPackedRLE],
		r.sizes[EncodingWildcardRLE], r.runs[EncodingWildcardRLE])
}
