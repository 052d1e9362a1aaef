package gc

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

// buildCallSite fabricates the byte layout a compiler would emit adjacent
// to a GC-safe call site: a 3-byte jump opcode placeholder, a 4-byte
// little-endian delta at +3 (always 0 here, so the map starts right at
// +7), and the reference map itself (min, max, bitmap). The returned slice
// must be kept alive by the caller for as long as ra is used.
func buildCallSite(minIndex, maxIndex int32, refBits []bool) (ra unsafe.Pointer, buf []byte) {
	bitmapLen := (len(refBits) + 7) / 8
	buf = make([]byte, refMapBaseOffset+8+bitmapLen)
	binary.LittleEndian.PutUint32(buf[refMapOperandOffset:], 0)
	binary.LittleEndian.PutUint32(buf[refMapBaseOffset:], uint32(minIndex))
	binary.LittleEndian.PutUint32(buf[refMapBaseOffset+4:], uint32(maxIndex))
	for i, set := range refBits {
		if set {
			buf[refMapBaseOffset+8+i/8] |= 1 << (i % 8)
		}
	}
	return unsafe.Pointer(&buf[0]), buf
}

func TestDecodeRefMap(t *testing.T) {
	ra, buf := buildCallSite(2, 3, []bool{true, true})
	_ = buf
	m := decodeRefMap(ra)
	if m.minIndex != 2 || m.maxIndex != 3 {
		t.Fatalf("decodeRefMap min/max = %d/%d, want 2/3", m.minIndex, m.maxIndex)
	}
}

func TestDecodeRefMapEmptyRange(t *testing.T) {
	// max = min - 1 encodes an empty range and must not be followed.
	ra, buf := buildCallSite(5, 4, nil)
	_ = buf
	m := decodeRefMap(ra)
	if m.maxIndex >= m.minIndex {
		t.Fatalf("expected empty range, got min=%d max=%d", m.minIndex, m.maxIndex)
	}
}

func TestDecodeRefMapNegativeMinIndex(t *testing.T) {
	ra, buf := buildCallSite(-2, 1, []bool{true, false, false, true})
	_ = buf
	m := decodeRefMap(ra)
	if m.minIndex != -2 || m.maxIndex != 1 {
		t.Fatalf("decodeRefMap min/max = %d/%d, want -2/1", m.minIndex, m.maxIndex)
	}
}
