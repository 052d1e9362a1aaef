package gc

import (
	"encoding/binary"
	"unsafe"

	"github.com/typepy-lang/runtime/object"
)

// Reference-map encoding constants (§4.3). The compiler places a short
// jump over an inline reference map immediately after every GC-safe call
// instruction; refMapOperandOffset/refMapBaseOffset encode that jump's
// two-byte opcode and total length. A code generator that emits a
// different jump encoding must adjust these two constants; the reference
// map format itself (min, max, bitmap) is the stable part of the contract.
const (
	refMapOperandOffset = 3
	refMapBaseOffset    = 7
)

// readI32 reads a little-endian signed 32-bit value at p.
func readI32(p unsafe.Pointer) int32 {
	return int32(binary.LittleEndian.Uint32(unsafe.Slice((*byte)(p), 4)))
}

// refMap is a decoded per-call-site reference map (§4.3).
type refMap struct {
	minIndex int32
	maxIndex int32
	bitmap   *uint8
}

// decodeRefMap locates and decodes the reference map adjacent to the
// return address ra.
func decodeRefMap(ra unsafe.Pointer) refMap {
	delta := readI32(unsafe.Add(ra, refMapOperandOffset))
	base := unsafe.Add(ra, int(delta)+refMapBaseOffset)
	return refMap{
		minIndex: readI32(base),
		maxIndex: readI32(unsafe.Add(base, 4)),
		bitmap:   (*uint8)(unsafe.Add(base, 8)),
	}
}

// slotAt returns the address of frame-relative slot index, i.e.
// frameBase[index].
func slotAt(frameBase unsafe.Pointer, index int32) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Add(frameBase, int(index)*8))
}

// markStack walks the mutator's stack frames starting at frameBase/stackTop
// and marks every root slot named by each frame's reference map (§4.3).
func markStack(frameBase, stackTop unsafe.Pointer) {
	ra := *(*unsafe.Pointer)(unsafe.Add(stackTop, -8))
	frame := frameBase

	for {
		m := decodeRefMap(ra)
		for index := m.minIndex; index <= m.maxIndex; index++ {
			mapIndex := int(index - m.minIndex)
			if object.TestBit(m.bitmap, mapIndex) {
				markRoot(slotAt(frame, index))
			}
		}

		if frame == initParam.BottomFrame {
			break
		}
		ra = *(*unsafe.Pointer)(unsafe.Add(frame, 8))
		frame = *(*unsafe.Pointer)(frame)
	}
}

// markGlobals walks the globals region and marks every slot named by the
// globals reference bitmap (§4.3).
func markGlobals() {
	slots := initParam.GlobalSize / 8
	for i := uint64(0); i < slots; i++ {
		if object.TestBit(initParam.GlobalMap, int(i)) {
			slot := (*unsafe.Pointer)(unsafe.Add(initParam.GlobalSection, int(i)*8))
			markRoot(slot)
		}
	}
}
