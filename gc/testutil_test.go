package gc

import (
	"unsafe"

	"github.com/typepy-lang/runtime/object"
)

// emptyRootEnv builds a minimal synthetic stack (one frame, an empty
// reference map, no globals) and calls Init with it. It is the baseline
// environment for scenarios that need Collect to run without finding any
// stack roots.
func emptyRootEnv() (frameBase, stackTop unsafe.Pointer) {
	ra, _ := buildCallSite(0, -1, nil) // max = min-1: empty range
	frameArr := make([]unsafe.Pointer, 1)
	frameBase = unsafe.Pointer(&frameArr[0])
	stackTop = makeStackTop(ra)

	Reset()
	Init(&object.InitParam{BottomFrame: frameBase})
	return frameBase, stackTop
}

// makeStackTop lays out a one-slot synthetic stack whose top holds ra as
// the return address of the currently suspended function, per §4.3:
// stack_top[-1] holds that return address.
func makeStackTop(ra unsafe.Pointer) unsafe.Pointer {
	slot := []unsafe.Pointer{ra}
	return unsafe.Add(unsafe.Pointer(&slot[0]), unsafe.Sizeof(ra))
}

// pinGlobal installs a single-slot globals region that references obj, and
// rewires the currently-installed InitParam to use it. initParam must
// already be set by Init.
func pinGlobal(frameBase unsafe.Pointer, obj *object.Object) {
	global := []unsafe.Pointer{unsafe.Pointer(obj)}
	var mapByte uint8 = 0x01
	initParam = &object.InitParam{
		BottomFrame:   frameBase,
		GlobalSection: unsafe.Pointer(&global[0]),
		GlobalSize:    8,
		GlobalMap:     &mapByte,
	}
}

// clearGlobalRoot removes any globals root, keeping the same bottom frame.
func clearGlobalRoot(frameBase unsafe.Pointer) {
	initParam = &object.InitParam{BottomFrame: frameBase}
}

// setField writes val into the i-th 8-byte attribute slot of o (an
// ordinary object), exactly as compiled code would after alloc_obj
// returns.
func setField(o *object.Object, i int, val *object.Object) {
	slot := (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(o), object.HeaderSize+i*8))
	*slot = unsafe.Pointer(val)
}

// setElement writes val into the i-th element slot of an ObjList array
// object arr.
func setElement(arr *object.Object, i int, val *object.Object) {
	slot := (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(arr), object.ArrayHeaderSize+i*8))
	*slot = unsafe.Pointer(val)
}

// inList reports whether o is currently reachable by walking the
// intrusive object list from Head(), without ever dereferencing o itself
// unless the walk finds it still linked.
func inList(o *object.Object) bool {
	for cur := Head(); cur != nil; cur = cur.Next {
		if cur == o {
			return true
		}
	}
	return false
}

var onesBit0 = func() *uint8 { b := uint8(0x01); return &b }()
