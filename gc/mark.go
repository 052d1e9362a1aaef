package gc

import (
	"unsafe"

	"github.com/typepy-lang/runtime/object"
)

// markRoot implements the Tracer contract of §4.4 for a single root slot:
// mark(slot). The traversal itself runs on an explicit worklist rather than
// recursion, per the design note in spec §9 — this bounds stack depth to
// this function's own frame regardless of how deep the object graph goes.
// The mark bit ensures every object is enqueued at most once, so the
// traversal is O(reachable set size).
func markRoot(slot *unsafe.Pointer) {
	root := *slot
	if root == nil {
		return
	}
	obj := (*object.Object)(root)
	if obj.Marked == 1 {
		return
	}
	obj.Marked = 1

	worklist := []*object.Object{obj}
	for len(worklist) > 0 {
		n := len(worklist) - 1
		o := worklist[n]
		worklist = worklist[:n]
		worklist = scanObject(o, worklist)
	}
}

// scanObject pushes every unmarked object directly referenced by o onto
// worklist, marking each as it is pushed, and returns the updated worklist.
func scanObject(o *object.Object, worklist []*object.Object) []*object.Object {
	switch o.Prototype.TypeTag {
	case object.Other:
		fieldCount := int(o.Prototype.Size / object.AllocUnitSize)
		bitmap := o.Prototype.ReferenceBitmap
		attrs := unsafe.Add(unsafe.Pointer(o), object.HeaderSize)
		for i := 0; i < fieldCount; i++ {
			if !object.TestBit(bitmap, i) {
				continue
			}
			worklist = pushChild(attrs, i, worklist)
		}

	case object.ObjList:
		arr := (*object.ArrayObject)(unsafe.Pointer(o))
		elems := unsafe.Add(unsafe.Pointer(o), object.ArrayHeaderSize)
		for i := uint64(0); i < arr.Len; i++ {
			worklist = pushChild(elems, int(i), worklist)
		}

	default:
		// Int, Bool, Str, ValueList: no outgoing references.
	}
	return worklist
}

// pushChild loads the i-th 8-byte slot starting at base and, if it holds an
// unmarked object, marks it and appends it to worklist.
func pushChild(base unsafe.Pointer, i int, worklist []*object.Object) []*object.Object {
	slot := (*unsafe.Pointer)(unsafe.Add(base, i*8))
	child := *slot
	if child == nil {
		return worklist
	}
	co := (*object.Object)(child)
	if co.Marked == 1 {
		return worklist
	}
	co.Marked = 1
	return append(worklist, co)
}
