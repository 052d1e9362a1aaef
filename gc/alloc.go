package gc

import (
	"unsafe"

	"github.com/typepy-lang/runtime/object"
)

// Alloc implements the $alloc_obj contract of spec §4.2 and §6. frameBase
// and stackTop identify the mutator's current frame and are forwarded
// unchanged to Collect if a collection runs first.
//
//go:noinline
func Alloc(proto *object.Prototype, length uint64, frameBase, stackTop unsafe.Pointer) *object.Object {
	if currentSpace >= thresholdSpace {
		Collect(frameBase, stackTop)
		thresholdSpace = max(cfg.MinThreshold, cfg.GrowthFactor*currentSpace)
	}

	units := object.SizeUnits(proto, length)
	storage := arenaAlloc(units)
	currentSpace += units

	obj := (*object.Object)(storage)
	obj.Prototype = proto
	obj.Marked = 0
	obj.Next = head
	head = obj

	if proto.IsArray() {
		(*object.ArrayObject)(storage).Len = length
	}

	return obj
}
