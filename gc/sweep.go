package gc

import (
	"unsafe"

	"github.com/typepy-lang/runtime/object"
)

// sweep implements §4.5: a single pass over the object list. Marked
// objects survive with their mark cleared; unmarked objects are unlinked
// and their storage released. It returns the total allocation units
// reclaimed.
func sweep() uintptr {
	var reclaimed uintptr
	cursor := &head

	for *cursor != nil {
		o := *cursor
		if o.Marked == 1 {
			o.Marked = 0
			cursor = &o.Next
			continue
		}

		*cursor = o.Next

		var length uint64
		if o.Prototype.IsArray() {
			length = (*object.ArrayObject)(unsafe.Pointer(o)).Len
		}
		units := object.SizeUnits(o.Prototype, length)
		arenaFree(unsafe.Pointer(o), units)
		reclaimed += units
	}

	return reclaimed
}
