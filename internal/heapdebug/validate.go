package heapdebug

import (
	"fmt"
	"unsafe"

	set3 "github.com/TomTonic/Set3"

	"github.com/typepy-lang/runtime/gc"
	"github.com/typepy-lang/runtime/object"
)

// ValidateObjectList walks the intrusive object list and checks Testable
// Property §8.2: every allocated-and-not-freed object is visited exactly
// once, and the walk terminates at nil. A violation here means the list
// has been corrupted (a cycle, or an object linked in twice), which should
// never happen outside a bug in the allocator or sweeper.
func ValidateObjectList() error {
	seen := set3.Empty[uintptr]()
	for o := gc.Head(); o != nil; o = o.Next {
		addr := uintptr(unsafe.Pointer(o))
		if seen.Contains(addr) {
			return fmt.Errorf("heapdebug: object list is not acyclic: %#x appears twice", addr)
		}
		seen.Add(addr)
	}
	return nil
}

// CurrentSpaceMatchesList checks Testable Property §8.2's second half:
// CURRENT_SPACE equals the sum of per-object sizes computed via §4.1.
func CurrentSpaceMatchesList() error {
	var total uintptr
	for o := gc.Head(); o != nil; o = o.Next {
		var length uint64
		if o.Prototype.IsArray() {
			length = (*object.ArrayObject)(unsafe.Pointer(o)).Len
		}
		total += object.SizeUnits(o.Prototype, length)
	}
	if total != gc.CurrentSpace() {
		return fmt.Errorf("heapdebug: CURRENT_SPACE=%d but object list sums to %d", gc.CurrentSpace(), total)
	}
	return nil
}
