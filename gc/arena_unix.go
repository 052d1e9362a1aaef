//go:build unix

package gc

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/typepy-lang/runtime/object"
)

// arenaAlloc obtains zero-filled backing storage for units allocation
// units, outside the Go heap, via an anonymous mmap. This keeps the
// mutator's object graph on memory this package alone manages, the way a
// native runtime's heap is not visible to any other allocator.
func arenaAlloc(units uintptr) unsafe.Pointer {
	if units == 0 {
		return unsafe.Pointer(&zeroAlloc)
	}
	size := int(units * object.AllocUnitSize)
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		fatal("mmap: " + err.Error())
	}
	return unsafe.Pointer(&buf[0])
}

// arenaFree returns storage obtained from arenaAlloc to the OS.
func arenaFree(ptr unsafe.Pointer, units uintptr) {
	size := int(units * object.AllocUnitSize)
	buf := unsafe.Slice((*byte)(ptr), size)
	if err := unix.Munmap(buf); err != nil {
		fatal("munmap: " + err.Error())
	}
}
