//go:build !unix

package gc

import (
	"sync"
	"unsafe"

	"github.com/typepy-lang/runtime/object"
)

// On non-unix targets there is no portable anonymous-mmap syscall available
// through golang.org/x/sys, so backing storage comes from the Go heap
// instead. liveBlocks keeps each slice reachable from Go's own collector
// for as long as this package's sweeper considers the object live; without
// it, nothing would keep the backing array from being collected out from
// under a still-live object.
var (
	liveBlocksMu sync.Mutex
	liveBlocks   = map[unsafe.Pointer][]byte{}
)

func arenaAlloc(units uintptr) unsafe.Pointer {
	if units == 0 {
		return unsafe.Pointer(&zeroAlloc)
	}
	buf := make([]byte, units*object.AllocUnitSize)
	ptr := unsafe.Pointer(&buf[0])
	liveBlocksMu.Lock()
	liveBlocks[ptr] = buf
	liveBlocksMu.Unlock()
	return ptr
}

func arenaFree(ptr unsafe.Pointer, units uintptr) {
	liveBlocksMu.Lock()
	delete(liveBlocks, ptr)
	liveBlocksMu.Unlock()
}
