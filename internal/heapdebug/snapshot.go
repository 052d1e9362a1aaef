package heapdebug

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/gofrs/flock"
	"github.com/marcinbor85/gohex"
	"github.com/sigurn/crc16"

	"github.com/typepy-lang/runtime/gc"
	"github.com/typepy-lang/runtime/object"
)

// Snapshot is a frozen, inspectable copy of every live object's bytes,
// keyed by its heap address at the moment of the dump. It exists for
// post-mortem inspection on embedded targets where attaching a debugger
// mid-collection is impractical — the same reason the teacher's toolchain
// ships hex-format memory images for flashing.
type Snapshot struct {
	Objects  map[uintptr][]byte
	Checksum uint16
}

var crc16Table = crc16.MakeTable(crc16.CRC16_XMODEM)

// TakeSnapshot copies the bytes of every object currently on the object
// list. Object bytes include the header, since the header's mark byte and
// next pointer are part of what makes a dump reproducible evidence of the
// state the collector was in.
func TakeSnapshot() Snapshot {
	objects := make(map[uintptr][]byte)
	var all []byte

	for o := gc.Head(); o != nil; o = o.Next {
		var length uint64
		if o.Prototype.IsArray() {
			length = (*object.ArrayObject)(unsafe.Pointer(o)).Len
		}
		units := object.SizeUnits(o.Prototype, length)
		size := int(units * object.AllocUnitSize)
		raw := unsafe.Slice((*byte)(unsafe.Pointer(o)), size)

		buf := make([]byte, size)
		copy(buf, raw)
		objects[uintptr(unsafe.Pointer(o))] = buf
		all = append(all, buf...)
	}

	return Snapshot{Objects: objects, Checksum: crc16.Checksum(all, crc16Table)}
}

// DumpIntelHex writes snap as an Intel HEX image to path, guarded by an
// advisory file lock so concurrent dumps (from a signal handler and a
// debug command, say) don't interleave their writes.
func DumpIntelHex(path string, snap Snapshot) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("heapdebug: locking %s: %w", path, err)
	}
	defer lock.Unlock()

	mem := gohex.NewMemory()
	for addr, data := range snap.Objects {
		if addr > 0xFFFFFFFF {
			return fmt.Errorf("heapdebug: address %#x does not fit Intel HEX's 32-bit address space", addr)
		}
		if err := mem.AddBinary(uint32(addr), data); err != nil {
			return fmt.Errorf("heapdebug: adding object at %#x: %w", addr, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return mem.DumpIntelHex(f, 16)
}
