package cabi

import (
	"fmt"
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/typepy-lang/runtime/object"
)

// Print is $print: writes an Int (decimal), Bool (True/False) or Str
// (UTF-8) object to standard output. Any other prototype tag, or a nil
// pointer, is an invalid-argument trap. It always returns nil, reserved
// for future chaining per §6.
func Print(p *object.Object) *byte {
	if p == nil {
		invalidArg()
	}

	switch p.Prototype.TypeTag {
	case object.Int:
		v := *(*int32)(unsafe.Add(unsafe.Pointer(p), object.HeaderSize))
		fmt.Fprintln(stdout, v)

	case object.Bool:
		v := *(*bool)(unsafe.Add(unsafe.Pointer(p), object.HeaderSize))
		if v {
			fmt.Fprintln(stdout, "True")
		} else {
			fmt.Fprintln(stdout, "False")
		}

	case object.Str:
		arr := (*object.ArrayObject)(unsafe.Pointer(p))
		raw := unsafe.Slice((*byte)(unsafe.Add(unsafe.Pointer(p), object.ArrayHeaderSize)), arr.Len)
		// Validate the payload is well-formed UTF-8 before printing it,
		// matching the original's str::from_utf8(...).unwrap_or_else(fatal).
		decoded, _, err := transform.Bytes(encoding.UTF8Validator, raw)
		if err != nil {
			fatal(err)
		}
		fmt.Fprintln(stdout, string(decoded))

	default:
		invalidArg()
	}

	return nil
}
