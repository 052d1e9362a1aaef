package cabi

import (
	"unsafe"

	"github.com/typepy-lang/runtime/object"
)

// Len is $len: the element count of a Str, ValueList or ObjList object.
// Any other prototype tag, or a nil pointer, is an invalid-argument trap.
func Len(p *object.Object) int32 {
	if p == nil {
		invalidArg()
	}
	switch p.Prototype.TypeTag {
	case object.Str, object.ValueList, object.ObjList:
	default:
		invalidArg()
	}
	arr := (*object.ArrayObject)(unsafe.Pointer(p))
	return int32(arr.Len)
}
