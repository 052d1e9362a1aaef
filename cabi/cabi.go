// Package cabi implements the C-ABI entry points of spec §6 — the symbols
// the AOT compiler's generated code calls by name ($init, $alloc_obj,
// $len, $print, $input, and the traps). The compiler/linker's job of
// binding those names to this package's functions is out of scope here
// (spec §1); this package only has to behave exactly as documented once
// called.
package cabi

import (
	"unsafe"

	"github.com/typepy-lang/runtime/gc"
	"github.com/typepy-lang/runtime/object"
)

// Init installs the root descriptor. Linked as $init. Must be called
// before any other entry point in this package.
func Init(param *object.InitParam) {
	gc.Init(param)
}

// AllocObj allocates a new object, collecting first if CURRENT_SPACE has
// reached THRESHOLD_SPACE. Linked as $alloc_obj. frameBase and stackTop
// identify the mutator's currently suspended frame, per §4.2/§4.3.
func AllocObj(prototype *object.Prototype, length uint64, frameBase, stackTop unsafe.Pointer) *object.Object {
	return gc.Alloc(prototype, length, frameBase, stackTop)
}
