package cabi

import (
	"bufio"
	"os"
	"unsafe"

	"github.com/typepy-lang/runtime/gc"
	"github.com/typepy-lang/runtime/object"
)

var stdinReader = bufio.NewReader(os.Stdin)

// Input is $input: reads one line from standard input, strips a trailing
// CR/LF, and allocates it as a Str using the string prototype carried in
// InitParam. frameBase and stackTop are forwarded to the allocator exactly
// as alloc_obj requires.
func Input(frameBase, stackTop unsafe.Pointer) *object.Object {
	line, err := stdinReader.ReadString('\n')
	if err != nil && len(line) == 0 {
		fatal(err)
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}

	strProto := gc.CurrentInitParam().StrPrototype
	obj := gc.Alloc(strProto, uint64(len(line)), frameBase, stackTop)
	dst := unsafe.Slice((*byte)(unsafe.Add(unsafe.Pointer(obj), object.ArrayHeaderSize)), len(line))
	copy(dst, line)
	return obj
}
