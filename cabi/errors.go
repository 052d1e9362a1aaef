package cabi

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
)

// stderrOut is a colorable stderr writer so fatal diagnostics keep their
// color on Windows consoles.
var stderrOut = colorable.NewColorableStderr()

// stdout is a colorable stdout writer, used by Print and by trap.
var stdout = colorable.NewColorableStdout()

// exit is os.Exit by default; tests substitute it so a trap can be
// observed without killing the test binary.
var exit = os.Exit

// trap prints a single fixed line and terminates with the documented exit
// code (§6, §7). Mutator-visible traps are not recoverable.
func trap(message string, code int) {
	fmt.Fprintln(stdout, message)
	exit(code)
}

func invalidArg() { trap("Invalid argument", 1) }

// fatal reports a fatal runtime error (I/O failure, invalid UTF-8) to
// standard error and aborts the process (§7). Unlike a mutator trap, this
// path is not part of the documented exit-code contract.
func fatal(err error) {
	fmt.Fprintln(stderrOut, "Fatal error:", err)
	panic(err)
}
