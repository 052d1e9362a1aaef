// Command crt0 is the minimal entry point of §6's "crt0_glue" row: it has
// no logic beyond calling the compiled program's entry point and
// returning 0. Everything interesting about a running TypePy program
// happens inside typepyMain, which the AOT compiler's backend links into
// this binary under the symbol name typepy_main; the trampoline does not
// reference a symbol spelled with a leading `$`.
package main

// typepyMain is the compiled program's entry point, provided by the AOT
// compiler backend at link time (see typepy_main_amd64.s). This package
// only calls it.
func typepyMain()

func main() {
	typepyMain()
}
