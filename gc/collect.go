package gc

import "unsafe"

// Collect drives a full mark-and-sweep cycle: enumerate roots from the
// mutator stack and the globals region, trace the transitive closure, then
// sweep unreachable objects (§4.3-§4.5). It is invoked automatically by
// Alloc when CURRENT_SPACE reaches THRESHOLD_SPACE, and may also be called
// directly to force a collection (used by tests).
func Collect(frameBase, stackTop unsafe.Pointer) {
	if initParam == nil {
		fatal("collect called before init")
	}

	markStack(frameBase, stackTop)
	markGlobals()

	reclaimed := sweep()
	currentSpace -= reclaimed
}
