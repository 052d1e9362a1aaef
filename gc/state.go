// Package gc implements the stop-the-world, precise mark-and-sweep
// collector: the allocator, root enumerator, tracer, sweeper and the
// runtime state they share. It is single-threaded by design (§5): there is
// exactly one mutator, and a collection always runs to completion inside
// the call that triggered it. Compiled code never touches these globals
// directly; it only ever calls into the cabi package.
package gc

import "github.com/typepy-lang/runtime/object"

// Runtime state (§4.6). These are per-mutator singletons, exactly like the
// teacher's package-level heap bookkeeping in its block-based collector:
// there is one instance per linked program, not per goroutine.
var (
	initParam      *object.InitParam
	head           *object.Object
	currentSpace   uintptr
	thresholdSpace uintptr
)

// Init installs the root descriptor. It must be called exactly once,
// before any other entry point, per spec §6's contract for $init.
func Init(param *object.InitParam) {
	initParam = param
	head = nil
	currentSpace = 0
	thresholdSpace = cfg.MinThreshold
}

// Initialized reports whether Init has run.
func Initialized() bool { return initParam != nil }

// CurrentInitParam returns the descriptor installed by Init, or nil if
// Init has not run yet.
func CurrentInitParam() *object.InitParam { return initParam }

// CurrentSpace returns the live allocation-unit count (§4.6).
func CurrentSpace() uintptr { return currentSpace }

// ThresholdSpace returns the next-collection threshold (§4.6).
func ThresholdSpace() uintptr { return thresholdSpace }

// Head returns the head of the intrusive object list, for diagnostics and
// tests. Compiled code never sees this value.
func Head() *object.Object { return head }

// Reset clears all runtime state back to its zero value. This has no
// equivalent entry point in the ABI (§6 never un-initializes a mutator);
// it exists so tests can exercise multiple independent GC sessions inside
// a single test binary.
func Reset() {
	initParam = nil
	head = nil
	currentSpace = 0
	thresholdSpace = cfg.MinThreshold
}
